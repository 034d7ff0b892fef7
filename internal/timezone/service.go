package timezone

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata" // LoadLocation must work in images without zoneinfo

	"github.com/ringsaturn/tzf"
)

// Service maps coordinates to the IANA zone of the city found there
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
	GetLocation(latitude, longitude float64) (*time.Location, error)
}

type finderService struct {
	finder tzf.F
}

// The finder holds every zone polygon in memory, so it is built once per process
var (
	shared     *finderService
	sharedErr  error
	sharedOnce sync.Once
)

// NewService returns the process-wide timezone service, loading the finder on first use
func NewService() (Service, error) {
	sharedOnce.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			sharedErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		shared = &finderService{finder: finder}
	})
	if sharedErr != nil {
		return nil, sharedErr
	}
	return shared, nil
}

// GetTimezone returns a zone name such as "Europe/Paris"
func (s *finderService) GetTimezone(latitude, longitude float64) (string, error) {
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("no timezone at lat=%f, lon=%f", latitude, longitude)
	}
	return name, nil
}

// GetLocation resolves the coordinates to a loaded *time.Location
func (s *finderService) GetLocation(latitude, longitude float64) (*time.Location, error) {
	name, err := s.GetTimezone(latitude, longitude)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %q: %w", name, err)
	}

	return loc, nil
}
