package openweathermap

// GeocodingResult is one element of the direct geocoding response array
type GeocodingResult struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names,omitempty"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state,omitempty"`
}

// Condition is an element of the "weather" array present in every response shape
type Condition struct {
	Id          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type MainReadings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  float64 `json:"pressure"`
	Humidity  float64 `json:"humidity"`
}

type WindReadings struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
	Gust  float64 `json:"gust,omitempty"`
}

// CurrentWeatherAPIResponse is the /data/2.5/weather payload
type CurrentWeatherAPIResponse struct {
	Coord struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"coord"`
	Weather []Condition  `json:"weather"`
	Main    MainReadings `json:"main"`
	Wind    WindReadings `json:"wind"`
	Clouds  struct {
		All int `json:"all"`
	} `json:"clouds"`
	Dt       int64  `json:"dt"`
	Timezone int    `json:"timezone"`
	Id       int    `json:"id"`
	Name     string `json:"name"`
}

// ForecastAPIResponse is the /data/2.5/forecast payload: 3-hour steps over five days
type ForecastAPIResponse struct {
	Cod  string          `json:"cod"`
	Cnt  int             `json:"cnt"`
	List []ForecastEntry `json:"list"`
	City struct {
		Id       int    `json:"id"`
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
		Sunrise  int64  `json:"sunrise"`
		Sunset   int64  `json:"sunset"`
	} `json:"city"`
}

type ForecastEntry struct {
	Dt      int64        `json:"dt"`
	Main    MainReadings `json:"main"`
	Weather []Condition  `json:"weather"`
	Wind    WindReadings `json:"wind"`
	Pop     float64      `json:"pop"`
	DtTxt   string       `json:"dt_txt"`
}

// OneCallAPIResponse is the /data/3.0/onecall payload with everything but daily excluded
type OneCallAPIResponse struct {
	Lat            float64      `json:"lat"`
	Lon            float64      `json:"lon"`
	Timezone       string       `json:"timezone"`
	TimezoneOffset int          `json:"timezone_offset"`
	Daily          []DailyEntry `json:"daily"`
}

type DailyEntry struct {
	Dt      int64  `json:"dt"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
	Summary string `json:"summary,omitempty"`
	Temp    struct {
		Day   float64 `json:"day"`
		Min   float64 `json:"min"`
		Max   float64 `json:"max"`
		Night float64 `json:"night"`
		Eve   float64 `json:"eve"`
		Morn  float64 `json:"morn"`
	} `json:"temp"`
	FeelsLike struct {
		Day   float64 `json:"day"`
		Night float64 `json:"night"`
		Eve   float64 `json:"eve"`
		Morn  float64 `json:"morn"`
	} `json:"feels_like"`
	Pressure  float64     `json:"pressure"`
	Humidity  float64     `json:"humidity"`
	WindSpeed float64     `json:"wind_speed"`
	Weather   []Condition `json:"weather"`
	Pop       float64     `json:"pop"`
}
