package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maryamshk/Weather-bot-api/internal/weather"
)

// HealthResponse reports liveness and the forecast settings the webhook answers with
type HealthResponse struct {
	Message          string `json:"message" example:"pong"`
	ForecastStrategy string `json:"forecastStrategy" example:"list"`
	HorizonDays      int    `json:"horizonDays" example:"5"` // Days ahead a forecast can be requested
}

// handleHealth godoc
// @Summary Health check
// @Description Reports that the webhook is up, which forecast strategy it uses and how many days ahead it can forecast
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /ping [get]
func (app *App) handleHealth(c *gin.Context) {
	strategy := app.cfg.Forecast.Strategy
	if strategy == "" {
		strategy = weather.StrategyList
	}

	c.JSON(http.StatusOK, HealthResponse{
		Message:          "pong",
		ForecastStrategy: strategy,
		HorizonDays:      app.weatherService.HorizonDays(),
	})
}
