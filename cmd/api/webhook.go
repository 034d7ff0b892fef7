package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maryamshk/Weather-bot-api/internal/fulfillment"
	"github.com/maryamshk/Weather-bot-api/internal/middleware"
)

// handleWebhook godoc
// @Summary Dialogflow fulfillment webhook
// @Description Answers a weather intent with current conditions, or with a forecast when queryResult.parameters carries a future date.
// @Description The city is read from "city" or "geo-city" and the date from "date" or "date-time".
// @Description The response is always 200; failures are reported in fulfillmentText.
// @Tags webhook
// @Accept json
// @Produce json
// @Param request body fulfillment.WebhookRequest true "Dialogflow fulfillment request"
// @Success 200 {object} fulfillment.WebhookResponse
// @Router /webhook [post]
func (app *App) handleWebhook(c *gin.Context) {
	var req fulfillment.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		app.logger.Warn("failed to decode webhook request",
			"request_id", middleware.GetRequestID(c),
			"error", err,
		)
		app.reply(c, fulfillment.ServiceTroubleText)
		return
	}

	intent := fulfillment.ParseIntent(req)
	app.logger.Info("received weather intent",
		"request_id", middleware.GetRequestID(c),
		"response_id", req.ResponseID,
		"city", intent.City,
		"date", intent.Date,
	)

	app.reply(c, app.fulfillmentService.Fulfill(c.Request.Context(), intent))
}

// recoverWebhook turns a panic in the webhook chain into the generic reply
func (app *App) recoverWebhook(c *gin.Context, recovered any) {
	app.logger.Error("webhook handler panicked",
		"request_id", middleware.GetRequestID(c),
		"panic", recovered,
	)
	app.reply(c, fulfillment.ServiceTroubleText)
	c.Abort()
}

func (app *App) reply(c *gin.Context, text string) {
	c.JSON(http.StatusOK, fulfillment.WebhookResponse{FulfillmentText: text})
}
