package main

// @title Weather Webhook API
// @version 1.0
// @description Dialogflow fulfillment webhook answering current weather and forecast questions with OpenWeatherMap data.

// @contact.name Weather Webhook
// @contact.url https://github.com/maryamshk/Weather-bot-api

// @license.name MIT

// @BasePath /
// @schemes http https
