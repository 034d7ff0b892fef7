package fulfillment

// WebhookRequest is the subset of a Dialogflow ES fulfillment request the service reads
type WebhookRequest struct {
	ResponseID  string      `json:"responseId,omitempty"`
	Session     string      `json:"session,omitempty"`
	QueryResult QueryResult `json:"queryResult"`
}

// QueryResult carries the matched intent and its extracted parameters
type QueryResult struct {
	QueryText    string         `json:"queryText,omitempty" example:"what's the weather in Paris tomorrow"`
	LanguageCode string         `json:"languageCode,omitempty" example:"en"`
	Parameters   map[string]any `json:"parameters" swaggertype:"object,string" example:"city:Paris,date:2025-06-11T12:00:00+02:00"`
	Intent       *Intent        `json:"intent,omitempty"`
}

type Intent struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName,omitempty" example:"weather.forecast"`
}

// WebhookResponse is returned to the platform for every request
type WebhookResponse struct {
	FulfillmentText string `json:"fulfillmentText" example:"Current weather in Paris:"`
}

// IntentRequest is what the service needs from a webhook request
type IntentRequest struct {
	City string
	Date string // raw date parameter, empty when absent
}
