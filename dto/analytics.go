package dto

type AnalyticsRequest struct {
	Event      string                 `json:"event"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

type AnalyticsResponse struct {
	Tracked bool `json:"tracked"`
}

type HealthResponse struct {
	Status          string `json:"status"`
	Timestamp       string `json:"timestamp"`
	EmailConfigured bool   `json:"email_configured"`
}
