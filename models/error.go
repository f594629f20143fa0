package models

// ValidationErrorResponse lists every problem found with a submitted form
type ValidationErrorResponse struct {
	Errors interface{} `json:"errors"`
}

// MessageResponse is a plain acknowledgement body
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthCheckResponse returns the health of the api
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
