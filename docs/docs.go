// Package docs VitalCheck API.
//
// Health tracking for patients and the doctors who look after them.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - bearer
//
//    SecurityDefinitions:
//    bearer:
//      type: apiKey
//      name: Authorization
//      in: header
//
// swagger:meta
package docs

import (
	"github.com/vitalcheck/vitalcheck-api/api"
	"github.com/vitalcheck/vitalcheck-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route POST /api/v1/auth/login auth login
// Exchanges an email and password for a bearer token.
// responses:
//   200: tokenResponse

// swagger:parameters login
type loginParamsWrapper struct {
	// in:body
	Body models.LoginRequest
}

// A signed token valid for 24 hours
// swagger:response tokenResponse
type tokenResponseWrapper struct {
	// in:body
	Body models.TokenResponse
}

// swagger:route GET /api/v1/patients/{patient_id}/vitals vitals vitalsByPatient
// Lists a patient's vitals, newest first, each with its severity.
// responses:
//   200: vitalsResponse

// swagger:parameters vitalsByPatient historyByPatient
type patientIDParamWrapper struct {
	// in:path
	PatientID string `json:"patient_id"`
}

// swagger:response vitalsResponse
type vitalsResponseWrapper struct {
	// in:body
	Body []models.VitalRecord
}

// swagger:route GET /api/v1/patients/{patient_id}/history history historyByPatient
// Gets a patient's vitals, symptoms, medications and visits.
// responses:
//   200: historyResponse

// swagger:response historyResponse
type historyResponseWrapper struct {
	// in:body
	Body models.PatientHistory
}

// swagger:route POST /api/v1/appointments appointments requestAppointment
// Requests an appointment with a doctor.
// responses:
//   201: appointmentResponse
//   400: validationResponse
//   409: validationResponse

// swagger:parameters requestAppointment
type appointmentParamsWrapper struct {
	// in:body
	Body models.AppointmentRequest
}

// swagger:response appointmentResponse
type appointmentResponseWrapper struct {
	// in:body
	Body models.Appointment
}

// swagger:response validationResponse
type validationResponseWrapper struct {
	// in:body
	Body models.ValidationErrorResponse
}

// swagger:route GET /api/v1/metrics metrics metricsSummary
// Request counts and latency per route since startup. Admins only.
// responses:
//   200: metricsResponse

// swagger:response metricsResponse
type metricsResponseWrapper struct {
	// in:body
	Body api.MetricsSummary
}
