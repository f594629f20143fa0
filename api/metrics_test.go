package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRoutePath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"/api/v1/patients/507f1f77bcf86cd799439011/vitals", "/api/v1/patients/{id}/vitals"},
		{"/api/v1/medications/507f1f77bcf86cd799439011", "/api/v1/medications/{id}"},
		{"/api/v1/users/3b241101-e2bb-4255-8caf-4136c566a962/role", "/api/v1/users/{id}/role"},
		{"/api/v1/patients/search", "/api/v1/patients/search"},
		{"/api/v1/appointments/", "/api/v1/appointments"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeRoutePath(tt.in), tt.in)
	}
}

func TestMetricsCollector_Summary(t *testing.T) {
	mc := NewMetricsCollector()
	mc.RecordTrace(RequestTrace{Method: "GET", Path: "/api/v1/patients/507f1f77bcf86cd799439011/vitals", Status: 200, Duration: 10 * time.Millisecond})
	mc.RecordTrace(RequestTrace{Method: "GET", Path: "/api/v1/patients/507f1f77bcf86cd799439012/vitals", Status: 500, Duration: 30 * time.Millisecond})
	mc.RecordTrace(RequestTrace{Method: "POST", Path: "/api/v1/appointments", Status: 201, Duration: 5 * time.Millisecond})

	summary := mc.Summary()
	assert.Equal(t, int64(3), summary.TotalRequests)
	assert.Equal(t, int64(1), summary.TotalErrors)
	require.Len(t, summary.Routes, 2)

	vitals := summary.Routes[0]
	assert.Equal(t, "/api/v1/patients/{id}/vitals", vitals.Path)
	assert.Equal(t, int64(2), vitals.Count)
	assert.Equal(t, int64(1), vitals.ErrorCount)
	assert.Equal(t, 20*time.Millisecond, vitals.AvgTime)
	assert.Equal(t, 10*time.Millisecond, vitals.MinTime)
	assert.Equal(t, 30*time.Millisecond, vitals.MaxTime)
}

func TestMetricsMiddleware(t *testing.T) {
	mc := NewMetricsCollector()
	handler := MetricsMiddleware(mc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/visits", nil))
	assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))

	for _, untracked := range []string{"/health", "/api/v1/metrics"} {
		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, untracked, nil))
		assert.NotEmpty(t, rr.Header().Get(RequestIDHeader), untracked)
	}

	rr = httptest.NewRecorder()
	mc.SummaryHandler(rr, httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil))
	var summary MetricsSummary
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&summary))
	assert.Equal(t, int64(1), summary.TotalRequests)
	assert.Equal(t, int64(1), summary.TotalErrors)
}
