package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalcheck/vitalcheck-api/config"
)

var a App

func executeRequest(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	if expected != actual {
		t.Errorf("Expected response code %d. Got %d\n", expected, actual)
	}
}

func TestUnknownRoute(t *testing.T) {
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/asdf", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusNotFound, response.Code)
}

func TestHealthCheckRoute(t *testing.T) {
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/health", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)

	if !strings.Contains(response.Body.String(), "alive") {
		t.Errorf("Expected 'alive' in the reponse. Got '%s'", response.Body.String())
	}
}

func TestApp_ProtectedRoutesUnauthorized(t *testing.T) {
	a = App{Config: config.Config{JWTSecret: "test-secret"}}
	a.Router = a.New()

	routes := []struct{ method, path string }{
		{"GET", "/api/v1/patients/" + testPatientID + "/vitals"},
		{"POST", "/api/v1/appointments"},
		{"PUT", "/api/v1/appointments/abc/status"},
		{"GET", "/api/v1/patients/search?q=ann"},
		{"GET", "/api/v1/metrics"},
	}
	for _, rt := range routes {
		req, _ := http.NewRequest(rt.method, rt.path, nil)
		response := executeRequest(req)
		checkResponseCode(t, http.StatusUnauthorized, response.Code)
		assert.NotEmpty(t, response.Header().Get("X-Request-ID"), rt.path)
	}
}

func TestApp_SignupRejectsBadBody(t *testing.T) {
	a = App{Config: config.Config{JWTSecret: "test-secret"}}
	a.Router = a.New()

	req, _ := http.NewRequest("POST", "/api/v1/auth/signup", strings.NewReader("{"))
	response := executeRequest(req)

	checkResponseCode(t, http.StatusBadRequest, response.Code)
}
