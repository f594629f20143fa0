package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/vitalcheck/vitalcheck-api/api"
	"github.com/vitalcheck/vitalcheck-api/models"
)

const (
	testPatientID = "65f0c0ffee0000000000aa01"
	testDoctorID  = "65f0c0ffee0000000000dd01"
)

// newRequest builds a request with a JSON body, route vars and the caller's claims
func newRequest(t *testing.T, method, target string, body interface{}, vars map[string]string, role models.Role, uid string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	if role != "" {
		claims := &api.Claims{Role: role, RegisteredClaims: jwt.RegisteredClaims{Subject: uid}}
		req = req.WithContext(api.WithClaims(req.Context(), claims))
	}
	return req
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rr.Body).Decode(v))
}

// validationErrors decodes a 400 body listing messages
func validationErrors(t *testing.T, rr *httptest.ResponseRecorder) []string {
	t.Helper()
	var resp struct {
		Errors []string `json:"errors"`
	}
	decodeResponse(t, rr, &resp)
	return resp.Errors
}
