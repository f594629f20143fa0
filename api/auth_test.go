package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalcheck/vitalcheck-api/api"
	"github.com/vitalcheck/vitalcheck-api/models"
)

func TestAuthenticator_IssueAndParse(t *testing.T) {
	auth := api.NewAuthenticator("test-secret")
	user := models.User{ID: primitive.NewObjectID(), Role: models.RoleDoctor}

	token, err := auth.IssueToken(user)
	require.NoError(t, err)

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID())
	assert.Equal(t, models.RoleDoctor, claims.Role)
	assert.WithinDuration(t, claims.IssuedAt.Time.Add(api.TokenTTL), claims.ExpiresAt.Time, 0)
}

func TestAuthenticator_ParseTokenRejects(t *testing.T) {
	auth := api.NewAuthenticator("test-secret")
	other := api.NewAuthenticator("other-secret")
	token, err := other.IssueToken(models.User{ID: primitive.NewObjectID(), Role: models.RolePatient})
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"wrong secret": token,
		"garbage":      "not.a.token",
		"alg none":     none,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := auth.ParseToken(tok)
			assert.ErrorIs(t, err, api.ErrInvalidToken)
		})
	}
}

func TestMiddleware(t *testing.T) {
	auth := api.NewAuthenticator("test-secret")
	user := models.User{ID: primitive.NewObjectID(), Role: models.RolePatient}
	token, err := auth.IssueToken(user)
	require.NoError(t, err)

	var seen *api.Claims
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = api.ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "no header", want: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer abc", want: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + token, want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/x/vitals", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
	require.NotNil(t, seen)
	assert.Equal(t, user.ID.Hex(), seen.Subject)
}

func TestRequireRole(t *testing.T) {
	handler := api.RequireRole(models.RoleDoctor, models.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		claims *api.Claims
		want   int
	}{
		{name: "no claims", want: http.StatusUnauthorized},
		{name: "patient", claims: &api.Claims{Role: models.RolePatient}, want: http.StatusForbidden},
		{name: "doctor", claims: &api.Claims{Role: models.RoleDoctor}, want: http.StatusNoContent},
		{name: "admin", claims: &api.Claims{Role: models.RoleAdmin}, want: http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/v1/appointments/1/status", nil)
			if tt.claims != nil {
				req = req.WithContext(api.WithClaims(req.Context(), tt.claims))
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestClaims_CanAccessPatient(t *testing.T) {
	patient := &api.Claims{Role: models.RolePatient, RegisteredClaims: jwt.RegisteredClaims{Subject: "p1"}}
	doctor := &api.Claims{Role: models.RoleDoctor, RegisteredClaims: jwt.RegisteredClaims{Subject: "d1"}}

	assert.True(t, patient.CanAccessPatient("p1"))
	assert.False(t, patient.CanAccessPatient("p2"))
	assert.True(t, doctor.CanAccessPatient("p2"))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := api.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)
	assert.NoError(t, api.CheckPassword(hash, "hunter22"))
	assert.Error(t, api.CheckPassword(hash, "wrong"))
}
