package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/vitalcheck/vitalcheck-api/api"
	"github.com/vitalcheck/vitalcheck-api/config"
	"github.com/vitalcheck/vitalcheck-api/databases"
	"github.com/vitalcheck/vitalcheck-api/models"
)

var (
	errForbidden     = errors.New("forbidden")
	errMissingClaims = errors.New("missing claims")
)

// writeJSON marshals v and writes it with status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

// writeValidationErrors answers 400 with every problem found in the submitted form
func writeValidationErrors(w http.ResponseWriter, errs interface{}) {
	writeErrors(w, http.StatusBadRequest, errs)
}

// writeErrors answers status with a list of user facing messages
func writeErrors(w http.ResponseWriter, status int, errs interface{}) {
	zap.S().Debugw("request rejected", "status", status, "errors", errs)
	writeJSON(w, status, models.ValidationErrorResponse{Errors: errs})
}

// decodeBody reads a JSON request body into v, answering 400 on failure
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return false
	}
	return true
}

// callerCanAccessPatient answers 401/403 and returns false unless the caller may touch patientID's records
func callerCanAccessPatient(w http.ResponseWriter, r *http.Request, patientID string) bool {
	claims, ok := api.ClaimsFromContext(r.Context())
	if !ok {
		config.ErrorStatus("unauthorized", http.StatusUnauthorized, w, errMissingClaims)
		return false
	}
	if !claims.CanAccessPatient(patientID) {
		config.ErrorStatus("not allowed to access patient records", http.StatusForbidden, w, errForbidden)
		return false
	}
	return true
}

// dbErrorStatus maps a databases error to an HTTP status
func dbErrorStatus(err error) int {
	switch {
	case errors.Is(err, databases.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, databases.ErrInvalidID):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// queryInt parses a positive integer query parameter, falling back to def
func queryInt(r *http.Request, name string, def int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
