package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/vitalcheck/vitalcheck-api/api"
	"github.com/vitalcheck/vitalcheck-api/config"
	"github.com/vitalcheck/vitalcheck-api/databases"
	"github.com/vitalcheck/vitalcheck-api/rules"
)

const defaultSearchLimit = 20

// Search exists for dependency injection purposes
type Search struct {
	DB databases.UserDatabase
}

// PatientSearchHandler finds patients whose name or email contains the q parameter
func (s Search) PatientSearchHandler(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeValidationErrors(w, []string{"Search term is required"})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	users, err := s.DB.Search(ctx, q, int64(queryInt(r, "limit", defaultSearchLimit)))
	if err != nil {
		config.ErrorStatus("failed to search patients", http.StatusInternalServerError, w, err)
		return
	}

	matched := make([]string, 0, len(users))
	for _, u := range users {
		matched = append(matched, rules.AnonymizeEmail(u.Email))
	}
	zap.S().Debugw("patient search", "q", q, "matches", matched)

	writeJSON(w, http.StatusOK, users)
}
