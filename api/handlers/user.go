package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vitalcheck/vitalcheck-api/api"
	"github.com/vitalcheck/vitalcheck-api/config"
	"github.com/vitalcheck/vitalcheck-api/databases"
	"github.com/vitalcheck/vitalcheck-api/models"
	"github.com/vitalcheck/vitalcheck-api/rules"
)

// minPasswordLength is the shortest password accepted at signup
const minPasswordLength = 8

// User exists for dependency injection purposes
type User struct {
	DB   databases.UserDatabase
	PDB  databases.PatientDatabase
	Auth *api.Authenticator
}

// SignupHandler creates an account and, for patients, their profile
func (u User) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = rules.SanitizeText(req.Name)
	if req.Role == "" {
		req.Role = models.RolePatient
	}

	var errs []string
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		errs = append(errs, "A valid email is required")
	}
	if len(req.Password) < minPasswordLength {
		errs = append(errs, "Password must be at least 8 characters")
	}
	if req.Name == "" {
		errs = append(errs, "Name is required")
	}
	if req.Role != models.RolePatient && req.Role != models.RoleDoctor {
		errs = append(errs, "Role must be patient or doctor")
	}
	if len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	_, err := u.DB.FindByEmail(ctx, req.Email)
	if err == nil {
		config.ErrorStatus("email already registered", http.StatusConflict, w, errors.New("duplicate email"))
		return
	}
	if !errors.Is(err, databases.ErrNotFound) {
		config.ErrorStatus("failed to look up email", http.StatusInternalServerError, w, err)
		return
	}

	hash, err := api.HashPassword(req.Password)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	user, err := u.DB.InsertOne(ctx, models.User{
		Email:    req.Email,
		Name:     req.Name,
		Role:     req.Role,
		Password: hash,
	})
	if err != nil {
		config.ErrorStatus("failed to create user", http.StatusInternalServerError, w, err)
		return
	}

	if user.Role == models.RolePatient {
		_, err = u.PDB.InsertOne(ctx, models.PatientProfile{UserID: user.ID.Hex(), Name: user.Name})
		if err != nil {
			config.ErrorStatus("failed to create patient profile", http.StatusInternalServerError, w, err)
			return
		}
	}

	zap.S().Infow("user signed up", "uid", user.ID.Hex(), "email", rules.AnonymizeEmail(user.Email), "role", user.Role)
	u.writeToken(w, http.StatusCreated, *user)
}

// LoginHandler exchanges an email and password for a bearer token
func (u User) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.DB.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		status := http.StatusUnauthorized
		if !errors.Is(err, databases.ErrNotFound) {
			status = http.StatusInternalServerError
		}
		config.ErrorStatus("invalid credentials", status, w, err)
		return
	}
	if err := api.CheckPassword(user.Password, req.Password); err != nil {
		config.ErrorStatus("invalid credentials", http.StatusUnauthorized, w, err)
		return
	}

	u.writeToken(w, http.StatusOK, *user)
}

// UpdateRoleHandler changes a user's role
func (u User) UpdateRoleHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	var req models.RoleUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !req.Role.Valid() {
		writeValidationErrors(w, []string{"Role must be patient, doctor, or admin"})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := u.DB.UpdateRole(ctx, userID, req.Role); err != nil {
		config.ErrorStatus("failed to update role", dbErrorStatus(err), w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "role updated"})
}

func (u User) writeToken(w http.ResponseWriter, status int, user models.User) {
	token, err := u.Auth.IssueToken(user)
	if err != nil {
		config.ErrorStatus("failed to issue token", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, status, models.TokenResponse{Token: token, User: user})
}
