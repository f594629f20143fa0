package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vitalcheck/vitalcheck-api/api"
	"github.com/vitalcheck/vitalcheck-api/config"
	"github.com/vitalcheck/vitalcheck-api/databases"
	"github.com/vitalcheck/vitalcheck-api/models"
	"github.com/vitalcheck/vitalcheck-api/rules"
)

// Visit exists for dependency injection purposes
type Visit struct {
	DB databases.VisitDatabase
}

// CreateVisitHandler records a completed visit
func (v Visit) CreateVisitHandler(w http.ResponseWriter, r *http.Request) {
	var visit models.Visit
	if !decodeBody(w, r, &visit) {
		return
	}

	var errs []string
	if visit.PatientID == "" {
		errs = append(errs, "Patient is required")
	}
	if visit.DoctorID == "" {
		if claims, ok := api.ClaimsFromContext(r.Context()); ok && claims.Role == models.RoleDoctor {
			visit.DoctorID = claims.UserID()
		} else {
			errs = append(errs, "Doctor is required")
		}
	}
	if _, ok := rules.ParseISO(visit.Date); !ok {
		errs = append(errs, "Visit date is required")
	}
	if len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	visit.Notes = rules.SanitizeText(visit.Notes)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	created, err := v.DB.InsertOne(ctx, visit)
	if err != nil {
		config.ErrorStatus("failed to create visit", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// VisitsByPatientHandler lists a patient's visits, most recent first
func (v Visit) VisitsByPatientHandler(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patient_id"]
	if !callerCanAccessPatient(w, r, patientID) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	visits, err := v.DB.FindByPatient(ctx, patientID)
	if err != nil {
		config.ErrorStatus("failed to get visits", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, visits)
}
