package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/vitalcheck/vitalcheck-api/api"
	"github.com/vitalcheck/vitalcheck-api/config"
	"github.com/vitalcheck/vitalcheck-api/databases"
	"github.com/vitalcheck/vitalcheck-api/models"
	"github.com/vitalcheck/vitalcheck-api/rules"
)

// Symptom exists for dependency injection purposes
type Symptom struct {
	DB databases.SymptomDatabase
}

type symptomRequest struct {
	Text      string   `json:"text"`
	Tags      []string `json:"tags"`
	Timestamp string   `json:"timestamp"`
}

// CreateSymptomHandler stores a free text symptom note with normalized tags
func (s Symptom) CreateSymptomHandler(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patient_id"]
	if !callerCanAccessPatient(w, r, patientID) {
		return
	}

	var req symptomRequest
	if !decodeBody(w, r, &req) {
		return
	}
	text := rules.SanitizeText(req.Text)
	if text == "" {
		writeValidationErrors(w, []string{"Symptom description is required"})
		return
	}
	timestamp := req.Timestamp
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	entry, err := s.DB.InsertOne(ctx, models.SymptomEntry{
		PatientID: patientID,
		Text:      text,
		Tags:      rules.NormalizeTags(req.Tags),
		Timestamp: timestamp,
	})
	if err != nil {
		config.ErrorStatus("failed to save symptom", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// SymptomsByPatientHandler returns a patient's symptom notes, newest first
func (s Symptom) SymptomsByPatientHandler(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patient_id"]
	if !callerCanAccessPatient(w, r, patientID) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	entries, err := s.DB.FindByPatient(ctx, patientID, int64(queryInt(r, "limit", 0)))
	if err != nil {
		config.ErrorStatus("failed to get symptoms", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
