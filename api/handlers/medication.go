package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalcheck/vitalcheck-api/api"
	"github.com/vitalcheck/vitalcheck-api/config"
	"github.com/vitalcheck/vitalcheck-api/databases"
	"github.com/vitalcheck/vitalcheck-api/models"
	"github.com/vitalcheck/vitalcheck-api/rules"
)

// Medication exists for dependency injection purposes
type Medication struct {
	DB databases.MedicationDatabase
}

// CreateMedicationHandler validates and stores a new medication for a patient
func (m Medication) CreateMedicationHandler(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patient_id"]
	if !callerCanAccessPatient(w, r, patientID) {
		return
	}

	var med models.Medication
	if !decodeBody(w, r, &med) {
		return
	}
	med.ID = primitive.NilObjectID
	med.PatientID = patientID
	med.Notes = rules.SanitizeText(med.Notes)
	if errs := rules.ValidateMedicationInput(med); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	created, err := m.DB.InsertOne(ctx, med)
	if err != nil {
		config.ErrorStatus("failed to create medication", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateMedicationHandler merges a partial update into the stored medication and re-validates the result
func (m Medication) UpdateMedicationHandler(w http.ResponseWriter, r *http.Request) {
	medicationID := mux.Vars(r)["medication_id"]

	var update models.MedicationUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	existing, err := m.DB.FindByID(ctx, medicationID)
	if err != nil {
		config.ErrorStatus("failed to get medication", dbErrorStatus(err), w, err)
		return
	}
	if !callerCanAccessPatient(w, r, existing.PatientID) {
		return
	}

	merged := update.Apply(*existing)
	merged.Notes = rules.SanitizeText(merged.Notes)
	if errs := rules.ValidateMedicationInput(merged); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	if err := m.DB.Update(ctx, merged); err != nil {
		config.ErrorStatus("failed to update medication", dbErrorStatus(err), w, err)
		return
	}
	writeJSON(w, http.StatusOK, merged)
}

// DeleteMedicationHandler removes a medication
func (m Medication) DeleteMedicationHandler(w http.ResponseWriter, r *http.Request) {
	medicationID := mux.Vars(r)["medication_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	existing, err := m.DB.FindByID(ctx, medicationID)
	if err != nil {
		config.ErrorStatus("failed to get medication", dbErrorStatus(err), w, err)
		return
	}
	if !callerCanAccessPatient(w, r, existing.PatientID) {
		return
	}

	if err := m.DB.Delete(ctx, medicationID); err != nil {
		config.ErrorStatus("failed to delete medication", dbErrorStatus(err), w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "medication deleted"})
}

// MedicationsByPatientHandler lists a patient's medications by name
func (m Medication) MedicationsByPatientHandler(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patient_id"]
	if !callerCanAccessPatient(w, r, patientID) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	meds, err := m.DB.FindByPatient(ctx, patientID)
	if err != nil {
		config.ErrorStatus("failed to get medications", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, meds)
}
