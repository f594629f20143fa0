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

// defaultVitalsLimit is how many readings a list returns when no limit is given
const defaultVitalsLimit = 10

// Vital exists for dependency injection purposes
type Vital struct {
	DB  databases.VitalDatabase
	now func() time.Time
}

// vitalRequest is the raw vitals form. Each value may be a number, a numeric string, empty, or null.
type vitalRequest struct {
	Temperature rules.VitalValue `json:"temperature"`
	HeartRate   rules.VitalValue `json:"heartRate"`
	BPSys       rules.VitalValue `json:"bpSys"`
	BPDia       rules.VitalValue `json:"bpDia"`
	SpO2        rules.VitalValue `json:"spo2"`
	Timestamp   string           `json:"timestamp"`
	Notes       string           `json:"notes"`
}

func (v vitalRequest) input() rules.VitalInput {
	return rules.VitalInput{
		rules.Temperature: v.Temperature,
		rules.HeartRate:   v.HeartRate,
		rules.BPSys:       v.BPSys,
		rules.BPDia:       v.BPDia,
		rules.SpO2:        v.SpO2,
	}
}

// CreateVitalHandler validates and stores a vitals reading for a patient
func (v Vital) CreateVitalHandler(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patient_id"]
	if !callerCanAccessPatient(w, r, patientID) {
		return
	}

	var req vitalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	in := req.input()
	if errs := rules.ValidateVitals(in); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	reading, _ := in.Reading()

	timestamp := req.Timestamp
	if timestamp == "" {
		timestamp = v.clock().UTC().Format(time.RFC3339)
	} else if _, ok := rules.ParseISO(timestamp); !ok {
		writeValidationErrors(w, map[string]string{"timestamp": "Timestamp must be an ISO 8601 date"})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	record, err := v.DB.InsertOne(ctx, models.VitalRecord{
		PatientID:    patientID,
		Timestamp:    timestamp,
		VitalReading: reading,
		Notes:        rules.SanitizeText(req.Notes),
	})
	if err != nil {
		config.ErrorStatus("failed to save vitals", http.StatusInternalServerError, w, err)
		return
	}
	record.Severity = rules.ClassifySeverity(record.VitalReading)
	writeJSON(w, http.StatusCreated, record)
}

// VitalsByPatientHandler returns a patient's most recent readings, each tagged with its severity
func (v Vital) VitalsByPatientHandler(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patient_id"]
	if !callerCanAccessPatient(w, r, patientID) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	records, err := v.DB.FindByPatient(ctx, patientID, int64(queryInt(r, "limit", defaultVitalsLimit)))
	if err != nil {
		config.ErrorStatus("failed to get vitals", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, withSeverity(records))
}

// withSeverity annotates each record with its display severity
func withSeverity(records []models.VitalRecord) []models.VitalRecord {
	for i := range records {
		records[i].Severity = rules.ClassifySeverity(records[i].VitalReading)
	}
	return records
}

func (v Vital) clock() time.Time {
	if v.now != nil {
		return v.now()
	}
	return time.Now()
}
