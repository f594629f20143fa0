package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/vitalcheck/vitalcheck-api/api"
	"github.com/vitalcheck/vitalcheck-api/config"
	"github.com/vitalcheck/vitalcheck-api/databases"
	"github.com/vitalcheck/vitalcheck-api/models"
)

// History exists for dependency injection purposes
type History struct {
	VDB     databases.VitalDatabase
	SDB     databases.SymptomDatabase
	MDB     databases.MedicationDatabase
	VisitDB databases.VisitDatabase
}

// PatientHistoryHandler gathers a patient's vitals, symptoms, medications and visits in one response
func (h History) PatientHistoryHandler(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patient_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	history := models.PatientHistory{PatientID: patientID}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		vitals, err := h.VDB.FindByPatient(gctx, patientID, 0)
		history.Vitals = withSeverity(vitals)
		return err
	})
	g.Go(func() error {
		var err error
		history.Symptoms, err = h.SDB.FindByPatient(gctx, patientID, 0)
		return err
	})
	g.Go(func() error {
		var err error
		history.Medications, err = h.MDB.FindByPatient(gctx, patientID)
		return err
	})
	g.Go(func() error {
		var err error
		history.Visits, err = h.VisitDB.FindByPatient(gctx, patientID)
		return err
	})
	if err := g.Wait(); err != nil {
		config.ErrorStatus("failed to get patient history", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}
