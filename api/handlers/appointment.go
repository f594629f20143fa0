package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vitalcheck/vitalcheck-api/api"
	"github.com/vitalcheck/vitalcheck-api/config"
	"github.com/vitalcheck/vitalcheck-api/databases"
	"github.com/vitalcheck/vitalcheck-api/models"
	"github.com/vitalcheck/vitalcheck-api/rules"
)

// ErrAppointmentConflict is returned when the requested time overlaps one of the doctor's active appointments
var ErrAppointmentConflict = errors.New("Selected time conflicts with another appointment")

const (
	// patientLookupLimit caps concurrent profile lookups for a doctor's appointment list
	patientLookupLimit = 8
	notifyTimeout      = time.Minute
)

// AppointmentNotifier is told about every appointment that was stored
type AppointmentNotifier interface {
	NotifyAppointmentCreated(ctx context.Context, appt models.Appointment) error
}

// Appointment exists for dependency injection purposes
type Appointment struct {
	DB             databases.AppointmentDatabase
	PDB            databases.PatientDatabase
	Notifier       AppointmentNotifier
	ConflictWindow time.Duration
	now            func() time.Time
}

// RequestAppointmentHandler validates the preferred time, rejects clashes with the doctor's
// active appointments, then stores the request as pending and notifies the doctor
func (a Appointment) RequestAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	var req models.AppointmentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !callerCanAccessPatient(w, r, req.PatientID) {
		return
	}
	if req.DoctorID == "" {
		writeValidationErrors(w, []string{"Doctor is required"})
		return
	}

	if err := rules.ValidateAppointmentDate(req.PreferredTime, a.clock()); err != nil {
		writeValidationErrors(w, []string{err.Error()})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	active, err := a.DB.FindActiveByDoctor(ctx, req.DoctorID)
	if err != nil {
		config.ErrorStatus("failed to get doctor appointments", http.StatusInternalServerError, w, err)
		return
	}
	if rules.HasAppointmentConflictWithin(req.PreferredTime, rules.ScheduledFrom(active), a.window()) {
		writeErrors(w, http.StatusConflict, []string{ErrAppointmentConflict.Error()})
		return
	}

	appt, err := a.DB.InsertOne(ctx, models.Appointment{
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		PreferredTime: req.PreferredTime,
		Reason:        rules.SanitizeText(req.Reason),
		Status:        models.StatusPending,
	})
	if err != nil {
		config.ErrorStatus("failed to create appointment", http.StatusInternalServerError, w, err)
		return
	}

	if a.Notifier != nil {
		go a.notify(*appt)
	}
	writeJSON(w, http.StatusCreated, appt)
}

// notify runs after the response, detached from the request context
func (a Appointment) notify(appt models.Appointment) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	if err := a.Notifier.NotifyAppointmentCreated(ctx, appt); err != nil {
		zap.S().Errorw("failed to notify doctor of appointment",
			"appointmentId", appt.ID.Hex(),
			"doctorId", appt.DoctorID,
			"error", err)
	}
}

// UpdateAppointmentStatusHandler moves an appointment to a new status with optional notes
func (a Appointment) UpdateAppointmentStatusHandler(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointment_id"]

	var req models.AppointmentStatusUpdate
	if !decodeBody(w, r, &req) {
		return
	}
	if !req.Status.Valid() {
		writeValidationErrors(w, []string{"Status must be pending, approved, rejected, or completed"})
		return
	}
	req.Notes = rules.SanitizeText(req.Notes)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := a.DB.UpdateStatus(ctx, appointmentID, req); err != nil {
		config.ErrorStatus("failed to update appointment status", dbErrorStatus(err), w, err)
		return
	}
	appt, err := a.DB.FindByID(ctx, appointmentID)
	if err != nil {
		config.ErrorStatus("failed to get appointment", dbErrorStatus(err), w, err)
		return
	}
	writeJSON(w, http.StatusOK, appt)
}

// AppointmentsByPatientHandler lists a patient's appointments
func (a Appointment) AppointmentsByPatientHandler(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patient_id"]
	if !callerCanAccessPatient(w, r, patientID) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	appts, err := a.DB.FindByPatient(ctx, patientID)
	if err != nil {
		config.ErrorStatus("failed to get appointments", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, appts)
}

// AppointmentsByDoctorHandler lists a doctor's appointments with each patient's profile attached
func (a Appointment) AppointmentsByDoctorHandler(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctor_id"]
	if claims, ok := api.ClaimsFromContext(r.Context()); ok && claims.Role == models.RoleDoctor && claims.UserID() != doctorID {
		config.ErrorStatus("not allowed to view another doctor's appointments", http.StatusForbidden, w, errForbidden)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	appts, err := a.DB.FindByDoctor(ctx, doctorID)
	if err != nil {
		config.ErrorStatus("failed to get appointments", http.StatusInternalServerError, w, err)
		return
	}

	out, err := a.withPatients(ctx, appts)
	if err != nil {
		config.ErrorStatus("failed to get patient profiles", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// withPatients resolves each appointment's patient profile with bounded concurrency.
// A missing profile leaves Patient nil.
func (a Appointment) withPatients(ctx context.Context, appts []models.Appointment) ([]models.AppointmentWithPatient, error) {
	out := make([]models.AppointmentWithPatient, len(appts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(patientLookupLimit)
	for i := range appts {
		i := i
		out[i].Appointment = appts[i]
		g.Go(func() error {
			profile, err := a.PDB.FindByUserID(gctx, appts[i].PatientID)
			if errors.Is(err, databases.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			out[i].Patient = profile
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (a Appointment) window() time.Duration {
	if a.ConflictWindow > 0 {
		return a.ConflictWindow
	}
	return rules.DefaultConflictWindow
}

func (a Appointment) clock() time.Time {
	if a.now != nil {
		return a.now()
	}
	return time.Now()
}
