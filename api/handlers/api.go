package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vitalcheck/vitalcheck-api/api"
	"github.com/vitalcheck/vitalcheck-api/api/notifier"
	"github.com/vitalcheck/vitalcheck-api/config"
	"github.com/vitalcheck/vitalcheck-api/databases"
	"github.com/vitalcheck/vitalcheck-api/models"
)

// requestTimeout bounds every /api/v1 request
const requestTimeout = 30 * time.Second

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	Metrics  *api.MetricsCollector
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	if a.Metrics == nil {
		a.Metrics = api.NewMetricsCollector()
	}
	authn := api.NewAuthenticator(a.Config.JWTSecret)

	udb := databases.NewUserDatabase(a.dbHelper)
	pdb := databases.NewPatientDatabase(a.dbHelper)
	vdb := databases.NewVitalDatabase(a.dbHelper)
	sdb := databases.NewSymptomDatabase(a.dbHelper)
	mdb := databases.NewMedicationDatabase(a.dbHelper)
	adb := databases.NewAppointmentDatabase(a.dbHelper)
	visitDB := databases.NewVisitDatabase(a.dbHelper)
	ndb := databases.NewNotificationDatabase(a.dbHelper)

	u := User{DB: udb, PDB: pdb, Auth: authn}
	v := Vital{DB: vdb}
	s := Symptom{DB: sdb}
	m := Medication{DB: mdb}
	appt := Appointment{
		DB:  adb,
		PDB: pdb,
		Notifier: &notifier.AppointmentNotifier{
			UDB:  udb,
			NDB:  ndb,
			Mail: notifier.NewSendGridSender(a.Config.SendGridAPIKey),
			From: a.Config.MailFrom,
		},
		ConflictWindow: a.Config.ConflictWindow,
	}
	visit := Visit{DB: visitDB}
	h := History{VDB: vdb, SDB: sdb, MDB: mdb, VisitDB: visitDB}
	search := Search{DB: udb}
	n := Notification{DB: ndb}

	r := mux.NewRouter()
	r.Use(api.MetricsMiddleware(a.Metrics))

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(requestTimeout))

	staff := api.RequireRole(models.RoleDoctor, models.RoleAdmin)
	protect := func(f http.HandlerFunc) http.Handler { return authn.Middleware(f) }
	staffOnly := func(f http.HandlerFunc) http.Handler { return authn.Middleware(staff(f)) }
	adminOnly := func(f http.HandlerFunc) http.Handler { return authn.Middleware(api.RequireRole(models.RoleAdmin)(f)) }

	apiCreate.Handle("/metrics", adminOnly(a.Metrics.SummaryHandler)).Methods("GET")

	apiCreate.Handle("/auth/signup", http.HandlerFunc(u.SignupHandler)).Methods("POST")
	apiCreate.Handle("/auth/login", http.HandlerFunc(u.LoginHandler)).Methods("POST")
	apiCreate.Handle("/users/{user_id}/role", adminOnly(u.UpdateRoleHandler)).Methods("PUT")

	apiCreate.Handle("/patients/search", staffOnly(search.PatientSearchHandler)).Methods("GET")

	apiCreate.Handle("/patients/{patient_id}/vitals", protect(v.CreateVitalHandler)).Methods("POST")
	apiCreate.Handle("/patients/{patient_id}/vitals", protect(v.VitalsByPatientHandler)).Methods("GET")

	apiCreate.Handle("/patients/{patient_id}/symptoms", protect(s.CreateSymptomHandler)).Methods("POST")
	apiCreate.Handle("/patients/{patient_id}/symptoms", protect(s.SymptomsByPatientHandler)).Methods("GET")

	apiCreate.Handle("/patients/{patient_id}/medications", protect(m.CreateMedicationHandler)).Methods("POST")
	apiCreate.Handle("/patients/{patient_id}/medications", protect(m.MedicationsByPatientHandler)).Methods("GET")
	apiCreate.Handle("/medications/{medication_id}", protect(m.UpdateMedicationHandler)).Methods("PUT")
	apiCreate.Handle("/medications/{medication_id}", protect(m.DeleteMedicationHandler)).Methods("DELETE")

	apiCreate.Handle("/appointments", protect(appt.RequestAppointmentHandler)).Methods("POST")
	apiCreate.Handle("/appointments/{appointment_id}/status", staffOnly(appt.UpdateAppointmentStatusHandler)).Methods("PUT")
	apiCreate.Handle("/patients/{patient_id}/appointments", protect(appt.AppointmentsByPatientHandler)).Methods("GET")
	apiCreate.Handle("/doctors/{doctor_id}/appointments", staffOnly(appt.AppointmentsByDoctorHandler)).Methods("GET")

	apiCreate.Handle("/visits", staffOnly(visit.CreateVisitHandler)).Methods("POST")
	apiCreate.Handle("/patients/{patient_id}/visits", protect(visit.VisitsByPatientHandler)).Methods("GET")

	apiCreate.Handle("/patients/{patient_id}/history", staffOnly(h.PatientHistoryHandler)).Methods("GET")

	apiCreate.Handle("/users/{user_id}/notifications", protect(n.NotificationsByUserHandler)).Methods("GET")
	apiCreate.Handle("/notifications/{notification_id}/read", protect(n.MarkNotificationReadHandler)).Methods("PUT")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {
	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)

	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()
	err = client.Connect(ctx)
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("vitalcheck-api has connected to the database")

	// initialize api router
	a.initializeRoutes()
	return nil
}

// DB exposes the connected database for background jobs started by main
func (a *App) DB() databases.DatabaseHelper {
	return a.dbHelper
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
