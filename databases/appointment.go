package databases

// go generate: mockery --name AppointmentDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalcheck/vitalcheck-api/models"
)

const appointmentName = "appointments"

// AppointmentDatabase contains the methods to use with the appointments database
type AppointmentDatabase interface {
	InsertOne(ctx context.Context, appt models.Appointment) (*models.Appointment, error)
	FindByID(ctx context.Context, id string) (*models.Appointment, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	FindActiveByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, update models.AppointmentStatusUpdate) error
}

type appointmentDatabase struct {
	db DatabaseHelper
}

// NewAppointmentDatabase initializes a new instance of appointment database with the provided db connection
func NewAppointmentDatabase(db DatabaseHelper) AppointmentDatabase {
	return &appointmentDatabase{
		db: db,
	}
}

func (a *appointmentDatabase) InsertOne(ctx context.Context, appt models.Appointment) (*models.Appointment, error) {
	appt.CreatedAt = primitive.NewDateTimeFromTime(now())
	res, err := a.db.Collection(appointmentName).InsertOne(ctx, appt)
	if err != nil {
		return nil, err
	}
	appt.ID = insertedID(res)
	return &appt, nil
}

func (a *appointmentDatabase) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	appt := &models.Appointment{}
	if err := findOne(ctx, a.db.Collection(appointmentName), bson.M{"_id": oid}, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (a *appointmentDatabase) FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return a.find(ctx, bson.M{"patientId": patientID})
}

func (a *appointmentDatabase) FindByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return a.find(ctx, bson.M{"doctorId": doctorID})
}

// FindActiveByDoctor returns the doctor's pending and approved appointments
func (a *appointmentDatabase) FindActiveByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return a.find(ctx, bson.M{
		"doctorId": doctorID,
		"status":   bson.M{"$in": bson.A{models.StatusPending, models.StatusApproved}},
	})
}

func (a *appointmentDatabase) UpdateStatus(ctx context.Context, id string, update models.AppointmentStatusUpdate) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	set := bson.M{
		"status":    update.Status,
		"updatedAt": primitive.NewDateTimeFromTime(now()),
	}
	if update.Notes != "" {
		set["notes"] = update.Notes
	}
	return matchedOrNotFound(a.db.Collection(appointmentName).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set}))
}

func (a *appointmentDatabase) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	return findAll[models.Appointment](ctx, a.db.Collection(appointmentName), filter, newestFirst("preferredTime", 0))
}
