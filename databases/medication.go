package databases

// go generate: mockery --name MedicationDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vitalcheck/vitalcheck-api/models"
)

const medicationName = "medications"

// MedicationDatabase contains the methods to use with the medications database
type MedicationDatabase interface {
	FindByID(ctx context.Context, id string) (*models.Medication, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.Medication, error)
	FindByFrequency(ctx context.Context, frequencies []models.Frequency) ([]models.Medication, error)
	InsertOne(ctx context.Context, med models.Medication) (*models.Medication, error)
	Update(ctx context.Context, med models.Medication) error
	Delete(ctx context.Context, id string) error
}

type medicationDatabase struct {
	db DatabaseHelper
}

// NewMedicationDatabase initializes a new instance of medication database with the provided db connection
func NewMedicationDatabase(db DatabaseHelper) MedicationDatabase {
	return &medicationDatabase{
		db: db,
	}
}

func (m *medicationDatabase) FindByID(ctx context.Context, id string) (*models.Medication, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	med := &models.Medication{}
	if err := findOne(ctx, m.db.Collection(medicationName), bson.M{"_id": oid}, med); err != nil {
		return nil, err
	}
	return med, nil
}

// FindByPatient returns a patient's medications ordered by name
func (m *medicationDatabase) FindByPatient(ctx context.Context, patientID string) ([]models.Medication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return findAll[models.Medication](ctx, m.db.Collection(medicationName), bson.M{"patientId": patientID}, opts)
}

func (m *medicationDatabase) FindByFrequency(ctx context.Context, frequencies []models.Frequency) ([]models.Medication, error) {
	filter := bson.M{"schedule.frequency": bson.M{"$in": frequencies}}
	return findAll[models.Medication](ctx, m.db.Collection(medicationName), filter)
}

func (m *medicationDatabase) InsertOne(ctx context.Context, med models.Medication) (*models.Medication, error) {
	ts := primitive.NewDateTimeFromTime(now())
	med.CreatedAt = ts
	med.UpdatedAt = ts
	res, err := m.db.Collection(medicationName).InsertOne(ctx, med)
	if err != nil {
		return nil, err
	}
	med.ID = insertedID(res)
	return &med, nil
}

// Update replaces the editable fields of med and bumps updatedAt
func (m *medicationDatabase) Update(ctx context.Context, med models.Medication) error {
	update := bson.M{"$set": bson.M{
		"name":      med.Name,
		"dose":      med.Dose,
		"schedule":  med.Schedule,
		"startDate": med.StartDate,
		"endDate":   med.EndDate,
		"notes":     med.Notes,
		"updatedAt": primitive.NewDateTimeFromTime(now()),
	}}
	return matchedOrNotFound(m.db.Collection(medicationName).UpdateOne(ctx, bson.M{"_id": med.ID}, update))
}

func (m *medicationDatabase) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	deleted, err := m.db.Collection(medicationName).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}
