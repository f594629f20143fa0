package databases

// go generate: mockery --name SymptomDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/vitalcheck/vitalcheck-api/models"
)

const symptomName = "symptoms"

// SymptomDatabase contains the methods to use with the symptoms database
type SymptomDatabase interface {
	InsertOne(ctx context.Context, entry models.SymptomEntry) (*models.SymptomEntry, error)
	FindByPatient(ctx context.Context, patientID string, limit int64) ([]models.SymptomEntry, error)
}

type symptomDatabase struct {
	db DatabaseHelper
}

// NewSymptomDatabase initializes a new instance of symptom database with the provided db connection
func NewSymptomDatabase(db DatabaseHelper) SymptomDatabase {
	return &symptomDatabase{
		db: db,
	}
}

func (s *symptomDatabase) InsertOne(ctx context.Context, entry models.SymptomEntry) (*models.SymptomEntry, error) {
	res, err := s.db.Collection(symptomName).InsertOne(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = insertedID(res)
	return &entry, nil
}

func (s *symptomDatabase) FindByPatient(ctx context.Context, patientID string, limit int64) ([]models.SymptomEntry, error) {
	return findAll[models.SymptomEntry](ctx, s.db.Collection(symptomName),
		bson.M{"patientId": patientID}, newestFirst("timestamp", limit))
}
