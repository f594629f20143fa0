package databases

// go generate: mockery --name PatientDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/vitalcheck/vitalcheck-api/models"
)

const patientName = "patients"

// PatientDatabase contains the methods to use with the patient profile database
type PatientDatabase interface {
	FindByUserID(ctx context.Context, userID string) (*models.PatientProfile, error)
	InsertOne(ctx context.Context, profile models.PatientProfile) (*models.PatientProfile, error)
}

type patientDatabase struct {
	db DatabaseHelper
}

// NewPatientDatabase initializes a new instance of patient database with the provided db connection
func NewPatientDatabase(db DatabaseHelper) PatientDatabase {
	return &patientDatabase{
		db: db,
	}
}

func (p *patientDatabase) FindByUserID(ctx context.Context, userID string) (*models.PatientProfile, error) {
	profile := &models.PatientProfile{}
	if err := findOne(ctx, p.db.Collection(patientName), bson.M{"userId": userID}, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (p *patientDatabase) InsertOne(ctx context.Context, profile models.PatientProfile) (*models.PatientProfile, error) {
	res, err := p.db.Collection(patientName).InsertOne(ctx, profile)
	if err != nil {
		return nil, err
	}
	profile.ID = insertedID(res)
	return &profile, nil
}
