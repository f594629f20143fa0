package databases

// go generate: mockery --name VitalDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/vitalcheck/vitalcheck-api/models"
)

const vitalName = "vitals"

// VitalDatabase contains the methods to use with the vitals database
type VitalDatabase interface {
	InsertOne(ctx context.Context, record models.VitalRecord) (*models.VitalRecord, error)
	FindByPatient(ctx context.Context, patientID string, limit int64) ([]models.VitalRecord, error)
}

type vitalDatabase struct {
	db DatabaseHelper
}

// NewVitalDatabase initializes a new instance of vital database with the provided db connection
func NewVitalDatabase(db DatabaseHelper) VitalDatabase {
	return &vitalDatabase{
		db: db,
	}
}

func (v *vitalDatabase) InsertOne(ctx context.Context, record models.VitalRecord) (*models.VitalRecord, error) {
	res, err := v.db.Collection(vitalName).InsertOne(ctx, record)
	if err != nil {
		return nil, err
	}
	record.ID = insertedID(res)
	return &record, nil
}

// FindByPatient returns the newest readings first
func (v *vitalDatabase) FindByPatient(ctx context.Context, patientID string, limit int64) ([]models.VitalRecord, error) {
	return findAll[models.VitalRecord](ctx, v.db.Collection(vitalName),
		bson.M{"patientId": patientID}, newestFirst("timestamp", limit))
}
