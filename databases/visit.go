package databases

// go generate: mockery --name VisitDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalcheck/vitalcheck-api/models"
)

const visitName = "visits"

// VisitDatabase contains the methods to use with the visits database
type VisitDatabase interface {
	InsertOne(ctx context.Context, visit models.Visit) (*models.Visit, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.Visit, error)
}

type visitDatabase struct {
	db DatabaseHelper
}

// NewVisitDatabase initializes a new instance of visit database with the provided db connection
func NewVisitDatabase(db DatabaseHelper) VisitDatabase {
	return &visitDatabase{
		db: db,
	}
}

func (v *visitDatabase) InsertOne(ctx context.Context, visit models.Visit) (*models.Visit, error) {
	visit.CreatedAt = primitive.NewDateTimeFromTime(now())
	res, err := v.db.Collection(visitName).InsertOne(ctx, visit)
	if err != nil {
		return nil, err
	}
	visit.ID = insertedID(res)
	return &visit, nil
}

func (v *visitDatabase) FindByPatient(ctx context.Context, patientID string) ([]models.Visit, error) {
	return findAll[models.Visit](ctx, v.db.Collection(visitName),
		bson.M{"patientId": patientID}, newestFirst("date", 0))
}
