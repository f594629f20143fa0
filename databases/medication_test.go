package databases_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vitalcheck/vitalcheck-api/databases"
	"github.com/vitalcheck/vitalcheck-api/databases/mocks"
	"github.com/vitalcheck/vitalcheck-api/models"
)

func TestMedicationDatabase_InsertOne(t *testing.T) {
	pinned := time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)
	defer databases.SetNow(pinned)()
	oid := primitive.NewObjectID()

	insertResult := mocks.NewInsertOneResultHelper(t)
	insertResult.On("Decode").Return(oid)

	collectionHelper := mocks.NewCollectionHelper(t)
	collectionHelper.On("InsertOne", context.Background(), mock.Anything).Return(insertResult, nil)

	dbHelper := mocks.NewDatabaseHelper(t)
	dbHelper.On("Collection", "medications").Return(collectionHelper)

	med, err := databases.NewMedicationDatabase(dbHelper).InsertOne(context.Background(), models.Medication{Name: "Aspirin"})
	require.NoError(t, err)
	assert.Equal(t, oid, med.ID)
	assert.Equal(t, primitive.NewDateTimeFromTime(pinned), med.CreatedAt)
	assert.Equal(t, med.CreatedAt, med.UpdatedAt)
}

func TestMedicationDatabase_Update(t *testing.T) {
	oid := primitive.NewObjectID()

	collectionHelper := mocks.NewCollectionHelper(t)
	collectionHelper.On("UpdateOne", context.Background(), bson.M{"_id": oid}, mock.MatchedBy(func(update bson.M) bool {
		set := update["$set"].(bson.M)
		return set["name"] == "Ibuprofen" && set["dose"] == "200mg"
	})).Return(&mongo.UpdateResult{MatchedCount: 1}, nil)

	dbHelper := mocks.NewDatabaseHelper(t)
	dbHelper.On("Collection", "medications").Return(collectionHelper)

	err := databases.NewMedicationDatabase(dbHelper).Update(context.Background(), models.Medication{ID: oid, Name: "Ibuprofen", Dose: "200mg"})
	assert.NoError(t, err)
}

func TestMedicationDatabase_Delete(t *testing.T) {
	oid := primitive.NewObjectID()
	gone := primitive.NewObjectID()

	collectionHelper := mocks.NewCollectionHelper(t)
	collectionHelper.On("DeleteOne", context.Background(), bson.M{"_id": oid}).Return(int64(1), nil)
	collectionHelper.On("DeleteOne", context.Background(), bson.M{"_id": gone}).Return(int64(0), nil)

	dbHelper := mocks.NewDatabaseHelper(t)
	dbHelper.On("Collection", "medications").Return(collectionHelper)

	medDba := databases.NewMedicationDatabase(dbHelper)

	assert.NoError(t, medDba.Delete(context.Background(), oid.Hex()))
	assert.ErrorIs(t, medDba.Delete(context.Background(), gone.Hex()), databases.ErrNotFound)
	assert.ErrorIs(t, medDba.Delete(context.Background(), "bogus"), databases.ErrInvalidID)
}

func TestMedicationDatabase_FindByFrequency(t *testing.T) {
	cursor := mocks.NewCursorHelper(t)
	cursor.On("Decode", context.Background(), mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(1).(*[]models.Medication)
		*arg = []models.Medication{{Name: "Metformin"}}
	})

	freqs := []models.Frequency{models.FrequencyDaily, models.FrequencyWeekly}
	collectionHelper := mocks.NewCollectionHelper(t)
	collectionHelper.On("Find", context.Background(), bson.M{"schedule.frequency": bson.M{"$in": freqs}}).Return(cursor, nil)

	dbHelper := mocks.NewDatabaseHelper(t)
	dbHelper.On("Collection", "medications").Return(collectionHelper)

	meds, err := databases.NewMedicationDatabase(dbHelper).FindByFrequency(context.Background(), freqs)
	require.NoError(t, err)
	assert.Equal(t, "Metformin", meds[0].Name)
}
