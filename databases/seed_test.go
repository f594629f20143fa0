package databases_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vitalcheck/vitalcheck-api/databases"
	"github.com/vitalcheck/vitalcheck-api/databases/mocks"
)

const seedJSON = `{
	"users": [
		{"id": "65f0c0ffee0000000000dd01", "name": "Dr. Grey", "role": "doctor"}
	],
	"medications": [
		{"id": "med-1", "name": "Metformin"},
		{"id": "med-2", "name": "Lisinopril"}
	]
}`

func TestSeed(t *testing.T) {
	data, err := databases.ReadSeedData(strings.NewReader(seedJSON))
	require.NoError(t, err)

	doctorID, err := primitive.ObjectIDFromHex("65f0c0ffee0000000000dd01")
	require.NoError(t, err)

	users := mocks.NewCollectionHelper(t)
	users.On("UpdateOne", context.Background(),
		bson.M{"_id": doctorID},
		bson.M{"$set": bson.M{"name": "Dr. Grey", "role": "doctor"}},
		mock.Anything,
	).Return(&mongo.UpdateResult{UpsertedCount: 1}, nil).Once()

	meds := mocks.NewCollectionHelper(t)
	meds.On("UpdateOne", context.Background(),
		bson.M{"_id": "med-1"}, bson.M{"$set": bson.M{"name": "Metformin"}}, mock.Anything,
	).Return(&mongo.UpdateResult{UpsertedCount: 1}, nil).Once()
	meds.On("UpdateOne", context.Background(),
		bson.M{"_id": "med-2"}, bson.M{"$set": bson.M{"name": "Lisinopril"}}, mock.Anything,
	).Return(&mongo.UpdateResult{MatchedCount: 1}, nil).Once()

	dbHelper := mocks.NewDatabaseHelper(t)
	dbHelper.On("Collection", "users").Return(users)
	dbHelper.On("Collection", "medications").Return(meds)

	n, err := databases.Seed(context.Background(), dbHelper, data)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestSeedMissingID(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)
	dbHelper.On("Collection", "visits").Return(mocks.NewCollectionHelper(t))

	n, err := databases.Seed(context.Background(), dbHelper, databases.SeedData{
		"visits": {{"notes": "no id"}},
	})
	assert.ErrorIs(t, err, databases.ErrSeedMissingID)
	assert.Zero(t, n)
}

func TestSeedUpdateError(t *testing.T) {
	coll := mocks.NewCollectionHelper(t)
	coll.On("UpdateOne", context.Background(), mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("mocked-error"))
	dbHelper := mocks.NewDatabaseHelper(t)
	dbHelper.On("Collection", "visits").Return(coll)

	_, err := databases.Seed(context.Background(), dbHelper, databases.SeedData{
		"visits": {{"id": "v1"}},
	})
	assert.EqualError(t, err, "failed to seed visits/v1: mocked-error")
}

func TestReadSeedDataInvalid(t *testing.T) {
	_, err := databases.ReadSeedData(strings.NewReader(`{"users": {}}`))
	assert.Error(t, err)
}
