package databases_test

import (
	"context"
	"errors"
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

func TestNotificationDatabase_InsertMany(t *testing.T) {
	pinned := time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)
	defer databases.SetNow(pinned)()

	collectionHelper := mocks.NewCollectionHelper(t)
	collectionHelper.On("InsertMany", context.Background(), mock.MatchedBy(func(docs []interface{}) bool {
		if len(docs) != 2 {
			return false
		}
		for _, d := range docs {
			n := d.(models.Notification)
			if n.Read || n.CreatedAt != primitive.NewDateTimeFromTime(pinned) {
				return false
			}
		}
		return true
	})).Return([]interface{}{"a", "b"}, nil)

	dbHelper := mocks.NewDatabaseHelper(t)
	dbHelper.On("Collection", "notifications").Return(collectionHelper)

	nDba := databases.NewNotificationDatabase(dbHelper)

	count, err := nDba.InsertMany(context.Background(), []models.Notification{
		{UserID: "p1", Type: models.NotificationMedication, Read: true},
		{UserID: "p1", Type: models.NotificationMedication},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNotificationDatabase_InsertManyEmpty(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)

	count, err := databases.NewNotificationDatabase(dbHelper).InsertMany(context.Background(), nil)
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestNotificationDatabase_FindByUser(t *testing.T) {
	collectionHelper := mocks.NewCollectionHelper(t)
	collectionHelper.On("Find", context.Background(), mock.Anything, mock.Anything).Return(nil, errors.New("mocked-error"))

	dbHelper := mocks.NewDatabaseHelper(t)
	dbHelper.On("Collection", "notifications").Return(collectionHelper)

	ns, err := databases.NewNotificationDatabase(dbHelper).FindByUser(context.Background(), "u1", true, 10, 1)
	assert.Nil(t, ns)
	assert.EqualError(t, err, "mocked-error")
}

func TestNotificationDatabase_MarkRead(t *testing.T) {
	oid := primitive.NewObjectID()

	collectionHelper := mocks.NewCollectionHelper(t)
	collectionHelper.On("UpdateOne", context.Background(), bson.M{"_id": oid, "userId": "u1"}, bson.M{"$set": bson.M{"read": true}}).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil)
	collectionHelper.On("UpdateOne", context.Background(), bson.M{"_id": oid, "userId": "u2"}, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 0}, nil)

	dbHelper := mocks.NewDatabaseHelper(t)
	dbHelper.On("Collection", "notifications").Return(collectionHelper)

	nDba := databases.NewNotificationDatabase(dbHelper)

	assert.NoError(t, nDba.MarkRead(context.Background(), oid.Hex(), "u1"))
	assert.ErrorIs(t, nDba.MarkRead(context.Background(), oid.Hex(), "u2"), databases.ErrNotFound)
}
