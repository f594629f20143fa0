package databases

// go generate: mockery --name NotificationDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalcheck/vitalcheck-api/models"
)

const notificationName = "notifications"

// NotificationDatabase contains the methods to use with the notifications database
type NotificationDatabase interface {
	InsertOne(ctx context.Context, n models.Notification) (*models.Notification, error)
	InsertMany(ctx context.Context, ns []models.Notification) (int, error)
	FindByUser(ctx context.Context, userID string, unreadOnly bool, limit, page int) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

type notificationDatabase struct {
	db DatabaseHelper
}

// NewNotificationDatabase initializes a new instance of notification database with the provided db connection
func NewNotificationDatabase(db DatabaseHelper) NotificationDatabase {
	return &notificationDatabase{
		db: db,
	}
}

func (n *notificationDatabase) InsertOne(ctx context.Context, notification models.Notification) (*models.Notification, error) {
	notification.Read = false
	notification.CreatedAt = primitive.NewDateTimeFromTime(now())
	res, err := n.db.Collection(notificationName).InsertOne(ctx, notification)
	if err != nil {
		return nil, err
	}
	notification.ID = insertedID(res)
	return &notification, nil
}

// InsertMany stores every notification unread with a shared createdAt
func (n *notificationDatabase) InsertMany(ctx context.Context, ns []models.Notification) (int, error) {
	if len(ns) == 0 {
		return 0, nil
	}
	ts := primitive.NewDateTimeFromTime(now())
	docs := make([]interface{}, 0, len(ns))
	for _, notification := range ns {
		notification.Read = false
		notification.CreatedAt = ts
		docs = append(docs, notification)
	}
	ids, err := n.db.Collection(notificationName).InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// FindByUser pages through a user's notifications, newest first
func (n *notificationDatabase) FindByUser(ctx context.Context, userID string, unreadOnly bool, limit, page int) ([]models.Notification, error) {
	filter := bson.M{"userId": userID}
	if unreadOnly {
		filter["read"] = false
	}
	opts := newMongoPaginate(limit, page).getPaginatedOpts()
	opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return findAll[models.Notification](ctx, n.db.Collection(notificationName), filter, opts)
}

// MarkRead flags one of userID's notifications as read
func (n *notificationDatabase) MarkRead(ctx context.Context, id, userID string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return matchedOrNotFound(n.db.Collection(notificationName).UpdateOne(ctx,
		bson.M{"_id": oid, "userId": userID},
		bson.M{"$set": bson.M{"read": true}},
	))
}
