package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// NotificationType tags what a notification is about
type NotificationType string

// Notification types
const (
	NotificationAppointment NotificationType = "appointment"
	NotificationMedication  NotificationType = "medication"
	NotificationVisit       NotificationType = "visit"
	NotificationGeneral     NotificationType = "general"
)

// Notification holds the structure for the notifications collection in mongo
type Notification struct {
	ID        primitive.ObjectID     `json:"_id" bson:"_id,omitempty"`
	UserID    string                 `json:"userId" bson:"userId"`
	Type      NotificationType       `json:"type" bson:"type"`
	Payload   map[string]interface{} `json:"payload" bson:"payload"`
	Read      bool                   `json:"read" bson:"read"`
	CreatedAt primitive.DateTime     `json:"createdAt" bson:"createdAt"`
}

// SchedulerLock holds the structure for the schedulerlocks collection in mongo
type SchedulerLock struct {
	ID        string             `json:"_id" bson:"_id"`
	Owner     string             `json:"owner" bson:"owner"`
	ExpiresAt primitive.DateTime `json:"expiresAt" bson:"expiresAt"`
}
