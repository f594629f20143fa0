package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SymptomEntry holds the structure for the symptoms collection in mongo
type SymptomEntry struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PatientID string             `json:"patientId" bson:"patientId"`
	Text      string             `json:"text" bson:"text"`
	Tags      []string           `json:"tags" bson:"tags"`
	Timestamp string             `json:"timestamp" bson:"timestamp"`
}
