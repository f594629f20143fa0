package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Visit holds the structure for the visits collection in mongo
type Visit struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PatientID string             `json:"patientId" bson:"patientId"`
	DoctorID  string             `json:"doctorId" bson:"doctorId"`
	Date      string             `json:"date" bson:"date"`
	Notes     string             `json:"notes" bson:"notes"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

// PatientHistory is everything a doctor sees about a patient
type PatientHistory struct {
	PatientID   string         `json:"patientId"`
	Vitals      []VitalRecord  `json:"vitals"`
	Symptoms    []SymptomEntry `json:"symptoms"`
	Medications []Medication   `json:"medications"`
	Visits      []Visit        `json:"visits"`
}
