package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Severity is the low/medium/high band of a vitals snapshot
type Severity string

// Severity bands
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// VitalReading is a fully populated set of vital signs
type VitalReading struct {
	Temperature float64 `json:"temperature" bson:"temperature"`
	HeartRate   float64 `json:"heartRate" bson:"heartRate"`
	BPSys       float64 `json:"bpSys" bson:"bpSys"`
	BPDia       float64 `json:"bpDia" bson:"bpDia"`
	SpO2        float64 `json:"spo2" bson:"spo2"`
}

// VitalRecord holds the structure for the vitals collection in mongo
type VitalRecord struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PatientID    string             `json:"patientId" bson:"patientId"`
	Timestamp    string             `json:"timestamp" bson:"timestamp"`
	VitalReading `bson:",inline"`
	Notes        string   `json:"notes,omitempty" bson:"notes,omitempty"`
	Severity     Severity `json:"severity,omitempty" bson:"-"`
}
