package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Frequency is how often a medication is taken
type Frequency string

// Allowed medication frequencies
const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyAsNeeded Frequency = "as-needed"
)

// MedicationSchedule holds the frequency and the HH:MM times of day a dose is due
type MedicationSchedule struct {
	Frequency Frequency `json:"frequency" bson:"frequency"`
	Times     []string  `json:"times" bson:"times"`
}

// Medication holds the structure for the medications collection in mongo
type Medication struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PatientID string             `json:"patientId" bson:"patientId"`
	Name      string             `json:"name" bson:"name"`
	Dose      string             `json:"dose" bson:"dose"`
	Schedule  MedicationSchedule `json:"schedule" bson:"schedule"`
	StartDate string             `json:"startDate" bson:"startDate"`
	EndDate   string             `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Notes     string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// MedicationUpdate is a partial medication payload. Nil fields are left untouched.
type MedicationUpdate struct {
	Name      *string             `json:"name"`
	Dose      *string             `json:"dose"`
	Schedule  *MedicationSchedule `json:"schedule"`
	StartDate *string             `json:"startDate"`
	EndDate   *string             `json:"endDate"`
	Notes     *string             `json:"notes"`
}

// Apply returns a copy of m with the non-nil fields of u applied
func (u MedicationUpdate) Apply(m Medication) Medication {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Dose != nil {
		m.Dose = *u.Dose
	}
	if u.Schedule != nil {
		m.Schedule = *u.Schedule
	}
	if u.StartDate != nil {
		m.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		m.EndDate = *u.EndDate
	}
	if u.Notes != nil {
		m.Notes = *u.Notes
	}
	return m
}
