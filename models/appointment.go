package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentStatus is the triage state of an appointment request
type AppointmentStatus string

// Appointment statuses
const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusRejected  AppointmentStatus = "rejected"
	StatusCompleted AppointmentStatus = "completed"
)

// Valid reports whether s is a known status
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Active reports whether an appointment in this status still holds its slot
func (s AppointmentStatus) Active() bool {
	return s == StatusPending || s == StatusApproved
}

// Appointment holds the structure for the appointments collection in mongo
type Appointment struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PatientID     string             `json:"patientId" bson:"patientId"`
	DoctorID      string             `json:"doctorId" bson:"doctorId"`
	PreferredTime string             `json:"preferredTime" bson:"preferredTime"`
	Reason        string             `json:"reason" bson:"reason"`
	Status        AppointmentStatus  `json:"status" bson:"status"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt     primitive.DateTime `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// AppointmentRequest is the body of a new appointment request
type AppointmentRequest struct {
	PatientID     string `json:"patientId"`
	DoctorID      string `json:"doctorId"`
	PreferredTime string `json:"preferredTime"`
	Reason        string `json:"reason"`
}

// AppointmentStatusUpdate is the body of a status change
type AppointmentStatusUpdate struct {
	Status AppointmentStatus `json:"status"`
	Notes  string            `json:"notes"`
}

// AppointmentWithPatient is an appointment joined with the patient's profile
type AppointmentWithPatient struct {
	Appointment
	Patient *PatientProfile `json:"patient,omitempty"`
}
