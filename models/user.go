package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is the access level of a user
type Role string

// User roles
const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// User holds the structure for the users collection in mongo
type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Name      string             `json:"name" bson:"name"`
	Role      Role               `json:"role" bson:"role"`
	Password  string             `json:"-" bson:"password"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

// PatientProfile holds the structure for the patients collection in mongo
type PatientProfile struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID  string             `json:"userId" bson:"userId"`
	Name    string             `json:"name" bson:"name"`
	DOB     string             `json:"dob,omitempty" bson:"dob,omitempty"`
	Gender  string             `json:"gender,omitempty" bson:"gender,omitempty"`
	Contact string             `json:"contact,omitempty" bson:"contact,omitempty"`
}

// SignupRequest is the body of a signup call
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// LoginRequest is the body of a login call
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned after a successful login or signup
type TokenResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RoleUpdateRequest is the body of a role change
type RoleUpdateRequest struct {
	Role Role `json:"role"`
}
