package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vitalcheck/vitalcheck-api/databases/mocks"
	"github.com/vitalcheck/vitalcheck-api/models"
)

func TestVisit_CreateVisitHandler(t *testing.T) {
	vdb := mocks.NewVisitDatabase(t)
	vdb.On("InsertOne", mock.Anything, mock.MatchedBy(func(v models.Visit) bool {
		return v.DoctorID == testDoctorID && v.PatientID == testPatientID && v.Notes == "bp stable"
	})).Return(&models.Visit{PatientID: testPatientID, DoctorID: testDoctorID}, nil)
	v := Visit{DB: vdb}

	body := map[string]string{"patientId": testPatientID, "date": "2024-03-01", "notes": " bp  stable "}
	rr := serve(v.CreateVisitHandler, newRequest(t, "POST", "/", body, nil, models.RoleDoctor, testDoctorID))
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestVisit_CreateVisitHandlerValidation(t *testing.T) {
	v := Visit{DB: mocks.NewVisitDatabase(t)}

	rr := serve(v.CreateVisitHandler, newRequest(t, "POST", "/", map[string]string{"date": "soon"}, nil, models.RoleAdmin, "admin"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, []string{"Patient is required", "Doctor is required", "Visit date is required"}, validationErrors(t, rr))
}

func TestVisit_VisitsByPatientHandler(t *testing.T) {
	vdb := mocks.NewVisitDatabase(t)
	vdb.On("FindByPatient", mock.Anything, testPatientID).Return([]models.Visit{{Notes: "annual"}}, nil)
	v := Visit{DB: vdb}

	rr := serve(v.VisitsByPatientHandler, newRequest(t, "GET", "/", nil, map[string]string{"patient_id": testPatientID}, models.RolePatient, testPatientID))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "annual")
}
