package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vitalcheck/vitalcheck-api/databases"
	"github.com/vitalcheck/vitalcheck-api/databases/mocks"
	"github.com/vitalcheck/vitalcheck-api/models"
)

func TestNotification_NotificationsByUserHandler(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		role       models.Role
		uid        string
		unread     bool
		limit      int
		page       int
		wantStatus int
	}{
		{name: "own defaults", target: "/", role: models.RolePatient, uid: testPatientID, limit: defaultNotificationLimit, page: 1, wantStatus: http.StatusOK},
		{name: "own unread page two", target: "/?unread=true&limit=5&page=2", role: models.RolePatient, uid: testPatientID, unread: true, limit: 5, page: 2, wantStatus: http.StatusOK},
		{name: "admin", target: "/", role: models.RoleAdmin, uid: "admin", limit: defaultNotificationLimit, page: 1, wantStatus: http.StatusOK},
		{name: "someone else", target: "/", role: models.RoleDoctor, uid: testDoctorID, wantStatus: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ndb := mocks.NewNotificationDatabase(t)
			if tt.wantStatus == http.StatusOK {
				ndb.On("FindByUser", mock.Anything, testPatientID, tt.unread, tt.limit, tt.page).
					Return([]models.Notification{{UserID: testPatientID, Type: models.NotificationMedication}}, nil)
			}
			n := Notification{DB: ndb}

			req := newRequest(t, "GET", tt.target, nil, map[string]string{"user_id": testPatientID}, tt.role, tt.uid)
			rr := serve(n.NotificationsByUserHandler, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestNotification_MarkNotificationReadHandler(t *testing.T) {
	ndb := mocks.NewNotificationDatabase(t)
	ndb.On("MarkRead", mock.Anything, "n1", testPatientID).Return(nil)
	ndb.On("MarkRead", mock.Anything, "n2", testPatientID).Return(databases.ErrNotFound)
	n := Notification{DB: ndb}

	rr := serve(n.MarkNotificationReadHandler, newRequest(t, "PUT", "/", nil, map[string]string{"notification_id": "n1"}, models.RolePatient, testPatientID))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(n.MarkNotificationReadHandler, newRequest(t, "PUT", "/", nil, map[string]string{"notification_id": "n2"}, models.RolePatient, testPatientID))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(n.MarkNotificationReadHandler, newRequest(t, "PUT", "/", nil, map[string]string{"notification_id": "n1"}, "", ""))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
