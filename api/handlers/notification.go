package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vitalcheck/vitalcheck-api/api"
	"github.com/vitalcheck/vitalcheck-api/config"
	"github.com/vitalcheck/vitalcheck-api/databases"
	"github.com/vitalcheck/vitalcheck-api/models"
)

const defaultNotificationLimit = 20

// Notification exists for dependency injection purposes
type Notification struct {
	DB databases.NotificationDatabase
}

// NotificationsByUserHandler pages through a user's notifications, newest first.
// ?unread=true limits the list to unread ones.
func (n Notification) NotificationsByUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	claims, ok := api.ClaimsFromContext(r.Context())
	if !ok || (claims.UserID() != userID && claims.Role != models.RoleAdmin) {
		config.ErrorStatus("not allowed to read these notifications", http.StatusForbidden, w, errForbidden)
		return
	}

	unread := r.URL.Query().Get("unread") == "true"
	limit := queryInt(r, "limit", defaultNotificationLimit)
	page := queryInt(r, "page", 1)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	notifications, err := n.DB.FindByUser(ctx, userID, unread, limit, page)
	if err != nil {
		config.ErrorStatus("failed to get notifications", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

// MarkNotificationReadHandler marks one of the caller's notifications as read
func (n Notification) MarkNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	notificationID := mux.Vars(r)["notification_id"]
	claims, ok := api.ClaimsFromContext(r.Context())
	if !ok {
		config.ErrorStatus("unauthorized", http.StatusUnauthorized, w, errMissingClaims)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := n.DB.MarkRead(ctx, notificationID, claims.UserID()); err != nil {
		config.ErrorStatus("failed to mark notification read", dbErrorStatus(err), w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "notification marked read"})
}
