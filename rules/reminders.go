package rules

import (
	"time"

	"github.com/vitalcheck/vitalcheck-api/models"
)

// MapMedicationNotifications expands a medication's schedule into the reminders due on
// date (YYYY-MM-DD). Weekly and as-needed medications produce none.
//
// Monthly schedules are expanded like daily ones.
//
// The returned notifications carry no id, read flag or creation time; whoever
// persists them stamps those.
func MapMedicationNotifications(medicationID string, med models.Medication, date string) []models.Notification {
	switch med.Schedule.Frequency {
	case models.FrequencyWeekly:
		// TODO: fire weekly reminders on the weekday of the start date.
		return nil
	case models.FrequencyAsNeeded:
		return nil
	}

	out := make([]models.Notification, 0, len(med.Schedule.Times))
	for _, t := range med.Schedule.Times {
		out = append(out, models.Notification{
			UserID: med.PatientID,
			Type:   models.NotificationMedication,
			Payload: map[string]interface{}{
				"medicationId": medicationID,
				"name":         med.Name,
				"dose":         med.Dose,
				"dueAt":        date + "T" + t,
			},
		})
	}
	return out
}

// ReminderDate formats t as the YYYY-MM-DD calendar date reminders are generated for
func ReminderDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("2006-01-02")
}
