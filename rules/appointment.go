package rules

import (
	"errors"
	"time"

	"github.com/vitalcheck/vitalcheck-api/models"
)

// DefaultConflictWindow is the minimum separation between two active appointments
// with the same doctor
const DefaultConflictWindow = 30 * time.Minute

// Appointment date errors
var (
	ErrInvalidPreferredTime = errors.New("Preferred time is invalid")
	ErrAppointmentInPast    = errors.New("Appointments cannot be scheduled in the past")
)

// isoLayouts are the ISO-8601 shapes accepted for timestamps: extended and basic
// offsets, a T or space separator, optional seconds. Layouts without an offset are read as UTC.
var isoLayouts = func() []string {
	var layouts []string
	for _, sep := range []string{"T", " "} {
		for _, clock := range []string{"15:04:05.999999999", "15:04"} {
			base := "2006-01-02" + sep + clock
			layouts = append(layouts, base+"Z07:00", base+"Z0700", base+"Z07", base)
		}
	}
	return append(layouts, "2006-01-02")
}()

// ParseISO parses an ISO-8601 date or timestamp
func ParseISO(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ValidateAppointmentDate returns nil when preferredTime parses and is strictly after now.
// A time equal to now counts as the past.
func ValidateAppointmentDate(preferredTime string, now time.Time) error {
	preferred, ok := ParseISO(preferredTime)
	if !ok {
		return ErrInvalidPreferredTime
	}
	if !preferred.After(now) {
		return ErrAppointmentInPast
	}
	return nil
}

// ScheduledAppointment is the slice of an existing appointment the conflict check needs
type ScheduledAppointment struct {
	PreferredTime string
	Status        models.AppointmentStatus
}

// HasAppointmentConflict reports a conflict using DefaultConflictWindow
func HasAppointmentConflict(candidate string, existing []ScheduledAppointment) bool {
	return HasAppointmentConflictWithin(candidate, existing, DefaultConflictWindow)
}

// HasAppointmentConflictWithin reports whether any pending or approved appointment lies
// less than window away from candidate, in either direction. An unparseable candidate
// never conflicts and unparseable existing entries are skipped.
func HasAppointmentConflictWithin(candidate string, existing []ScheduledAppointment, window time.Duration) bool {
	target, ok := ParseISO(candidate)
	if !ok {
		return false
	}

	for _, appt := range existing {
		if !appt.Status.Active() {
			continue
		}
		at, ok := ParseISO(appt.PreferredTime)
		if !ok {
			continue
		}
		d := at.Sub(target)
		if d < 0 {
			d = -d
		}
		if d < window {
			return true
		}
	}
	return false
}

// ScheduledFrom projects stored appointments onto the conflict check input
func ScheduledFrom(appts []models.Appointment) []ScheduledAppointment {
	out := make([]ScheduledAppointment, 0, len(appts))
	for _, a := range appts {
		out = append(out, ScheduledAppointment{PreferredTime: a.PreferredTime, Status: a.Status})
	}
	return out
}
