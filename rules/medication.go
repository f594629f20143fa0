package rules

import (
	"regexp"
	"strings"

	"github.com/vitalcheck/vitalcheck-api/models"
)

// Medication validation messages, in the order they are checked
const (
	ErrMedicationNameRequired = "Medication name is required"
	ErrDoseRequired           = "Dose is required"
	ErrScheduleInvalid        = "Schedule is invalid"
	ErrStartDateRequired      = "Start date is required"
	ErrEndBeforeStart         = "End date must be after start date"
)

// timeOfDay is a lexical HH:MM check. Hours and minutes are not range checked, so "99:99" passes.
var timeOfDay = regexp.MustCompile(`^\d{2}:\d{2}$`)

// IsValidFrequency reports whether f is one of the recognized frequencies
func IsValidFrequency(f models.Frequency) bool {
	switch f {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly, models.FrequencyAsNeeded:
		return true
	}
	return false
}

// IsValidMedicationSchedule checks the frequency, that every scheduled frequency has at
// least one time, and that every time looks like HH:MM
func IsValidMedicationSchedule(s models.MedicationSchedule) bool {
	if !IsValidFrequency(s.Frequency) {
		return false
	}
	if s.Frequency != models.FrequencyAsNeeded && len(s.Times) == 0 {
		return false
	}
	for _, t := range s.Times {
		if !timeOfDay.MatchString(t) {
			return false
		}
	}
	return true
}

// ValidateMedicationInput returns every problem with m, in a fixed order. An empty
// result means the medication can be saved.
func ValidateMedicationInput(m models.Medication) []string {
	var errs []string
	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, ErrMedicationNameRequired)
	}
	if strings.TrimSpace(m.Dose) == "" {
		errs = append(errs, ErrDoseRequired)
	}
	if !IsValidMedicationSchedule(m.Schedule) {
		errs = append(errs, ErrScheduleInvalid)
	}
	if m.StartDate == "" {
		errs = append(errs, ErrStartDateRequired)
	}
	if m.StartDate != "" && m.EndDate != "" && endsBeforeStart(m.StartDate, m.EndDate) {
		errs = append(errs, ErrEndBeforeStart)
	}
	return errs
}

// endsBeforeStart is false when either date fails to parse
func endsBeforeStart(start, end string) bool {
	s, ok := ParseISO(start)
	if !ok {
		return false
	}
	e, ok := ParseISO(end)
	if !ok {
		return false
	}
	return e.Before(s)
}

