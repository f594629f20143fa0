package rules

import "github.com/vitalcheck/vitalcheck-api/models"

// ClassifySeverity bands a reading as low, medium or high using fixed thresholds.
// It is rule based, not a clinical score, and is only used to annotate views.
func ClassifySeverity(v models.VitalReading) models.Severity {
	high := v.Temperature >= 38.5 ||
		v.SpO2 < 92 ||
		v.BPSys >= 180 ||
		v.BPDia >= 110 ||
		v.HeartRate >= 120 ||
		v.HeartRate <= 45
	if high {
		return models.SeverityHigh
	}

	medium := (v.Temperature >= 37.5 && v.Temperature < 38.5) ||
		(v.SpO2 >= 92 && v.SpO2 < 95) ||
		(v.BPSys >= 140 && v.BPSys < 180) ||
		(v.BPDia >= 90 && v.BPDia < 110) ||
		(v.HeartRate >= 100 && v.HeartRate < 120) ||
		(v.HeartRate > 45 && v.HeartRate < 55)
	if medium {
		return models.SeverityMedium
	}

	return models.SeverityLow
}
