package rules

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vitalcheck/vitalcheck-api/models"
)

// VitalKey names one of the vital sign fields of the vitals form
type VitalKey string

// Recognized vital sign keys
const (
	Temperature VitalKey = "temperature"
	HeartRate   VitalKey = "heartRate"
	BPSys       VitalKey = "bpSys"
	BPDia       VitalKey = "bpDia"
	SpO2        VitalKey = "spo2"
)

// VitalRange is the accepted [Min, Max] bound of a vital sign
type VitalRange struct {
	Min   float64
	Max   float64
	Label string
}

// vitalKeys keeps the order errors are produced in
var vitalKeys = [...]VitalKey{Temperature, HeartRate, BPSys, BPDia, SpO2}

var vitalRanges = map[VitalKey]VitalRange{
	Temperature: {Min: 30, Max: 45, Label: "Temperature (°C)"},
	HeartRate:   {Min: 30, Max: 220, Label: "Heart Rate (bpm)"},
	BPSys:       {Min: 40, Max: 250, Label: "Systolic BP (mmHg)"},
	BPDia:       {Min: 30, Max: 150, Label: "Diastolic BP (mmHg)"},
	SpO2:        {Min: 50, Max: 100, Label: "SpO₂ (%)"},
}

// Error messages for the systolic/diastolic cross check
const (
	ErrSystolicNotAbove  = "Systolic pressure must be higher than diastolic pressure"
	ErrDiastolicNotBelow = "Diastolic pressure must be lower than systolic pressure"
)

// VitalKeys returns the recognized vital keys in validation order
func VitalKeys() []VitalKey {
	keys := vitalKeys
	return keys[:]
}

// RangeFor returns the declared range of a vital key
func RangeFor(key VitalKey) (VitalRange, bool) {
	r, ok := vitalRanges[key]
	return r, ok
}

type valueKind int

const (
	kindEmpty valueKind = iota
	kindNumber
	kindText
)

// VitalValue is a raw form value. It is empty, a number, or text that did not parse
// as a number. The zero value is empty.
type VitalValue struct {
	kind valueKind
	num  float64
	text string
}

// EmptyValue returns an explicitly empty form value
func EmptyValue() VitalValue { return VitalValue{} }

// NumberValue wraps a numeric form value
func NumberValue(f float64) VitalValue {
	if math.IsNaN(f) {
		return VitalValue{kind: kindText, text: "NaN"}
	}
	return VitalValue{kind: kindNumber, num: f}
}

// ParseValue converts raw text the way a form field is read: blank is empty,
// anything that parses as a float is a number, everything else is text. Values too
// large for a float64 are read as ±Inf so they fail the range check.
func ParseValue(s string) VitalValue {
	s = strings.TrimSpace(s)
	if s == "" {
		return EmptyValue()
	}
	f, err := strconv.ParseFloat(s, 64)
	if (err != nil && !errors.Is(err, strconv.ErrRange)) || math.IsNaN(f) {
		return VitalValue{kind: kindText, text: s}
	}
	return VitalValue{kind: kindNumber, num: f}
}

// IsEmpty reports whether the value was left blank
func (v VitalValue) IsEmpty() bool { return v.kind == kindEmpty }

// Float returns the numeric value and whether there is one
func (v VitalValue) Float() (float64, bool) { return v.num, v.kind == kindNumber }

// UnmarshalJSON accepts numbers, numeric strings, "" and null
func (v *VitalValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*v = EmptyValue()
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = ParseValue(s)
		return nil
	}
	*v = ParseValue(string(b))
	return nil
}

// MarshalJSON writes the value back in the shape it was read
func (v VitalValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindNumber:
		return json.Marshal(v.num)
	case kindText:
		return json.Marshal(v.text)
	}
	return []byte(`""`), nil
}

// VitalInput is the submitted vitals form, keyed by vital key. Missing keys count as empty.
type VitalInput map[VitalKey]VitalValue

// Reading converts a validated form into a reading. ok is false if any field is not a number.
func (in VitalInput) Reading() (reading models.VitalReading, ok bool) {
	fields := map[VitalKey]*float64{
		Temperature: &reading.Temperature,
		HeartRate:   &reading.HeartRate,
		BPSys:       &reading.BPSys,
		BPDia:       &reading.BPDia,
		SpO2:        &reading.SpO2,
	}
	for key, dst := range fields {
		f, isNum := in[key].Float()
		if !isNum {
			return models.VitalReading{}, false
		}
		*dst = f
	}
	return reading, true
}

// FieldErrors maps a vital key to its error message. An empty map means the form is valid.
type FieldErrors map[VitalKey]string

// ValidateVitals checks every recognized vital against its range and checks that
// systolic is above diastolic. Every problem found is reported.
func ValidateVitals(in VitalInput) FieldErrors {
	errs := FieldErrors{}

	for _, key := range vitalKeys {
		r := vitalRanges[key]
		v := in[key]

		if v.IsEmpty() {
			errs[key] = fmt.Sprintf("%s is required", r.Label)
			continue
		}
		f, ok := v.Float()
		if !ok {
			errs[key] = fmt.Sprintf("%s must be a number", r.Label)
			continue
		}
		if !withinRange(f, r) {
			errs[key] = fmt.Sprintf("%s must be between %s and %s", r.Label, formatBound(r.Min), formatBound(r.Max))
		}
	}

	sys, sysOK := in[BPSys].Float()
	dia, diaOK := in[BPDia].Float()
	if sysOK && diaOK && sys <= dia {
		errs[BPSys] = ErrSystolicNotAbove
		errs[BPDia] = ErrDiastolicNotBelow
	}

	return errs
}

func withinRange(f float64, r VitalRange) bool {
	return !math.IsInf(f, 0) && f >= r.Min && f <= r.Max
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
