package rules

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalcheck/vitalcheck-api/models"
)

func validInput() VitalInput {
	return VitalInput{
		Temperature: NumberValue(37.2),
		HeartRate:   NumberValue(80),
		BPSys:       NumberValue(120),
		BPDia:       NumberValue(80),
		SpO2:        NumberValue(98),
	}
}

func TestValidateVitals_Valid(t *testing.T) {
	errs := ValidateVitals(validInput())
	assert.Empty(t, errs)
}

func TestValidateVitals_AllFieldsFail(t *testing.T) {
	in := VitalInput{
		Temperature: NumberValue(50),
		HeartRate:   EmptyValue(),
		BPSys:       NumberValue(90),
		BPDia:       NumberValue(100),
		SpO2:        NumberValue(20),
	}

	errs := ValidateVitals(in)

	assert.Equal(t, "Temperature (°C) must be between 30 and 45", errs[Temperature])
	assert.Equal(t, "Heart Rate (bpm) is required", errs[HeartRate])
	assert.Equal(t, ErrSystolicNotAbove, errs[BPSys])
	assert.Equal(t, ErrDiastolicNotBelow, errs[BPDia])
	assert.Equal(t, "SpO₂ (%) must be between 50 and 100", errs[SpO2])
}

func TestValidateVitals_MissingKeysAreRequired(t *testing.T) {
	errs := ValidateVitals(VitalInput{})

	require.Len(t, errs, 5)
	for _, key := range VitalKeys() {
		r, _ := RangeFor(key)
		assert.Equal(t, r.Label+" is required", errs[key])
	}
}

func TestValidateVitals_NotANumber(t *testing.T) {
	in := validInput()
	in[HeartRate] = ParseValue("fast")

	errs := ValidateVitals(in)

	assert.Equal(t, FieldErrors{HeartRate: "Heart Rate (bpm) must be a number"}, errs)
}

func TestValidateVitals_Bounds(t *testing.T) {
	for _, key := range VitalKeys() {
		r, ok := RangeFor(key)
		require.True(t, ok)

		tests := []struct {
			value float64
			valid bool
		}{
			{r.Min, true},
			{r.Max, true},
			{r.Min - 1, false},
			{r.Max + 1, false},
		}

		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s=%v", key, tt.value), func(t *testing.T) {
				in := validInput()
				// keep the other pressure out of the way of the cross check
				switch key {
				case BPSys:
					in[BPDia] = NumberValue(30)
				case BPDia:
					in[BPSys] = NumberValue(250)
				}
				in[key] = NumberValue(tt.value)

				errs := ValidateVitals(in)

				if tt.valid {
					assert.Empty(t, errs)
					return
				}
				want := fmt.Sprintf("%s must be between %s and %s", r.Label, formatBound(r.Min), formatBound(r.Max))
				assert.Equal(t, FieldErrors{key: want}, errs)
			})
		}
	}
}

func TestValidateVitals_EqualPressuresPaired(t *testing.T) {
	tests := []struct {
		name string
		sys  float64
		dia  float64
	}{
		{"in range", 100, 100},
		{"out of range", 20, 20},
		{"systolic below", 90, 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in[BPSys] = NumberValue(tt.sys)
			in[BPDia] = NumberValue(tt.dia)

			errs := ValidateVitals(in)

			assert.Equal(t, ErrSystolicNotAbove, errs[BPSys])
			assert.Equal(t, ErrDiastolicNotBelow, errs[BPDia])
		})
	}
}

func TestValidateVitals_CrossCheckNeedsBothNumbers(t *testing.T) {
	in := validInput()
	in[BPDia] = EmptyValue()

	errs := ValidateVitals(in)

	assert.Equal(t, FieldErrors{BPDia: "Diastolic BP (mmHg) is required"}, errs)
}

func TestValidateVitals_Infinity(t *testing.T) {
	in := validInput()
	in[Temperature] = NumberValue(math.Inf(1))

	errs := ValidateVitals(in)

	assert.Equal(t, "Temperature (°C) must be between 30 and 45", errs[Temperature])
}

func TestValidateVitals_Overflow(t *testing.T) {
	in := validInput()
	in[Temperature] = ParseValue("1e400")

	var form struct {
		HeartRate VitalValue `json:"heartRate"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"heartRate": 1e400}`), &form))
	in[HeartRate] = form.HeartRate

	errs := ValidateVitals(in)

	assert.Equal(t, FieldErrors{
		Temperature: "Temperature (°C) must be between 30 and 45",
		HeartRate:   "Heart Rate (bpm) must be between 30 and 220",
	}, errs)
}

func TestValidateVitals_Idempotent(t *testing.T) {
	in := validInput()
	in[SpO2] = NumberValue(10)

	assert.Equal(t, ValidateVitals(in), ValidateVitals(in))
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw     string
		empty   bool
		number  bool
		numeric float64
	}{
		{"", true, false, 0},
		{"   ", true, false, 0},
		{"37.5", false, true, 37.5},
		{" 80 ", false, true, 80},
		{"abc", false, false, 0},
		{"NaN", false, false, 0},
		{"1e400", false, true, math.Inf(1)},
		{"-1e400", false, true, math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v := ParseValue(tt.raw)
			assert.Equal(t, tt.empty, v.IsEmpty())
			f, ok := v.Float()
			assert.Equal(t, tt.number, ok)
			if ok {
				assert.Equal(t, tt.numeric, f)
			}
		})
	}
}

func TestVitalValue_UnmarshalJSON(t *testing.T) {
	var form struct {
		Temperature VitalValue `json:"temperature"`
		HeartRate   VitalValue `json:"heartRate"`
		BPSys       VitalValue `json:"bpSys"`
		BPDia       VitalValue `json:"bpDia"`
		SpO2        VitalValue `json:"spo2"`
	}
	body := `{"temperature": 37.5, "heartRate": "", "bpSys": "120", "bpDia": null, "spo2": "high"}`

	require.NoError(t, json.Unmarshal([]byte(body), &form))

	f, ok := form.Temperature.Float()
	assert.True(t, ok)
	assert.Equal(t, 37.5, f)
	assert.True(t, form.HeartRate.IsEmpty())
	f, ok = form.BPSys.Float()
	assert.True(t, ok)
	assert.Equal(t, 120.0, f)
	assert.True(t, form.BPDia.IsEmpty())
	_, ok = form.SpO2.Float()
	assert.False(t, ok)
	assert.False(t, form.SpO2.IsEmpty())
}

func TestVitalInput_Reading(t *testing.T) {
	reading, ok := validInput().Reading()
	require.True(t, ok)
	assert.Equal(t, models.VitalReading{Temperature: 37.2, HeartRate: 80, BPSys: 120, BPDia: 80, SpO2: 98}, reading)

	in := validInput()
	in[SpO2] = EmptyValue()
	_, ok = in.Reading()
	assert.False(t, ok)
}
