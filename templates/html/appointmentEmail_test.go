package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentRequestSubject(t *testing.T) {
	assert.Equal(t, "New appointment request from Jane Roe", AppointmentRequestSubject(AppointmentEmailData{PatientName: "Jane Roe"}))
	assert.Equal(t, "New appointment request from Patient", AppointmentRequestSubject(AppointmentEmailData{}))
}

func TestRenderAppointmentRequestText(t *testing.T) {
	got := RenderAppointmentRequestText(AppointmentEmailData{
		PatientName:   "Jane Roe",
		PreferredTime: "2030-01-15T10:00",
		Reason:        "Checkup",
	})
	assert.Equal(t, "Hello Dr. team,\n\nA new appointment was requested.\nPatient: Jane Roe\nPreferred time: 2030-01-15T10:00\nReason: Checkup", got)
}

func TestRenderAppointmentRequestEmail(t *testing.T) {
	got := RenderAppointmentRequestEmail(AppointmentEmailData{
		DoctorName:    "House",
		PatientName:   "<script>alert(1)</script>",
		PreferredTime: "2030-01-15T10:00",
		Reason:        "Chest pain\nsince Monday",
	})

	assert.Contains(t, got, "Hello Dr. House,")
	assert.Contains(t, got, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "Chest pain<br>since Monday")
	assert.Contains(t, got, "<strong>Preferred time:</strong> 2030-01-15T10:00")
}
