package templates

import (
	"fmt"
	"html"
	"strings"
)

// AppointmentEmailData holds the values shown in the doctor's appointment request email
type AppointmentEmailData struct {
	DoctorName    string
	PatientName   string
	PreferredTime string
	Reason        string
}

func (d AppointmentEmailData) doctorName() string {
	if strings.TrimSpace(d.DoctorName) == "" {
		return "team"
	}
	return d.DoctorName
}

func (d AppointmentEmailData) patientName() string {
	if strings.TrimSpace(d.PatientName) == "" {
		return "Patient"
	}
	return d.PatientName
}

// AppointmentRequestSubject is the subject line of the doctor's email
func AppointmentRequestSubject(d AppointmentEmailData) string {
	return fmt.Sprintf("New appointment request from %s", d.patientName())
}

// RenderAppointmentRequestText generates the plain text body of the doctor's email
func RenderAppointmentRequestText(d AppointmentEmailData) string {
	return fmt.Sprintf("Hello Dr. %s,\n\nA new appointment was requested.\nPatient: %s\nPreferred time: %s\nReason: %s",
		d.doctorName(), d.patientName(), d.PreferredTime, d.Reason)
}

// RenderAppointmentRequestEmail generates the HTML body of the doctor's email.
// Every value is HTML-escaped and newlines in the reason become <br> tags.
func RenderAppointmentRequestEmail(d AppointmentEmailData) string {
	reason := strings.ReplaceAll(html.EscapeString(d.Reason), "\n", "<br>")

	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>%s</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #f4f7fb; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
    .header { background: linear-gradient(135deg, #0ea5e9 0%%, #14b8a6 100%%); padding: 32px 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 22px; font-weight: 700; }
    .content { padding: 32px 30px; color: #1f2937; line-height: 1.6; font-size: 15px; }
    .footer { padding: 24px; text-align: center; color: #6b7280; font-size: 12px; border-top: 1px solid #e5e7eb; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>New appointment request</h1>
    </div>
    <div class="content">
      <p>Hello Dr. %s,</p>
      <p><strong>Patient:</strong> %s</p>
      <p><strong>Preferred time:</strong> %s</p>
      <p><strong>Reason:</strong> %s</p>
    </div>
    <div class="footer">
      <p>You are receiving this because a patient requested an appointment with you on VitalCheck.</p>
    </div>
  </div>
</body>
</html>`,
		html.EscapeString(AppointmentRequestSubject(d)),
		html.EscapeString(d.doctorName()),
		html.EscapeString(d.patientName()),
		html.EscapeString(d.PreferredTime),
		reason,
	)
}
