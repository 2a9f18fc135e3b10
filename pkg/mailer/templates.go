package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// Text body mirrors the confirmation mail patients have always received.
const confirmationText = `Dear %s,

Your appointment with Dr. %s is confirmed.

Date: %s
Time: %s

Thank you for booking with NirogGyan Healthcare!

Regards,
NirogGyan Team`

var confirmationHTML = template.Must(template.New(TemplateAppointmentConfirmation).Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #222;">
	<h2>Appointment Confirmed</h2>
	<p>Dear {{.PatientName}},</p>
	<p>Your appointment with <strong>Dr. {{.DoctorName}}</strong> is confirmed.</p>
	<table cellpadding="6">
		<tr><td><strong>Date</strong></td><td>{{.Date}}</td></tr>
		<tr><td><strong>Time</strong></td><td>{{.Time}}</td></tr>
	</table>
	<p>Thank you for booking with NirogGyan Healthcare!</p>
	<p>Regards,<br>NirogGyan Team</p>
</body>
</html>`))

// Render resolves a template name and its data into subject, text and HTML
// bodies. Unknown template names are an error so the worker can dead-letter
// the job instead of sending something half-rendered.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case TemplateAppointmentConfirmation:
		patient := str(data, "PatientName")
		doctor := str(data, "DoctorName")
		date := str(data, "Date")
		timeOfDay := str(data, "Time")

		subject = "Appointment Confirmation - NirogGyan Healthcare"
		text = fmt.Sprintf(confirmationText, patient, doctor, date, timeOfDay)

		var buf bytes.Buffer
		if err = confirmationHTML.Execute(&buf, map[string]string{
			"PatientName": patient,
			"DoctorName":  doctor,
			"Date":        date,
			"Time":        timeOfDay,
		}); err != nil {
			return "", "", "", err
		}
		html = buf.String()
		return subject, text, html, nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}

func str(data map[string]any, key string) string {
	if data == nil {
		return "-"
	}
	v, ok := data[key]
	if !ok || v == nil || fmt.Sprintf("%v", v) == "" {
		return "-"
	}
	return fmt.Sprintf("%v", v)
}
