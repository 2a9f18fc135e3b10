package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either set Template with Data, or raw Subject/Text/HTML.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "appointment_confirmation"
	Data     map[string]any `json:"data,omitempty"`
}

// TemplateAppointmentConfirmation renders the booking confirmation mail.
const TemplateAppointmentConfirmation = "appointment_confirmation"
