package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAppointmentConfirmation(t *testing.T) {
	subject, text, html, err := Render(TemplateAppointmentConfirmation, map[string]any{
		"PatientName": "Jane Doe",
		"DoctorName":  "Asha Rao",
		"Date":        "2026-09-10",
		"Time":        "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Appointment Confirmation - NirogGyan Healthcare", subject)
	assert.Contains(t, text, "Dear Jane Doe,")
	assert.Contains(t, text, "Your appointment with Dr. Asha Rao is confirmed.")
	assert.Contains(t, text, "Date: 2026-09-10")
	assert.Contains(t, text, "Time: 10:00")
	assert.Contains(t, html, "<strong>Dr. Asha Rao</strong>")
	assert.Contains(t, html, "2026-09-10")
}

func TestRenderMissingFieldsUsePlaceholder(t *testing.T) {
	_, text, _, err := Render(TemplateAppointmentConfirmation, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "Dear -,"))
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, _, err := Render("password_reset", nil)
	assert.Error(t, err)
}
