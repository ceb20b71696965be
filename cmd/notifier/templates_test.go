package main

import (
	"bytes"
	"encoding/json"
	"html/template"
	"testing"

	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renderTemplate puts the message through the same JSON round-trip the queue
// does, so Data is the decoded map the worker hands to the template, not the
// typed struct the publisher built.
func renderTemplate(t *testing.T, path string, msg domain.MailMessage) string {
	t.Helper()

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	decoded := domain.MailMessage{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	tmpl, err := template.ParseFiles(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, decoded.Data))

	return buf.String()
}

func TestWelcomeTemplateRendersName(t *testing.T) {
	out := renderTemplate(t, "../../templates/welcome_email.html", domain.MailMessage{
		Type: "welcome",
		To:   "alex.smith@example.com",
		Data: domain.WelcomeMailData{FullName: "Alex Smith"},
	})

	assert.Contains(t, out, "Hi Alex Smith,")
}

func TestResetPasswordTemplateRendersOTP(t *testing.T) {
	out := renderTemplate(t, "../../templates/reset_password_email.html", domain.MailMessage{
		Type: "reset_password",
		To:   "alex.smith@example.com",
		Data: domain.ResetPasswordMailData{
			FullName:   "Alex Smith",
			OTP:        "123456",
			Expiration: 15,
		},
	})

	assert.Contains(t, out, "Hi Alex Smith,")
	assert.Contains(t, out, "123456")
	assert.Contains(t, out, "15 minutes")
}

func TestShiftResponseTemplateRendersMessage(t *testing.T) {
	out := renderTemplate(t, "../../templates/shift_response_email.html", domain.MailMessage{
		Type: "shift_response",
		To:   "alex.smith@example.com",
		Data: domain.ShiftResponseMailData{
			FullName: "Alex Smith",
			Message:  "Your interview proposal for Mon, Mar 2 at 2:00 PM was accepted.",
		},
	})

	assert.Contains(t, out, "Hi Alex Smith,")
	assert.Contains(t, out, "was accepted")
}
