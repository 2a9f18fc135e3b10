package verification

import (
	"context"
	"errors"

	mg "github.com/mailgun/mailgun-go/v4"
)

// MailgunProvider uses the Mailgun address validation API as a cascade stage.
type MailgunProvider struct {
	domain string
	apiKey string
}

func NewMailgunProvider(domain, apiKey string) *MailgunProvider {
	return &MailgunProvider{domain: domain, apiKey: apiKey}
}

func (p *MailgunProvider) Name() string { return "mailgun" }

func (p *MailgunProvider) Verify(ctx context.Context, email string) (*Verdict, error) {
	if p.apiKey == "" {
		return nil, errors.New("mailgun api key not configured")
	}

	client := mg.NewEmailValidator(p.apiKey)
	ev, err := client.ValidateEmail(ctx, email, false)
	if err != nil {
		return nil, err
	}

	v := &Verdict{
		FormatValid:    ev.IsValid,
		Deliverability: normalizeDeliverability(ev.Result),
		Confidence:     confidenceFromRisk(ev.Risk),
	}
	// Mailgun reports mailbox verification as "true"/"false"/"unknown".
	switch ev.MailboxVerification {
	case "true":
		v.SMTPValid = boolPtr(true)
	case "false":
		v.SMTPValid = boolPtr(false)
	}
	return v, nil
}

func confidenceFromRisk(risk string) *int {
	switch risk {
	case "low":
		return intPtr(90)
	case "medium":
		return intPtr(60)
	case "high":
		return intPtr(20)
	default:
		return nil
	}
}
