package verification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// AbstractProvider queries the AbstractAPI email validation endpoint.
// https://emailvalidation.abstractapi.com/v1/?api_key=...&email=...
type AbstractProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewAbstractProvider(apiKey, baseURL string) *AbstractProvider {
	return &AbstractProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (p *AbstractProvider) Name() string { return "abstract" }

type abstractFlag struct {
	Value bool   `json:"value"`
	Text  string `json:"text"`
}

type abstractResponse struct {
	Email          string        `json:"email"`
	Deliverability string        `json:"deliverability"`
	QualityScore   string        `json:"quality_score"`
	IsValidFormat  *abstractFlag `json:"is_valid_format"`
	IsMXFound      *abstractFlag `json:"is_mx_found"`
	IsSMTPValid    *abstractFlag `json:"is_smtp_valid"`
}

func (p *AbstractProvider) Verify(ctx context.Context, email string) (*Verdict, error) {
	if p.apiKey == "" {
		return nil, errors.New("abstract api key not configured")
	}

	q := url.Values{}
	q.Set("api_key", p.apiKey)
	q.Set("email", email)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	res, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("abstract api status %d", res.StatusCode)
	}

	var body abstractResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	v := &Verdict{
		FormatValid:    body.IsValidFormat == nil || body.IsValidFormat.Value,
		Deliverability: normalizeDeliverability(body.Deliverability),
	}
	if body.IsMXFound != nil {
		v.MXFound = boolPtr(body.IsMXFound.Value)
	}
	if body.IsSMTPValid != nil {
		v.SMTPValid = boolPtr(body.IsSMTPValid.Value)
	}
	// quality_score arrives as a decimal string like "0.95"
	if body.QualityScore != "" {
		if score, perr := strconv.ParseFloat(body.QualityScore, 64); perr == nil {
			v.Confidence = intPtr(int(score * 100))
		}
	}
	return v, nil
}

func normalizeDeliverability(s string) Deliverability {
	switch s {
	case "DELIVERABLE", "deliverable":
		return Deliverable
	case "UNDELIVERABLE", "undeliverable":
		return Undeliverable
	default:
		return Unknown
	}
}
