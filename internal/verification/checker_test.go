package verification

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name    string
	verdict *Verdict
	err     error
	calls   int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Verify(ctx context.Context, email string) (*Verdict, error) {
	s.calls++
	return s.verdict, s.err
}

func confidentVerdict(confidence int) *Verdict {
	return &Verdict{
		FormatValid:    true,
		MXFound:        boolPtr(true),
		SMTPValid:      boolPtr(true),
		Deliverability: Deliverable,
		Confidence:     intPtr(confidence),
	}
}

func TestCheckMalformedSkipsProviders(t *testing.T) {
	p := &stubProvider{name: "stub", verdict: confidentVerdict(99)}
	c := NewChecker([]Provider{p}, NewDNSFallback(&stubResolver{}, nil), 50, time.Second, nil)

	for _, email := range []string{"", "plainaddress", "no-at.example.com", "two@@example.com", "user@nodot"} {
		v := c.Check(context.Background(), email)
		require.NotNil(t, v, email)
		assert.False(t, v.FormatValid, email)
		assert.Equal(t, Undeliverable, v.Deliverability, email)
		assert.Equal(t, ProviderSyntax, v.Provider, email)
	}
	assert.Zero(t, p.calls, "malformed input must never reach a provider")
}

func TestCheckAcceptsConfidentVerdict(t *testing.T) {
	p := &stubProvider{name: "abstract", verdict: confidentVerdict(95)}
	c := NewChecker([]Provider{p}, NewDNSFallback(&stubResolver{}, nil), 50, time.Second, nil)

	v := c.Check(context.Background(), "jane@corp.com")
	assert.Equal(t, "abstract", v.Provider)
	assert.Equal(t, Deliverable, v.Deliverability)
	assert.Equal(t, 1, p.calls)
}

func TestCheckThresholdIsStrict(t *testing.T) {
	// Exactly at the threshold is not enough; the cascade continues.
	atThreshold := &stubProvider{name: "first", verdict: confidentVerdict(50)}
	above := &stubProvider{name: "second", verdict: confidentVerdict(51)}
	c := NewChecker([]Provider{atThreshold, above}, NewDNSFallback(&stubResolver{}, nil), 50, time.Second, nil)

	v := c.Check(context.Background(), "jane@corp.com")
	assert.Equal(t, "second", v.Provider)
}

func TestCheckProviderErrorFallsThrough(t *testing.T) {
	broken := &stubProvider{name: "broken", err: errors.New("503 from upstream")}
	working := &stubProvider{name: "working", verdict: confidentVerdict(90)}
	c := NewChecker([]Provider{broken, working}, NewDNSFallback(&stubResolver{}, nil), 50, time.Second, nil)

	v := c.Check(context.Background(), "jane@corp.com")
	assert.Equal(t, "working", v.Provider)
	assert.Equal(t, 1, broken.calls)
}

func TestCheckExhaustedCascadeUsesDNSFallback(t *testing.T) {
	unsure := &stubProvider{name: "unsure", verdict: &Verdict{FormatValid: true, Deliverability: Unknown, Confidence: intPtr(10)}}
	fallback := NewDNSFallback(&stubResolver{mxs: mxRecords("mx.corp.com")}, nil)
	c := NewChecker([]Provider{unsure}, fallback, 50, time.Second, nil)

	v := c.Check(context.Background(), "jane@corp.com")
	assert.Equal(t, ProviderLocalDNS, v.Provider)
	assert.Equal(t, Deliverable, v.Deliverability)
}

func TestCheckNoProvidersConfigured(t *testing.T) {
	fallback := NewDNSFallback(&stubResolver{err: &net.DNSError{IsNotFound: true}}, nil)
	c := NewChecker(nil, fallback, 50, time.Second, nil)

	v := c.Check(context.Background(), "jane@gone.example")
	assert.Equal(t, ProviderLocalDNS, v.Provider)
	assert.Equal(t, Undeliverable, v.Deliverability)
}
