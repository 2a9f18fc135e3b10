package verification

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	mxs []*net.MX
	err error
}

func (s *stubResolver) LookupMX(ctx context.Context, name string) ([]*net.MX, error) {
	return s.mxs, s.err
}

func mxRecords(hosts ...string) []*net.MX {
	out := make([]*net.MX, 0, len(hosts))
	for _, h := range hosts {
		out = append(out, &net.MX{Host: h, Pref: 10})
	}
	return out
}

func TestDNSFallbackDomainNotFound(t *testing.T) {
	f := NewDNSFallback(&stubResolver{err: &net.DNSError{Err: "no such host", IsNotFound: true}}, nil)

	v := f.Check(context.Background(), "someone@no-such-domain.example")
	require.NotNil(t, v)
	assert.True(t, v.FormatValid)
	require.NotNil(t, v.MXFound)
	assert.False(t, *v.MXFound)
	assert.Equal(t, Undeliverable, v.Deliverability)
	assert.Equal(t, ProviderLocalDNS, v.Provider)
}

func TestDNSFallbackResolverFaultFailsClosed(t *testing.T) {
	f := NewDNSFallback(&stubResolver{err: errors.New("i/o timeout")}, nil)

	v := f.Check(context.Background(), "someone@real-company.com")
	require.NotNil(t, v)
	assert.Equal(t, Undeliverable, v.Deliverability)
	// A transient fault says nothing about whether the domain has MX records.
	assert.Nil(t, v.MXFound)
}

func TestDNSFallbackNoMXRecords(t *testing.T) {
	f := NewDNSFallback(&stubResolver{mxs: nil}, nil)

	v := f.Check(context.Background(), "someone@parked-domain.com")
	require.NotNil(t, v.MXFound)
	assert.False(t, *v.MXFound)
	assert.Equal(t, Undeliverable, v.Deliverability)
}

func TestDNSFallbackSuspiciousLocalPart(t *testing.T) {
	f := NewDNSFallback(&stubResolver{mxs: mxRecords("mx.corp.com")}, nil)

	v := f.Check(context.Background(), "test123@corp.com")
	require.NotNil(t, v.MXFound)
	assert.True(t, *v.MXFound)
	require.NotNil(t, v.SMTPValid)
	assert.False(t, *v.SMTPValid)
	assert.Equal(t, Undeliverable, v.Deliverability)
}

func TestDNSFallbackShortLocalOnFreeMail(t *testing.T) {
	f := NewDNSFallback(&stubResolver{mxs: mxRecords("gmail-smtp-in.l.google.com")}, nil)

	v := f.Check(context.Background(), "ab@gmail.com")
	assert.Equal(t, Undeliverable, v.Deliverability)

	v = f.Check(context.Background(), "testuser123456@gmail.com")
	assert.Equal(t, Undeliverable, v.Deliverability)

	// Same length is fine on a non-webmail domain.
	v = f.Check(context.Background(), "ab@corp.com")
	assert.Equal(t, Deliverable, v.Deliverability)
}

func TestDNSFallbackDeliverable(t *testing.T) {
	f := NewDNSFallback(&stubResolver{mxs: mxRecords("mx1.corp.com", "mx2.corp.com")}, nil)

	v := f.Check(context.Background(), "jane.doe@corp.com")
	assert.True(t, v.FormatValid)
	require.NotNil(t, v.MXFound)
	assert.True(t, *v.MXFound)
	require.NotNil(t, v.SMTPValid)
	assert.True(t, *v.SMTPValid)
	assert.Equal(t, Deliverable, v.Deliverability)
	assert.Equal(t, ProviderLocalDNS, v.Provider)

	// Classification is deterministic for the same input.
	again := f.Check(context.Background(), "jane.doe@corp.com")
	assert.Equal(t, v, again)
}

func TestSuspiciousLocalPart(t *testing.T) {
	tests := []struct {
		local string
		want  bool
	}{
		{"jane.doe", false},
		{"j", false},
		{"test", true},
		{"TestUser", true},
		{"fakename", true},
		{"dummy42", true},
		{"sample", true},
		{"example", true},
		{"asdfgh", true},
		{"qwerty99", true},
		{"user123456", true},
		{"user12345", false},
		{"aaaaaa", true},
		{"aaaaab", false},
		{"zzzzzzz.smith", true},
	}
	for _, tt := range tests {
		t.Run(tt.local, func(t *testing.T) {
			assert.Equal(t, tt.want, SuspiciousLocalPart(tt.local))
		})
	}
}
