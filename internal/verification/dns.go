package verification

import (
	"context"
	"errors"
	"net"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// ProviderLocalDNS marks verdicts produced by the local fallback.
const ProviderLocalDNS = "local-dns"

// MXResolver is satisfied by *net.Resolver; injected for tests.
type MXResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
}

// High-volume public webmail domains get the strict local-part rule.
var freeMailDomains = map[string]bool{
	"gmail.com":      true,
	"googlemail.com": true,
	"yahoo.com":      true,
	"yahoo.co.in":    true,
	"ymail.com":      true,
	"hotmail.com":    true,
	"outlook.com":    true,
	"live.com":       true,
	"aol.com":        true,
	"icloud.com":     true,
	"mail.com":       true,
	"gmx.com":        true,
	"protonmail.com": true,
	"proton.me":      true,
	"zoho.com":       true,
	"rediffmail.com": true,
}

var (
	digitRun         = regexp.MustCompile(`[0-9]{6,}`)
	placeholderWords = []string{"test", "fake", "dummy", "sample", "example", "asdf", "qwerty"}
)

// DNSFallback classifies an address when no external provider produced a
// confident verdict: the domain must resolve to at least one MX record, and
// the local part must not look like a throwaway.
type DNSFallback struct {
	resolver MXResolver
	logger   *logrus.Logger
}

func NewDNSFallback(resolver MXResolver, logger *logrus.Logger) *DNSFallback {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	return &DNSFallback{resolver: resolver, logger: logger}
}

// Check assumes the address already passed the syntactic gate.
// A resolver that errors for reasons other than "domain not found" fails
// closed: the verdict is undeliverable, not assumed-valid.
func (f *DNSFallback) Check(ctx context.Context, email string) *Verdict {
	at := strings.LastIndex(email, "@")
	local := email[:at]
	domain := strings.ToLower(email[at+1:])

	mxs, err := f.resolver.LookupMX(ctx, domain)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return &Verdict{
				FormatValid:    true,
				MXFound:        boolPtr(false),
				SMTPValid:      boolPtr(false),
				Deliverability: Undeliverable,
				Provider:       ProviderLocalDNS,
			}
		}
		if f.logger != nil {
			f.logger.WithError(err).WithField("domain", domain).Warn("mx lookup failed, failing closed")
		}
		return &Verdict{
			FormatValid:    true,
			Deliverability: Undeliverable,
			Provider:       ProviderLocalDNS,
		}
	}
	if len(mxs) == 0 {
		return &Verdict{
			FormatValid:    true,
			MXFound:        boolPtr(false),
			SMTPValid:      boolPtr(false),
			Deliverability: Undeliverable,
			Provider:       ProviderLocalDNS,
		}
	}

	suspicious := SuspiciousLocalPart(local)
	if suspicious || (freeMailDomains[domain] && len(local) < 3) {
		return &Verdict{
			FormatValid:    true,
			MXFound:        boolPtr(true),
			SMTPValid:      boolPtr(false),
			Deliverability: Undeliverable,
			Provider:       ProviderLocalDNS,
		}
	}

	return &Verdict{
		FormatValid:    true,
		MXFound:        boolPtr(true),
		SMTPValid:      boolPtr(true),
		Deliverability: Deliverable,
		Provider:       ProviderLocalDNS,
	}
}

// SuspiciousLocalPart flags local parts that look fabricated: placeholder
// words, runs of 6+ digits, or 6+ of the same character in a row.
func SuspiciousLocalPart(local string) bool {
	lower := strings.ToLower(local)
	for _, w := range placeholderWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	if digitRun.MatchString(lower) {
		return true
	}
	return hasRepeatedRun(lower, 6)
}

func hasRepeatedRun(s string, n int) bool {
	run := 0
	var prev rune
	for i, r := range s {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
	}
	return false
}
