package verification

import (
	"context"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
)

// ProviderSyntax marks verdicts produced by the local syntactic check alone.
const ProviderSyntax = "syntax"

// Provider is one external verification service. Verify returns an error for
// transport or configuration failures; a negative result about the address is
// a verdict, not an error. An unconfigured provider errors from Verify so the
// cascade treats it as a failure of that provider only.
type Provider interface {
	Name() string
	Verify(ctx context.Context, email string) (*Verdict, error)
}

// Checker classifies email deliverability by walking an ordered provider
// cascade and falling back to a local DNS heuristic. Provider faults never
// surface to the caller.
type Checker struct {
	providers []Provider
	fallback  *DNSFallback
	threshold int
	timeout   time.Duration
	logger    *logrus.Logger
}

func NewChecker(providers []Provider, fallback *DNSFallback, threshold int, timeout time.Duration, logger *logrus.Logger) *Checker {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Checker{
		providers: providers,
		fallback:  fallback,
		threshold: threshold,
		timeout:   timeout,
		logger:    logger,
	}
}

// Matches local-part@domain with a dot somewhere in the domain.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Check classifies one address. Malformed input yields a format-invalid
// verdict immediately, with no provider call made. The first provider verdict
// whose confidence is strictly greater than the configured threshold ends the
// cascade; otherwise the DNS fallback decides.
func (c *Checker) Check(ctx context.Context, email string) *Verdict {
	if !emailShape.MatchString(email) {
		return &Verdict{
			FormatValid:    false,
			MXFound:        boolPtr(false),
			SMTPValid:      boolPtr(false),
			Deliverability: Undeliverable,
			Provider:       ProviderSyntax,
		}
	}

	for _, p := range c.providers {
		pctx, cancel := context.WithTimeout(ctx, c.timeout)
		v, err := p.Verify(pctx, email)
		cancel()
		if err != nil {
			if c.logger != nil {
				c.logger.WithError(err).WithField("provider", p.Name()).Warn("email verification provider failed")
			}
			continue
		}
		if v == nil {
			continue
		}
		v.Provider = p.Name()
		if v.Confidence != nil && *v.Confidence > c.threshold {
			return v
		}
		if c.logger != nil {
			c.logger.WithFields(logrus.Fields{
				"provider":   p.Name(),
				"confidence": v.Confidence,
			}).Debug("provider verdict not confident enough, continuing cascade")
		}
	}

	return c.fallback.Check(ctx, email)
}
