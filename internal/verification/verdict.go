package verification

// Deliverability is the overall classification of an address.
type Deliverability string

const (
	Deliverable   Deliverability = "DELIVERABLE"
	Undeliverable Deliverability = "UNDELIVERABLE"
	Unknown       Deliverability = "UNKNOWN"
)

// Verdict is the normalized result of one deliverability check. MXFound and
// SMTPValid are tri-state: nil means the producing provider did not report
// the field, which is distinct from an explicit false. A Verdict is built
// fresh per check and never mutated after being returned.
type Verdict struct {
	FormatValid    bool
	MXFound        *bool
	SMTPValid      *bool
	Deliverability Deliverability
	Confidence     *int // 0-100, nil when the provider reports no score
	Provider       string
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }
