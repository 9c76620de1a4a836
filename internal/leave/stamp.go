package leave

import "strings"

// Stamp is the approval decoration drawn over a record's info panel.
type Stamp int

const (
	StampNone Stamp = iota
	StampAudit
	StampPassed
)

func (s Stamp) String() string {
	switch s {
	case StampAudit:
		return "audit"
	case StampPassed:
		return "passed"
	default:
		return "none"
	}
}

// Label is the text printed inside the stamp.
func (s Stamp) Label() string {
	switch s {
	case StampAudit:
		return "Under review"
	case StampPassed:
		return "Approved"
	default:
		return ""
	}
}

type stampRule struct {
	stamp Stamp
	match func(status string) bool
}

func containsAny(words ...string) func(string) bool {
	return func(status string) bool {
		for _, w := range words {
			if strings.Contains(status, w) {
				return true
			}
		}
		return false
	}
}

// Evaluated in order; the first match wins. "approved" must be checked
// before "review" so "review approved" gets the passed stamp.
var stampRules = []stampRule{
	{stamp: StampPassed, match: containsAny("approved", "passed")},
	{stamp: StampAudit, match: containsAny("review", "processing")},
	// Exact match, not substring: "submitted twice" or "resubmitted" stay
	// unstamped, like the initial status check they come from.
	{stamp: StampAudit, match: func(s string) bool { return s == StatusSubmitted }},
}

// StampFor maps a free-text status to its stamp. Matching is case
// insensitive and ignores surrounding whitespace.
func StampFor(status string) Stamp {
	s := strings.ToLower(strings.TrimSpace(status))
	for _, rule := range stampRules {
		if rule.match(s) {
			return rule.stamp
		}
	}
	return StampNone
}
