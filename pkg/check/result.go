package check

import "strings"

// Status represents the outcome of a check.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
)

// Tag returns the uppercase form used in text output, e.g. "PASS".
func (s Status) Tag() string {
	return strings.ToUpper(string(s))
}

// Result holds the outcome of a single check.
type Result struct {
	ID      string   // registry identifier, e.g. "auth"
	Label   string   // human-readable name, e.g. "Authentication"
	Status  Status   // pass, warn, fail or skip
	Message string   // one-line outcome summary
	Details []string // additional human-readable lines
	Err     error    // underlying error for failures
}

// OK returns true unless the check failed. Warnings and skips count as OK.
func (r Result) OK() bool {
	return r.Status != StatusFail
}
