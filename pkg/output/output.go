// Package output renders check results as a text report or a JSON
// document and computes summary counts.
package output

import (
	"fmt"
	"io"

	"github.com/jwalton/go-supportscolor"

	"github.com/koddi/healthcheck/pkg/check"
)

var (
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, yellow, red, dim, reset = "", "", "", "", ""
	}
}

func colorFor(s check.Status) string {
	switch s {
	case check.StatusPass:
		return green
	case check.StatusWarn:
		return yellow
	case check.StatusFail:
		return red
	default:
		return dim
	}
}

// PrintHeader writes the run banner shown before the first check in text
// mode.
func PrintHeader(w io.Writer, memberGroupID, advertiserID int, clientName string) {
	fmt.Fprintln(w, "Koddi Health Check")
	fmt.Fprintf(w, "member_group_id=%d advertiser_id=%d client=%s\n\n", memberGroupID, advertiserID, clientName)
}

// PrintResult writes one check result: a colored status tag and label,
// then the message and any detail lines aligned beneath it.
func PrintResult(w io.Writer, r check.Result) {
	color := colorFor(r.Status)
	fmt.Fprintf(w, "%s[%s]%s %s\n", color, r.Status.Tag(), reset, r.Label)
	if r.Message != "" {
		fmt.Fprintf(w, "       %s\n", r.Message)
	}
	for _, d := range r.Details {
		fmt.Fprintf(w, "       %s\n", d)
	}
}

// Summary counts results by status.
type Summary struct {
	Pass int `json:"pass"`
	Warn int `json:"warn"`
	Fail int `json:"fail"`
	Skip int `json:"skip"`
}

// Summarize tallies results by status.
func Summarize(results []check.Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case check.StatusPass:
			s.Pass++
		case check.StatusWarn:
			s.Warn++
		case check.StatusFail:
			s.Fail++
		case check.StatusSkip:
			s.Skip++
		}
	}
	return s
}

// PrintSummary writes the trailing per-status counts line.
func PrintSummary(w io.Writer, results []check.Result) {
	s := Summarize(results)
	fmt.Fprintf(w, "\n%s%d passed%s  %s%d warning(s)%s  %s%d failed%s  %s%d skipped%s\n",
		green, s.Pass, reset,
		yellow, s.Warn, reset,
		red, s.Fail, reset,
		dim, s.Skip, reset)
}
