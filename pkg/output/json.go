package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/koddi/healthcheck/pkg/check"
)

type reportCheck struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type report struct {
	Checks  []reportCheck `json:"checks"`
	Passed  bool          `json:"passed"`
	Summary Summary       `json:"summary"`
}

// WriteJSON writes the whole run as a single indented JSON document.
// Passed mirrors the exit code: true iff no check failed.
func WriteJSON(w io.Writer, results []check.Result) error {
	doc := report{
		Checks:  make([]reportCheck, 0, len(results)),
		Passed:  true,
		Summary: Summarize(results),
	}
	for _, r := range results {
		if r.Status == check.StatusFail {
			doc.Passed = false
		}
		doc.Checks = append(doc.Checks, reportCheck{
			ID:      r.ID,
			Label:   r.Label,
			Status:  string(r.Status),
			Message: r.Message,
			Details: r.Details,
		})
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
