package healthcheck

import (
	"fmt"

	"github.com/koddi/healthcheck/pkg/check"
)

// Run executes every registered check in order and returns one result per
// check, in registry order. onResult, when non-nil, is called after each
// check completes, allowing text output to stream as the run progresses.
func Run(cfg *RunConfig, onResult func(check.Result)) []check.Result {
	return run(Registry(), cfg, onResult)
}

func run(defs []Definition, cfg *RunConfig, onResult func(check.Result)) []check.Result {
	session := &Session{}
	results := make([]check.Result, 0, len(defs))
	byID := make(map[string]check.Result, len(defs))

	// skipCause tracks, per skipped check, the failed check at the root of
	// the skip chain so transitive skips name the originating failure.
	skipCause := make(map[string]string)

	for _, def := range defs {
		if cause := gateCause(def, byID, skipCause); cause != "" {
			r := check.Result{
				ID:      def.ID,
				Label:   def.Label,
				Status:  check.StatusSkip,
				Message: fmt.Sprintf("skipped: dependency %s failed", cause),
			}
			skipCause[def.ID] = cause
			results = append(results, r)
			byID[def.ID] = r
			if onResult != nil {
				onResult(r)
			}
			continue
		}

		r := def.Run(cfg, session)
		r.ID = def.ID
		r.Label = def.Label
		results = append(results, r)
		byID[def.ID] = r
		if onResult != nil {
			onResult(r)
		}
	}

	return results
}

// gateCause returns the ID of the failed check that prevents def from
// running, or "" when def should run. A dependency that failed gates
// directly; a dependency that was itself skipped propagates its root
// cause. Warnings never gate.
func gateCause(def Definition, byID map[string]check.Result, skipCause map[string]string) string {
	if def.DependsOn == "" {
		return ""
	}
	dep, ok := byID[def.DependsOn]
	if !ok {
		return ""
	}
	switch dep.Status {
	case check.StatusFail:
		return def.DependsOn
	case check.StatusSkip:
		return skipCause[def.DependsOn]
	}
	return ""
}

// HasFailure reports whether any result failed.
func HasFailure(results []check.Result) bool {
	for _, r := range results {
		if r.Status == check.StatusFail {
			return true
		}
	}
	return false
}

// ExitCode maps a run to its process exit code: 1 when any check failed,
// 0 otherwise. Warnings and skips alone never make the run fail.
func ExitCode(results []check.Result) int {
	if HasFailure(results) {
		return 1
	}
	return 0
}
