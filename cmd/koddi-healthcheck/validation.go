package main

import (
	"fmt"
	"strings"
)

// flagValue represents a flag name and its current value for validation.
type flagValue struct {
	name  string
	value string
}

// requireAll returns an error naming every required flag that is still
// unset after environment fallbacks were applied. All missing flags are
// reported at once so a bare invocation fails with the full list.
func requireAll(flags ...flagValue) error {
	var missing []string
	for _, f := range flags {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required configuration: %s (set the flag or its environment variable)",
		strings.Join(missing, ", "))
}
