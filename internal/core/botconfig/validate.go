package botconfig

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateStrict checks a collected artifact before rendering: prompted
// fields must be non-empty, number fields must parse as integers, and the
// database port must be a real port. The historical setup flow accepted
// anything, so this stage only runs when the operator opts in.
func ValidateStrict(a *Artifact) error {
	var problems []string

	for _, f := range a.Fields() {
		if !f.Prompted() {
			continue
		}
		value, ok := a.Get(f.Name)
		if !ok {
			problems = append(problems, fmt.Sprintf("%s: no value collected", f.Name))
			continue
		}
		if value == "" {
			problems = append(problems, fmt.Sprintf("%s: must not be empty", f.Name))
			continue
		}
		if f.Kind == Number {
			if _, err := strconv.Atoi(value); err != nil {
				problems = append(problems, fmt.Sprintf("%s: %q is not an integer", f.Name, value))
			}
		}
		if f.Name == "DB_PORT" {
			if port, err := strconv.Atoi(value); err != nil || port < 1 || port > 65535 {
				problems = append(problems, fmt.Sprintf("DB_PORT: %q is not a valid port", value))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}
