package discovery

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CandidateSet is an ordered list of absolute paths where one external
// dependency may be installed. Order encodes priority: the first path
// that exists on disk wins.
type CandidateSet struct {
	Resource string
	Paths    []string
}

// ResolvedLocation is the outcome of probing a CandidateSet.
type ResolvedLocation struct {
	Resource string
	Path     string
	Found    bool
}

// Exists reports whether path exists on disk. Any stat failure, including
// permission errors, counts as absence; discovery trades precision for
// availability and falls back to the operator prompt instead of failing.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Resolve probes the set's paths in order and returns the earliest one that
// exists. Callers must not pass an empty set.
func (c CandidateSet) Resolve() ResolvedLocation {
	for _, p := range c.Paths {
		if Exists(p) {
			return ResolvedLocation{Resource: c.Resource, Path: p, Found: true}
		}
	}
	return ResolvedLocation{Resource: c.Resource}
}

// Table maps a resource name to its candidate set.
type Table map[string]CandidateSet

// Lookup returns the candidate set for resource, or false if the table does
// not know the resource.
func (t Table) Lookup(resource string) (CandidateSet, bool) {
	c, ok := t[resource]
	return c, ok
}

// ParseTable decodes a YAML document mapping resource names to ordered path
// lists. Candidate tables are data, not code, so new install locations can
// be added without touching the locator.
func ParseTable(data []byte) (Table, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse candidate table: %w", err)
	}

	table := make(Table, len(raw))
	for resource, paths := range raw {
		if len(paths) == 0 {
			return nil, fmt.Errorf("candidate table entry %q has no paths", resource)
		}
		table[resource] = CandidateSet{Resource: resource, Paths: paths}
	}
	return table, nil
}
