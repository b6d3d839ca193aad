package botconfig

import (
	"fmt"
	"strings"
)

// Artifact is the write-once set of resolved configuration values for one
// run. Fixed fields are pre-filled; everything else is set exactly once by
// the collection flow before rendering.
type Artifact struct {
	fields []Field
	values map[string]string
	set    map[string]bool
}

// NewArtifact creates an empty artifact over the given schema.
func NewArtifact(fields []Field) *Artifact {
	a := &Artifact{
		fields: fields,
		values: make(map[string]string, len(fields)),
		set:    make(map[string]bool, len(fields)),
	}
	for _, f := range fields {
		if f.Fixed != "" {
			a.values[f.Name] = f.Fixed
			a.set[f.Name] = true
		}
	}
	return a
}

// Set records the resolved value for a field. Values are accepted as-is:
// empty strings and non-numeric threshold input pass through unchanged and
// surface, if at all, when the bot loads the artifact.
func (a *Artifact) Set(name, value string) error {
	if !a.knows(name) {
		return fmt.Errorf("unknown configuration field %q", name)
	}
	a.values[name] = value
	a.set[name] = true
	return nil
}

// Get returns a field's value and whether it has been set.
func (a *Artifact) Get(name string) (string, bool) {
	return a.values[name], a.set[name]
}

// Fields returns the schema the artifact was built over, in render order.
func (a *Artifact) Fields() []Field {
	return a.fields
}

// Complete returns an error naming the first field that has not been
// resolved yet.
func (a *Artifact) Complete() error {
	for _, f := range a.fields {
		if !a.set[f.Name] {
			return fmt.Errorf("configuration field %q has no value", f.Name)
		}
	}
	return nil
}

// Render serializes the artifact into the config.py consumed by the bot.
// Rendering is pure: for a complete artifact the output depends only on the
// field values, so identical runs produce byte-identical files.
func (a *Artifact) Render() (string, error) {
	if err := a.Complete(); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, f := range a.fields {
		if f.GapBefore {
			b.WriteString("\n")
		}
		value := a.values[f.Name]
		switch f.Kind {
		case Number:
			fmt.Fprintf(&b, "%s = %s\n", f.Name, value)
		case PathLiteral:
			fmt.Fprintf(&b, "%s = r\"%s\"\n", f.Name, value)
		default:
			fmt.Fprintf(&b, "%s = \"%s\"\n", f.Name, value)
		}
	}
	return b.String(), nil
}

func (a *Artifact) knows(name string) bool {
	for _, f := range a.fields {
		if f.Name == name {
			return true
		}
	}
	return false
}
