package services

import (
	"fmt"
	"io"

	"github.com/invisible-hand/handsetup/internal/core/botconfig"
	"github.com/invisible-hand/handsetup/internal/core/discovery"
	"github.com/invisible-hand/handsetup/internal/interfaces/prompt"
)

// ArtifactStore persists a rendered artifact and reports where it landed.
type ArtifactStore interface {
	Write(rendered string) (string, error)
	Path() string
}

// SetupService owns the configuration flow: collect every schema field,
// optionally validate, render, persist. It is strictly sequential and holds
// the in-progress field set for exactly one run.
type SetupService struct {
	prompter   prompt.Prompter
	candidates discovery.Table
	store      ArtifactStore
	out        io.Writer
}

// NewSetupService wires the collection flow.
func NewSetupService(p prompt.Prompter, candidates discovery.Table, store ArtifactStore, out io.Writer) *SetupService {
	return &SetupService{prompter: p, candidates: candidates, store: store, out: out}
}

// Collect walks the schema in two passes: first the text and number fields,
// each a blocking prompt, then the path fields, auto-resolved from their
// candidate sets where possible and prompted otherwise. Input is accepted
// as typed; nothing is validated here.
func (s *SetupService) Collect() (*botconfig.Artifact, error) {
	schema := botconfig.Schema()
	artifact := botconfig.NewArtifact(schema)

	for _, f := range schema {
		if !f.Prompted() || f.Kind == botconfig.PathLiteral {
			continue
		}
		value, err := s.prompter.Ask(f.Label)
		if err != nil {
			return nil, err
		}
		if err := artifact.Set(f.Name, value); err != nil {
			return nil, err
		}
	}

	for _, f := range schema {
		if f.Kind != botconfig.PathLiteral {
			continue
		}
		value, err := s.resolvePath(f)
		if err != nil {
			return nil, err
		}
		if err := artifact.Set(f.Name, value); err != nil {
			return nil, err
		}
	}

	if err := artifact.Complete(); err != nil {
		return nil, err
	}
	return artifact, nil
}

// resolvePath probes the field's candidate set and falls back to a manual
// prompt when nothing on disk matches. A discovery miss is a normal branch,
// never an error.
func (s *SetupService) resolvePath(f botconfig.Field) (string, error) {
	set, ok := s.candidates.Lookup(f.Resource)
	if !ok {
		return "", fmt.Errorf("no candidate set for resource %q", f.Resource)
	}

	if loc := set.Resolve(); loc.Found {
		fmt.Fprintf(s.out, "Found %s at %s\n", f.Resource, loc.Path)
		return loc.Path, nil
	}

	fmt.Fprintf(s.out, "Could not locate %s automatically.\n", f.Resource)
	return s.prompter.Ask(f.Label)
}

// Run executes the whole configuration flow and returns the path of the
// written artifact. With strict enabled, collected values are validated
// before rendering; by default the flow reproduces the original permissive
// behavior and writes whatever was entered.
func (s *SetupService) Run(strict bool) (string, error) {
	artifact, err := s.Collect()
	if err != nil {
		return "", err
	}

	if strict {
		if err := botconfig.ValidateStrict(artifact); err != nil {
			return "", err
		}
	}

	rendered, err := artifact.Render()
	if err != nil {
		return "", err
	}
	return s.store.Write(rendered)
}
