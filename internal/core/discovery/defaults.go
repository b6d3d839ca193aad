package discovery

import (
	_ "embed"
)

// Resource names known to the default table.
const (
	ResourceGame      = "game"
	ResourceTesseract = "tesseract"
)

//go:embed candidates.yaml
var defaultCandidates []byte

// DefaultTable returns the compiled-in candidate table for the game and
// Tesseract executables.
func DefaultTable() (Table, error) {
	return ParseTable(defaultCandidates)
}
