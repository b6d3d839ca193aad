package botconfig

import "github.com/invisible-hand/handsetup/internal/core/discovery"

// Kind describes how a field's value is collected and rendered.
type Kind int

const (
	// Text renders as a double-quoted string.
	Text Kind = iota
	// Number renders unquoted, exactly as entered.
	Number
	// PathLiteral renders as a raw string literal so Windows backslashes
	// survive untouched.
	PathLiteral
)

// GameWindowName is the window title the bot attaches to. It is baked into
// the artifact and never prompted.
const GameWindowName = "Battlefield™ V"

// Field describes one entry of the configuration artifact.
type Field struct {
	// Name is the assignment target in the rendered artifact.
	Name string
	// Label is the operator-facing prompt. Empty for fixed fields.
	Label string
	Kind  Kind
	// Fixed holds a preset value. Fixed fields are never prompted.
	Fixed string
	// Resource names the candidate set a path field may be auto-resolved
	// from. Empty for text and number fields.
	Resource string
	// GapBefore inserts a blank line ahead of the field when rendering.
	GapBefore bool
}

// Prompted reports whether the field's value comes from the operator or
// from discovery, as opposed to being compiled in.
func (f Field) Prompted() bool {
	return f.Fixed == ""
}

// Schema returns the artifact's fields in render order. The order is part
// of the contract with the bot: it reads the file top to bottom and the
// layout is load-bearing for humans diffing deployments.
func Schema() []Field {
	return []Field{
		{Name: "server_name", Label: "Server name", Kind: Text},
		{Name: "bot_name", Label: "Bot name", Kind: Text},
		{Name: "ping_threshold", Label: "Ping threshold (ms)", Kind: Number},
		{Name: "game_location", Label: "Path to the game executable", Kind: PathLiteral, Resource: discovery.ResourceGame},
		{Name: "game_window_name", Kind: Text, Fixed: GameWindowName},
		{Name: "tesseract_location", Label: "Path to the Tesseract executable", Kind: PathLiteral, Resource: discovery.ResourceTesseract},
		{Name: "DB_NAME", Label: "Database name", Kind: Text, GapBefore: true},
		{Name: "DB_USER", Label: "Database user", Kind: Text},
		{Name: "DB_PASSWORD", Label: "Database password", Kind: Text},
		{Name: "DB_HOST", Label: "Database host", Kind: Text},
		{Name: "DB_PORT", Label: "Database port", Kind: Text},
	}
}
