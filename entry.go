package jassdoc

import (
	"fmt"
	"strings"
)

// Placeholders used when a declaration field cannot be parsed.
const (
	UnknownName = "<unknown>"
	Nothing     = "nothing"
)

// Entry represents one documented native declaration.
// Entries are values and are never modified after extraction.
type Entry struct {
	Name string `json:"name"`

	// Signature has the form "name(parameters): returnType". The parameter
	// text is kept as declared and may span lines.
	Signature string `json:"signature"`

	// Description is the matched block verbatim: doc comment plus declaration.
	Description string `json:"description"`
}

// FormatSignature builds the display signature for a declaration.
// Empty fields fall back to UnknownName and Nothing.
func FormatSignature(name, params, returns string) string {
	if name == "" {
		name = UnknownName
	}
	if params == "" {
		params = Nothing
	}
	if returns == "" {
		returns = Nothing
	}
	return fmt.Sprintf("%s(%s): %s", name, params, returns)
}

// SignatureLine returns the signature with every whitespace run collapsed
// to one space, for single-line display.
func (e Entry) SignatureLine() string {
	return strings.Join(strings.Fields(e.Signature), " ")
}
