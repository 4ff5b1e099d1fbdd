package jassdoc

import (
	"regexp"
	"strings"
)

// Style identifies how a run of detail text is displayed.
type Style int

// Detail text styles.
const (
	StylePlain Style = iota
	StyleFunction
	StyleType
	StyleAnnotation
)

// String returns the style name. Encoders use it as a CSS class.
func (s Style) String() string {
	switch s {
	case StyleFunction:
		return "function"
	case StyleType:
		return "type"
	case StyleAnnotation:
		return "annotation"
	default:
		return "plain"
	}
}

// Segment is a run of text with a single style.
type Segment struct {
	Text  string
	Style Style
}

// Line is one display line made of styled segments.
type Line []Segment

// String returns the line's text without styling.
func (l Line) String() string {
	var b strings.Builder
	for _, seg := range l {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Detail is the read-only display payload for one entry.
type Detail struct {
	Name        string
	Signature   Line
	Description []Line
}

// PlainText returns the detail as unstyled text: the signature, a blank
// line, then the description lines.
func (d *Detail) PlainText() string {
	lines := make([]string, 0, len(d.Description)+2)
	lines = append(lines, d.Signature.String(), "")
	for _, l := range d.Description {
		lines = append(lines, l.String())
	}
	return strings.Join(lines, "\n")
}

// PrimitiveTypes lists the type keywords highlighted in signatures.
var PrimitiveTypes = []string{"integer", "real", "boolean", "string", "unit", "player", "force", "nothing"}

var (
	typeRe       = regexp.MustCompile(`\b(?:` + strings.Join(PrimitiveTypes, "|") + `)\b`)
	annotationRe = regexp.MustCompile(`@\w+`)
)

// RenderDetail builds the display payload for an entry.
//
// In the signature, the name before "(" is styled as a function and every
// primitive type keyword as a type. The description keeps the raw block's
// lines in order, with trailing whitespace stripped, the "/**" and "*/"
// delimiter lines dropped, and @annotations styled.
func RenderDetail(e Entry) *Detail {
	d := &Detail{Name: e.Name}

	rest := e.SignatureLine()
	if i := strings.Index(rest, "("); i > 0 {
		d.Signature = append(d.Signature, Segment{Text: rest[:i], Style: StyleFunction})
		rest = rest[i:]
	}
	d.Signature = append(d.Signature, highlight(rest, typeRe, StyleType)...)

	for _, raw := range strings.Split(e.Description, "\n") {
		raw = strings.TrimRight(raw, " \t\r")
		if trimmed := strings.TrimSpace(raw); trimmed == commentOpen || trimmed == commentClose {
			continue
		}
		d.Description = append(d.Description, highlight(raw, annotationRe, StyleAnnotation))
	}

	return d
}

// highlight splits s into plain runs and runs matched by re.
func highlight(s string, re *regexp.Regexp, style Style) Line {
	var line Line
	last := 0
	for _, m := range re.FindAllStringIndex(s, -1) {
		if m[0] > last {
			line = append(line, Segment{Text: s[last:m[0]]})
		}
		line = append(line, Segment{Text: s[m[0]:m[1]], Style: style})
		last = m[1]
	}
	if last < len(s) || len(line) == 0 {
		line = append(line, Segment{Text: s[last:]})
	}
	return line
}
