// Package html encodes rendered details as HTML fragments.
package html

import (
	"bytes"
	"html/template"

	"github.com/fwojciec/jassdoc"
)

// Ensure Encoder implements jassdoc.Encoder at compile time.
var _ jassdoc.Encoder = (*Encoder)(nil)

var fragment = template.Must(template.New("detail").Parse(
	`<article class="entry">` +
		`<h2 class="signature">{{template "line" .Signature}}</h2>` +
		`<p class="description">{{range $i, $l := .Description}}{{if $i}}<br>{{end}}{{template "line" $l}}{{end}}</p>` +
		`</article>` +
		`{{define "line"}}{{range .}}` +
		`{{if eq .Style.String "function"}}<strong class="function">{{.Text}}</strong>` +
		`{{else if eq .Style.String "type"}}<code class="type">{{.Text}}</code>` +
		`{{else if eq .Style.String "annotation"}}<em class="annotation">{{.Text}}</em>` +
		`{{else}}{{.Text}}{{end}}` +
		`{{end}}{{end}}`,
))

// Encoder renders a detail as a self-contained HTML fragment with one
// element per styled segment. All text is escaped.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode returns the HTML fragment for d.
func (e *Encoder) Encode(d *jassdoc.Detail) (string, error) {
	if d == nil {
		return "", jassdoc.Errorf(jassdoc.EINVALID, "nil detail")
	}

	var buf bytes.Buffer
	if err := fragment.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
