// Package htmltomarkdown converts HTML detail fragments to Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/jassdoc"
)

// Ensure Converter implements jassdoc.Converter at compile time.
var _ jassdoc.Converter = (*Converter)(nil)

// Converter turns the HTML fragment of a rendered entry into CommonMark:
// the signature heading stays a heading, type and annotation markup become
// code spans and emphasis, and line breaks become hard breaks.
type Converter struct {
	md *converter.Converter
}

// NewConverter returns a Converter with the base and CommonMark rules.
func NewConverter() *Converter {
	return &Converter{
		md: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
	}
}

// Convert returns fragment as Markdown ending in exactly one newline, ready
// to print or write to a page file.
func (c *Converter) Convert(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", jassdoc.Errorf(jassdoc.EINVALID, "empty HTML input")
	}

	md, err := c.md.ConvertString(fragment)
	if err != nil {
		return "", jassdoc.Errorf(jassdoc.EINTERNAL, "convert to markdown: %v", err)
	}
	return strings.TrimSpace(md) + "\n", nil
}

// Ensure Encoder implements jassdoc.Encoder at compile time.
var _ jassdoc.Encoder = (*Encoder)(nil)

// Encoder encodes a detail as HTML and converts the result to Markdown.
type Encoder struct {
	HTML      jassdoc.Encoder
	Converter jassdoc.Converter
}

// Encode returns the Markdown form of d.
func (e *Encoder) Encode(d *jassdoc.Detail) (string, error) {
	fragment, err := e.HTML.Encode(d)
	if err != nil {
		return "", err
	}
	return e.Converter.Convert(fragment)
}
