package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/jassdoc"
	"github.com/fwojciec/jassdoc/html"
	"github.com/fwojciec/jassdoc/htmltomarkdown"
)

// Run executes the show command. Every entry with the given name is
// printed, in extraction order.
func (c *ShowCmd) Run(deps *Dependencies) error {
	entries, err := loadEntries(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jassdoc.ErrorMessage(err))
		return err
	}

	var matches []jassdoc.Entry
	for _, e := range entries {
		if e.Name == c.Name {
			matches = append(matches, e)
		}
	}
	if len(matches) == 0 {
		err := jassdoc.Errorf(jassdoc.ENOTFOUND, "Entry %q not found.", c.Name)
		fmt.Fprintf(deps.Stderr, "error: %s\n", jassdoc.ErrorMessage(err))
		return err
	}

	enc := encoderFor(c.Format)
	out := make([]string, 0, len(matches))
	for _, e := range matches {
		s, err := enc.Encode(jassdoc.RenderDetail(e))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jassdoc.ErrorMessage(err))
			return err
		}
		out = append(out, strings.TrimRight(s, "\n"))
	}

	fmt.Fprintln(deps.Stdout, strings.Join(out, "\n\n"))
	return nil
}

// encoderFor returns the encoder for a format name. Unknown names encode
// as text.
func encoderFor(format string) jassdoc.Encoder {
	switch format {
	case "html":
		return html.NewEncoder()
	case "markdown":
		return &htmltomarkdown.Encoder{
			HTML:      html.NewEncoder(),
			Converter: htmltomarkdown.NewConverter(),
		}
	default:
		return textEncoder{}
	}
}

// textEncoder encodes a detail as unstyled text.
type textEncoder struct{}

func (textEncoder) Encode(d *jassdoc.Detail) (string, error) {
	return d.PlainText(), nil
}
