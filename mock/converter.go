package mock

import "github.com/fwojciec/jassdoc"

var _ jassdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of jassdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ jassdoc.Encoder = (*Encoder)(nil)

// Encoder is a mock implementation of jassdoc.Encoder.
type Encoder struct {
	EncodeFn func(d *jassdoc.Detail) (string, error)
}

func (e *Encoder) Encode(d *jassdoc.Detail) (string, error) {
	return e.EncodeFn(d)
}
