package jassdoc

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	Convert(html string) (string, error)
}

// Encoder encodes a rendered detail for output.
type Encoder interface {
	Encode(d *Detail) (string, error)
}
