package htmltomarkdown_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/jassdoc"
	"github.com/fwojciec/jassdoc/html"
	"github.com/fwojciec/jassdoc/htmltomarkdown"
	"github.com/fwojciec/jassdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<h2>Signature</h2>`)

		require.NoError(t, err)
		assert.Contains(t, md, "## Signature")
	})

	t.Run("converts inline code", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>Takes an <code>integer</code>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "`integer`")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p><strong>Bold</strong> and <em>italic</em> text.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("ends the output with a single newline", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("\n<p>Kills the unit.</p>\n\n")

		require.NoError(t, err)
		assert.Equal(t, "Kills the unit.\n", md)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  ")

		require.Error(t, err)
		assert.Equal(t, jassdoc.EINVALID, jassdoc.ErrorCode(err))
	})
}

func TestEncoder_Encode(t *testing.T) {
	t.Parallel()

	t.Run("converts an encoded detail", func(t *testing.T) {
		t.Parallel()

		enc := &htmltomarkdown.Encoder{
			HTML:      html.NewEncoder(),
			Converter: htmltomarkdown.NewConverter(),
		}
		d := jassdoc.RenderDetail(jassdoc.Entry{
			Name:        "FooBar",
			Signature:   "FooBar(integer a): boolean",
			Description: "/**\nDoes foo.\n@param a the value\n*/\nnative FooBar takes integer a returns boolean",
		})

		md, err := enc.Encode(d)

		require.NoError(t, err)
		assert.Contains(t, md, "## **FooBar**")
		assert.Contains(t, md, "`integer`")
		assert.Contains(t, md, "`boolean`")
		assert.Contains(t, md, "Does foo.")
		assert.Contains(t, md, "@param")
	})

	t.Run("returns the HTML encoding error", func(t *testing.T) {
		t.Parallel()

		converted := false
		enc := &htmltomarkdown.Encoder{
			HTML: &mock.Encoder{
				EncodeFn: func(d *jassdoc.Detail) (string, error) {
					return "", errors.New("template failed")
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					converted = true
					return "", nil
				},
			},
		}

		_, err := enc.Encode(&jassdoc.Detail{})

		require.EqualError(t, err, "template failed")
		assert.False(t, converted)
	})
}
