// Package tcell implements the interactive list surface and detail panel on
// a tcell screen.
package tcell

import (
	"github.com/fwojciec/jassdoc"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Styles used for detail segments and list rows.
var (
	stylePlain      = tcell.StyleDefault
	styleFunction   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleType       = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleAnnotation = tcell.StyleDefault.Foreground(tcell.ColorGreen).Italic(true)
	styleLabel      = tcell.StyleDefault.Bold(true)
	styleDim        = tcell.StyleDefault.Dim(true)
	stylePrompt     = tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
)

func segmentStyle(s jassdoc.Style) tcell.Style {
	switch s {
	case jassdoc.StyleFunction:
		return styleFunction
	case jassdoc.StyleType:
		return styleType
	case jassdoc.StyleAnnotation:
		return styleAnnotation
	default:
		return stylePlain
	}
}

// tabWidth is the distance between tab stops.
const tabWidth = 4

// drawText draws s from column x on row y, clipped at maxX, and returns the
// column after the last cell drawn. Tabs advance to the next tab stop. Wide
// graphemes that do not fit are dropped whole.
func drawText(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if g.Str() == "\t" {
			stop := min((x/tabWidth+1)*tabWidth, maxX)
			fill(screen, x, y, stop, style)
			x = stop
			continue
		}
		w := g.Width()
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		runes := g.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}

// fill paints the rest of row y from column x with style.
func fill(screen tcell.Screen, x, y, maxX int, style tcell.Style) {
	for ; x < maxX; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
