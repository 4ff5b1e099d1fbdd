package tcell

import (
	"context"

	"github.com/fwojciec/jassdoc"
	"github.com/gdamore/tcell/v2"
)

// Ensure Viewer implements jassdoc.DetailPanel at compile time.
var _ jassdoc.DetailPanel = (*Viewer)(nil)

// Viewer is a read-only, scrollable detail panel on a tcell screen.
type Viewer struct {
	screen tcell.Screen
	detail *jassdoc.Detail
	lines  []jassdoc.Line
	offset int
}

// NewViewer creates a Viewer drawing on screen.
func NewViewer(screen tcell.Screen) *Viewer {
	return &Viewer{screen: screen}
}

// ShowDetail stores d for display by the next Run.
func (v *Viewer) ShowDetail(d *jassdoc.Detail) error {
	if d == nil {
		return jassdoc.Errorf(jassdoc.EINVALID, "nil detail")
	}
	v.detail = d
	v.offset = 0
	v.lines = append([]jassdoc.Line{d.Signature, nil}, d.Description...)
	return nil
}

// Pending returns the detail waiting to be shown, or nil.
func (v *Viewer) Pending() *jassdoc.Detail {
	return v.detail
}

// Run displays the pending detail until the user quits or ctx is done.
// It returns immediately when there is nothing to show.
func (v *Viewer) Run(ctx context.Context) error {
	if v.detail == nil {
		return nil
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go v.screen.ChannelEvents(events, quit)
	defer close(quit)

	for {
		v.Draw()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !v.handle(ev) {
				return nil
			}
		}
	}
}

// handle reports whether the viewer stays open.
func (v *Viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyEnter:
			return false
		case tcell.KeyUp:
			v.scroll(-1)
		case tcell.KeyDown:
			v.scroll(1)
		case tcell.KeyPgUp:
			v.scroll(-v.height())
		case tcell.KeyPgDn:
			v.scroll(v.height())
		case tcell.KeyHome:
			v.offset = 0
		case tcell.KeyEnd:
			v.scroll(len(v.lines))
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'k':
				v.scroll(-1)
			case 'j':
				v.scroll(1)
			}
		}
	}
	return true
}

func (v *Viewer) height() int {
	_, h := v.screen.Size()
	return max(h, 1)
}

func (v *Viewer) scroll(delta int) {
	v.offset = min(max(v.offset+delta, 0), max(len(v.lines)-v.height(), 0))
}

// Offset returns the index of the first visible line.
func (v *Viewer) Offset() int {
	return v.offset
}

// Draw renders the visible lines of the pending detail.
func (v *Viewer) Draw() {
	w, h := v.screen.Size()
	v.screen.Clear()
	v.screen.HideCursor()

	for y := 0; y < h && v.offset+y < len(v.lines); y++ {
		x := 0
		for _, seg := range v.lines[v.offset+y] {
			x = drawText(v.screen, x, y, w, seg.Text, segmentStyle(seg.Style))
		}
	}

	v.screen.Show()
}
