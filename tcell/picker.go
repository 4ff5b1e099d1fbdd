package tcell

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/jassdoc"
	"github.com/gdamore/tcell/v2"
)

// Ensure Picker implements jassdoc.ListSurface at compile time.
var _ jassdoc.ListSurface = (*Picker)(nil)

const prompt = "> "

// Picker is a filterable list on a tcell screen. The goroutine calling Run
// is the event goroutine: keys, posted callbacks and handler calls are all
// processed there, one at a time.
type Picker struct {
	screen tcell.Screen

	posted    chan func()
	done      chan struct{}
	closeOnce sync.Once

	rows   []jassdoc.Row
	busy   bool
	query  []rune
	cursor int
	offset int
	closed bool
}

// NewPicker creates a Picker drawing on screen. The caller owns the screen
// and must Init it before Run and Fini it afterwards.
func NewPicker(screen tcell.Screen) *Picker {
	return &Picker{
		screen: screen,
		posted: make(chan func(), 16),
		done:   make(chan struct{}),
	}
}

// SetRows replaces the rows and moves the cursor to the first one.
func (p *Picker) SetRows(rows []jassdoc.Row) {
	p.rows = rows
	p.cursor = 0
	p.offset = 0
}

// SetBusy toggles the busy indicator on the prompt line.
func (p *Picker) SetBusy(busy bool) {
	p.busy = busy
}

// Post schedules fn on the event goroutine. It blocks while the queue is
// full and drops fn once the picker is closed.
func (p *Picker) Post(fn func()) {
	select {
	case <-p.done:
		return
	default:
	}
	select {
	case p.posted <- fn:
	case <-p.done:
	}
}

// Close stops Run after the current event.
func (p *Picker) Close() {
	p.closeOnce.Do(func() {
		p.closed = true
		close(p.done)
	})
}

// Rows returns the displayed rows.
func (p *Picker) Rows() []jassdoc.Row {
	return p.rows
}

// Query returns the text typed so far.
func (p *Picker) Query() string {
	return string(p.query)
}

// Cursor returns the index of the highlighted row.
func (p *Picker) Cursor() int {
	return p.cursor
}

// Run processes events until the picker is closed or ctx is done, in which
// case the handler is dismissed and ctx.Err() returned.
func (p *Picker) Run(ctx context.Context, handler jassdoc.ListHandler) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go p.screen.ChannelEvents(events, quit)
	defer close(quit)

	for !p.closed {
		p.Draw()

		select {
		case <-ctx.Done():
			handler.Dismissed()
			p.Close()
			return ctx.Err()
		case <-p.done:
			return nil
		case fn := <-p.posted:
			fn()
		case ev, ok := <-events:
			if !ok {
				handler.Dismissed()
				p.Close()
				return nil
			}
			p.handle(ev, handler)
		}
	}
	return nil
}

func (p *Picker) handle(ev tcell.Event, handler jassdoc.ListHandler) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			handler.Dismissed()
			p.Close()
		case tcell.KeyEnter:
			if p.cursor < len(p.rows) {
				handler.Selected(p.rows[p.cursor])
			}
		case tcell.KeyUp, tcell.KeyCtrlP:
			p.move(-1)
		case tcell.KeyDown, tcell.KeyCtrlN:
			p.move(1)
		case tcell.KeyPgUp:
			p.move(-p.pageSize())
		case tcell.KeyPgDn:
			p.move(p.pageSize())
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(p.query) > 0 {
				p.query = p.query[:len(p.query)-1]
				handler.QueryChanged(string(p.query))
			}
		case tcell.KeyCtrlU:
			if len(p.query) > 0 {
				p.query = p.query[:0]
				handler.QueryChanged("")
			}
		case tcell.KeyRune:
			p.query = append(p.query, ev.Rune())
			handler.QueryChanged(string(p.query))
		}
	}
}

func (p *Picker) move(delta int) {
	if len(p.rows) == 0 {
		return
	}
	p.cursor = min(max(p.cursor+delta, 0), len(p.rows)-1)
}

// pageSize is the number of row lines below the prompt and status lines.
func (p *Picker) pageSize() int {
	_, h := p.screen.Size()
	return max(h-2, 1)
}

// Draw renders the prompt, a status line and the visible rows.
func (p *Picker) Draw() {
	if p.closed {
		return
	}
	w, h := p.screen.Size()
	p.screen.Clear()

	x := drawText(p.screen, 0, 0, w, prompt, stylePrompt)
	x = drawText(p.screen, x, 0, w, string(p.query), stylePlain)
	p.screen.ShowCursor(x, 0)

	status := fmt.Sprintf("%d/%d", min(p.cursor+1, len(p.rows)), len(p.rows))
	if p.busy {
		status = "loading…"
	}
	drawText(p.screen, 0, 1, w, status, styleDim)

	page := p.pageSize()
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+page {
		p.offset = p.cursor - page + 1
	}

	for i := 0; i < page && p.offset+i < len(p.rows); i++ {
		y := i + 2
		if y >= h {
			break
		}
		p.drawRow(y, w, p.rows[p.offset+i], p.offset+i == p.cursor)
	}

	p.screen.Show()
}

func (p *Picker) drawRow(y, w int, row jassdoc.Row, selected bool) {
	label, dim := styleLabel, styleDim
	if row.Inert {
		label = styleDim
	}
	if selected && !row.Inert {
		label = label.Reverse(true)
		dim = dim.Reverse(true)
	}

	x := drawText(p.screen, 0, y, w, row.Label, label)
	if row.Description != "" {
		x = drawText(p.screen, x, y, w, "  ", dim)
		x = drawText(p.screen, x, y, w, row.Description, dim)
	}
	if row.Detail != "" {
		x = drawText(p.screen, x, y, w, "  ", dim)
		x = drawText(p.screen, x, y, w, row.Detail, dim.Italic(true))
	}
	if selected && !row.Inert {
		fill(p.screen, x, y, w, dim)
	}
}
