package jassdoc

// Row is one line of a filterable list.
type Row struct {
	Label       string
	Description string
	Detail      string

	// Inert rows are placeholders that ignore selection.
	Inert bool
}

// ListSurface is a filterable list widget hosting a search session.
// All methods except Post must be called from the surface's event goroutine.
type ListSurface interface {
	// SetRows replaces the displayed rows.
	SetRows(rows []Row)

	// SetBusy toggles the busy indicator.
	SetBusy(busy bool)

	// Post schedules fn to run on the surface's event goroutine.
	// It is safe to call from any goroutine; after Close it is a no-op.
	Post(fn func())

	// Close hides the surface. No events are delivered afterwards.
	Close()
}

// ListHandler receives events from a ListSurface, one at a time, on the
// surface's event goroutine.
type ListHandler interface {
	QueryChanged(query string)
	Selected(row Row)
	Dismissed()
}

// DetailPanel displays a rendered detail.
type DetailPanel interface {
	ShowDetail(d *Detail) error
}
