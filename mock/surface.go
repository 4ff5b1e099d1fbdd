package mock

import "github.com/fwojciec/jassdoc"

var _ jassdoc.ListSurface = (*ListSurface)(nil)

// ListSurface is a mock implementation of jassdoc.ListSurface.
type ListSurface struct {
	SetRowsFn func(rows []jassdoc.Row)
	SetBusyFn func(busy bool)
	PostFn    func(fn func())
	CloseFn   func()
}

func (s *ListSurface) SetRows(rows []jassdoc.Row) {
	s.SetRowsFn(rows)
}

func (s *ListSurface) SetBusy(busy bool) {
	s.SetBusyFn(busy)
}

func (s *ListSurface) Post(fn func()) {
	s.PostFn(fn)
}

func (s *ListSurface) Close() {
	s.CloseFn()
}

var _ jassdoc.ListHandler = (*ListHandler)(nil)

// ListHandler is a mock implementation of jassdoc.ListHandler.
type ListHandler struct {
	QueryChangedFn func(query string)
	SelectedFn     func(row jassdoc.Row)
	DismissedFn    func()
}

func (h *ListHandler) QueryChanged(query string) {
	h.QueryChangedFn(query)
}

func (h *ListHandler) Selected(row jassdoc.Row) {
	h.SelectedFn(row)
}

func (h *ListHandler) Dismissed() {
	h.DismissedFn()
}

var _ jassdoc.DetailPanel = (*DetailPanel)(nil)

// DetailPanel is a mock implementation of jassdoc.DetailPanel.
type DetailPanel struct {
	ShowDetailFn func(d *jassdoc.Detail) error
}

func (p *DetailPanel) ShowDetail(d *jassdoc.Detail) error {
	return p.ShowDetailFn(d)
}
