// Package session implements the interactive search session: it loads and
// indexes documentation in the background, re-ranks entries on every query
// change, and renders the selected entry.
package session

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/jassdoc"
	"github.com/google/uuid"
)

// MaxRows bounds the displayed projection. The index is never truncated.
const MaxRows = 200

// Placeholder row labels.
const (
	LabelLoading    = "Loading documentation…"
	LabelLoadFailed = "Failed to load documentation"
	LabelIndexFail  = "Failed to build search index"
	LabelEmpty      = "No documentation entries found"
	LabelNoMatches  = "No matches"
	LabelSearchFail = "Search failed"
)

// State is a session lifecycle state.
type State int

// Session states. Selected is transient: it renders the entry and closes.
const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateSearching
	StateSelected
	StateFailed
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSearching:
		return "searching"
	case StateSelected:
		return "selected"
	case StateFailed:
		return "failed"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

var _ jassdoc.ListHandler = (*Session)(nil)

// Session owns the state of one search, from command invocation to
// dismissal. Apart from the background load started by Start, every method
// runs on the list surface's event goroutine, so no locking is needed.
type Session struct {
	// ID correlates log lines of one session. Generated by Start if empty.
	ID string

	Sources []string
	Loader  jassdoc.Loader
	Indexer jassdoc.Indexer
	List    jassdoc.ListSurface
	Panel   jassdoc.DetailPanel

	// Logger receives state transitions. Defaults to a discarding logger.
	Logger *slog.Logger

	// MaxRows overrides the default display bound when positive.
	MaxRows int

	state      State
	generation uint64
	cancel     context.CancelFunc

	entries []jassdoc.Entry
	index   jassdoc.Index
	query   string
	view    []jassdoc.Entry
}

// loadResult is produced off the event goroutine and applied on it.
// Whoever claims it first owns the index: the posted finish, or the load
// goroutine once the session is gone.
type loadResult struct {
	entries []jassdoc.Entry
	index   jassdoc.Index
	err     error
	failure string

	claimed atomic.Bool
}

func (r *loadResult) claim() bool {
	return r.claimed.CompareAndSwap(false, true)
}

// Start shows the busy placeholder and loads, extracts and indexes the
// sources in the background. The result is posted back to the list surface
// and dropped if the session was dismissed or restarted in the meantime.
func (s *Session) Start(ctx context.Context) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.release()

	s.generation++
	gen := s.generation
	ctx, s.cancel = context.WithCancel(ctx)

	s.transition(StateLoading)
	s.List.SetBusy(true)
	s.List.SetRows([]jassdoc.Row{{Label: LabelLoading, Inert: true}})

	go func() {
		res := s.load(ctx)

		delivered := make(chan struct{})
		s.List.Post(func() {
			close(delivered)
			s.finish(gen, res)
		})

		// A closed surface drops posted callbacks, so the index would leak.
		select {
		case <-delivered:
		case <-ctx.Done():
			if res.claim() && res.index != nil {
				_ = res.index.Close()
			}
		}
	}()
}

// load runs off the event goroutine and only reads immutable fields.
func (s *Session) load(ctx context.Context) *loadResult {
	texts, err := s.Loader.Load(ctx, s.Sources)
	if err != nil {
		return &loadResult{err: err, failure: LabelLoadFailed}
	}

	entries := jassdoc.ExtractAll(texts)
	if len(entries) == 0 {
		return &loadResult{}
	}

	// Skip indexing for a session that is already gone.
	if err := ctx.Err(); err != nil {
		return &loadResult{err: err, failure: LabelLoadFailed}
	}

	index, err := s.Indexer.BuildIndex(entries)
	if err != nil {
		return &loadResult{err: jassdoc.Errorf(jassdoc.EINTERNAL, "build index: %v", err), failure: LabelIndexFail}
	}
	return &loadResult{entries: entries, index: index}
}

func (s *Session) finish(gen uint64, res *loadResult) {
	if !res.claim() {
		s.logger().Debug("abandoned load dropped", "session", s.ID)
		return
	}
	if gen != s.generation || s.state == StateClosed {
		if res.index != nil {
			_ = res.index.Close()
		}
		s.logger().Debug("stale load dropped", "session", s.ID)
		return
	}

	s.List.SetBusy(false)

	switch {
	case res.err != nil:
		s.logger().Info("load failed", "session", s.ID, "err", res.err)
		s.transition(StateFailed)
		s.List.SetRows([]jassdoc.Row{{
			Label:       res.failure,
			Description: jassdoc.ErrorMessage(res.err),
			Inert:       true,
		}})
	case len(res.entries) == 0:
		s.transition(StateFailed)
		s.List.SetRows([]jassdoc.Row{{Label: LabelEmpty, Inert: true}})
	default:
		s.entries = res.entries
		s.index = res.index
		s.logger().Info("session ready", "session", s.ID, "entries", len(s.entries))
		s.transition(StateReady)
		s.show(s.entries)
	}
}

// QueryChanged re-ranks entries for query. It is ignored until the
// session is ready.
func (s *Session) QueryChanged(query string) {
	if s.state != StateReady && s.state != StateSearching {
		return
	}
	s.query = query

	q := strings.TrimSpace(query)
	if q == "" {
		s.transition(StateReady)
		s.show(s.entries)
		return
	}

	s.transition(StateSearching)
	hits, err := s.index.Search(q)
	if err != nil {
		s.logger().Info("search failed", "session", s.ID, "query", q, "err", err)
		s.view = nil
		s.List.SetRows([]jassdoc.Row{{Label: LabelSearchFail, Description: err.Error(), Inert: true}})
		return
	}
	if len(hits) == 0 {
		s.view = nil
		s.List.SetRows([]jassdoc.Row{{Label: LabelNoMatches, Inert: true}})
		return
	}
	s.show(hits)
}

// Selected renders the first displayed entry whose name equals the row
// label, hands it to the detail panel and closes the session.
func (s *Session) Selected(row jassdoc.Row) {
	if row.Inert || (s.state != StateReady && s.state != StateSearching) {
		return
	}

	entry, ok := s.lookup(row.Label)
	if !ok {
		return
	}

	s.transition(StateSelected)
	if err := s.Panel.ShowDetail(jassdoc.RenderDetail(entry)); err != nil {
		s.logger().Info("show detail failed", "session", s.ID, "name", entry.Name, "err", err)
	}

	s.List.Close()
	s.close()
}

// Dismissed ends the session from any state. A load still in flight is
// canceled and its result will be dropped.
func (s *Session) Dismissed() {
	s.close()
}

func (s *Session) close() {
	if s.state == StateClosed {
		return
	}
	s.generation++
	if s.cancel != nil {
		s.cancel()
	}
	s.release()
	s.transition(StateClosed)
}

func (s *Session) release() {
	if s.index != nil {
		_ = s.index.Close()
	}
	s.index = nil
	s.entries = nil
	s.view = nil
	s.query = ""
}

func (s *Session) lookup(label string) (jassdoc.Entry, bool) {
	for _, e := range s.view {
		if e.Name == label {
			return e, true
		}
	}
	return jassdoc.Entry{}, false
}

// show displays up to the row bound of entries.
func (s *Session) show(entries []jassdoc.Entry) {
	limit := s.MaxRows
	if limit <= 0 {
		limit = MaxRows
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	s.view = entries

	rows := make([]jassdoc.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, jassdoc.Row{
			Label:       e.Name,
			Description: e.SignatureLine(),
			Detail:      jassdoc.Summary(e),
		})
	}
	s.List.SetRows(rows)
}

func (s *Session) transition(to State) {
	if s.state == to {
		return
	}
	s.logger().Debug("session state", "session", s.ID, "from", s.state.String(), "to", to.String())
	s.state = to
}

func (s *Session) logger() *slog.Logger {
	if s.Logger == nil {
		s.Logger = slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Entries returns the full extracted entry set.
func (s *Session) Entries() []jassdoc.Entry {
	return s.entries
}

// Query returns the last query received.
func (s *Session) Query() string {
	return s.query
}
