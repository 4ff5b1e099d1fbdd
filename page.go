package jassdoc

import "context"

// Page is one entry encoded for export.
type Page struct {
	Name      string
	Signature string
	Source    string // URL the entry was extracted from
	Content   string
}

// PageStore persists pages to storage with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}
