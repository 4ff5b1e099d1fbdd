package mock

import "github.com/fwojciec/jassdoc"

var _ jassdoc.Indexer = (*Indexer)(nil)

// Indexer is a mock implementation of jassdoc.Indexer.
type Indexer struct {
	BuildIndexFn func(entries []jassdoc.Entry) (jassdoc.Index, error)
}

func (i *Indexer) BuildIndex(entries []jassdoc.Entry) (jassdoc.Index, error) {
	return i.BuildIndexFn(entries)
}

var _ jassdoc.Index = (*Index)(nil)

// Index is a mock implementation of jassdoc.Index.
type Index struct {
	SearchFn func(query string) ([]jassdoc.Entry, error)
	CloseFn  func() error
}

func (i *Index) Search(query string) ([]jassdoc.Entry, error) {
	return i.SearchFn(query)
}

func (i *Index) Close() error {
	return i.CloseFn()
}
