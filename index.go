package jassdoc

// Searchable entry fields.
const (
	FieldName        = "name"
	FieldSignature   = "signature"
	FieldDescription = "description"
)

// Index ranks a fixed set of entries against queries.
type Index interface {
	// Search returns the entries matching query, best match first.
	// A query with no usable terms matches nothing.
	Search(query string) ([]Entry, error)

	// Close releases the index.
	Close() error
}

// Indexer builds search indexes.
type Indexer interface {
	// BuildIndex indexes entries over their name, signature and description.
	BuildIndex(entries []Entry) (Index, error)
}
