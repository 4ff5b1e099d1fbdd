package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/jassdoc"
)

// Ensure LoggingIndexer implements jassdoc.Indexer.
var _ jassdoc.Indexer = (*LoggingIndexer)(nil)

// LoggingIndexer wraps an Indexer with debug logging. Indexes it builds
// log their searches too.
type LoggingIndexer struct {
	next   jassdoc.Indexer
	logger *slog.Logger
}

// NewLoggingIndexer creates a new LoggingIndexer.
func NewLoggingIndexer(next jassdoc.Indexer, logger *slog.Logger) *LoggingIndexer {
	return &LoggingIndexer{next: next, logger: logger}
}

// BuildIndex delegates to the wrapped indexer and logs the build.
func (i *LoggingIndexer) BuildIndex(entries []jassdoc.Entry) (idx jassdoc.Index, err error) {
	defer func(begin time.Time) {
		i.logger.Info("build index",
			"entries", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	idx, err = i.next.BuildIndex(entries)
	if err != nil {
		return nil, err
	}
	return &LoggingIndex{next: idx, logger: i.logger}, nil
}

// Ensure LoggingIndex implements jassdoc.Index.
var _ jassdoc.Index = (*LoggingIndex)(nil)

// LoggingIndex wraps an Index with debug logging.
type LoggingIndex struct {
	next   jassdoc.Index
	logger *slog.Logger
}

// NewLoggingIndex creates a new LoggingIndex.
func NewLoggingIndex(next jassdoc.Index, logger *slog.Logger) *LoggingIndex {
	return &LoggingIndex{next: next, logger: logger}
}

// Search delegates to the wrapped index and logs the query.
func (i *LoggingIndex) Search(query string) (hits []jassdoc.Entry, err error) {
	defer func(begin time.Time) {
		i.logger.Info("search",
			"query", query,
			"hits", len(hits),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Search(query)
}

// Close delegates to the wrapped index.
func (i *LoggingIndex) Close() error {
	return i.next.Close()
}
