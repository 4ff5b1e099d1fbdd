package main

import (
	"github.com/fwojciec/jassdoc"
)

// loadEntries fetches all sources and extracts their entries. An empty
// result is an ENOTFOUND error.
func loadEntries(deps *Dependencies) ([]jassdoc.Entry, error) {
	texts, err := deps.Loader.Load(deps.Ctx, deps.Sources)
	if err != nil {
		return nil, err
	}

	entries := jassdoc.ExtractAll(texts)
	if len(entries) == 0 {
		return nil, jassdoc.Errorf(jassdoc.ENOTFOUND, "No documentation entries found.")
	}
	return entries, nil
}
