package main

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jassdoc"
)

// Run executes the sources command. Each line shows a content fingerprint,
// the size and the entry count of one source.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	texts, err := deps.Loader.Load(deps.Ctx, deps.Sources)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jassdoc.ErrorMessage(err))
		return err
	}

	total := 0
	for i, text := range texts {
		n := len(jassdoc.ExtractEntries(text))
		total += n
		fmt.Fprintf(deps.Stdout, "%016x  %8d bytes  %5d entries  %s\n",
			xxhash.Sum64String(text), len(text), n, deps.Sources[i])
	}
	fmt.Fprintf(deps.Stdout, "%d sources, %d entries\n", len(texts), total)

	return nil
}
