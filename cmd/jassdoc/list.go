package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/jassdoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	if c.Limit <= 0 {
		err := jassdoc.Errorf(jassdoc.EINVALID, "Limit must be positive.")
		fmt.Fprintf(deps.Stderr, "error: %s\n", jassdoc.ErrorMessage(err))
		return err
	}

	entries, err := loadEntries(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jassdoc.ErrorMessage(err))
		return err
	}

	if q := strings.TrimSpace(c.Query); q != "" {
		entries, err = search(deps, entries, q)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jassdoc.ErrorMessage(err))
			return err
		}
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No matches.")
		return nil
	}

	for i, e := range entries {
		if i == c.Limit {
			break
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", e.Name, e.SignatureLine())
	}

	return nil
}

func search(deps *Dependencies, entries []jassdoc.Entry, q string) ([]jassdoc.Entry, error) {
	idx, err := deps.Indexer.BuildIndex(entries)
	if err != nil {
		return nil, jassdoc.Errorf(jassdoc.EINTERNAL, "build index: %v", err)
	}
	defer idx.Close()

	return idx.Search(q)
}
