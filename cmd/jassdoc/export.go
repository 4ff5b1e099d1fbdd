package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/jassdoc"
	"github.com/fwojciec/jassdoc/fs"
)

// Run executes the export command. Entries are grouped by the source they
// were extracted from; the output directory is only replaced once every
// entry was written.
func (c *ExportCmd) Run(deps *Dependencies) error {
	texts, err := deps.Loader.Load(deps.Ctx, deps.Sources)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jassdoc.ErrorMessage(err))
		return err
	}

	enc, ext := c.encoder()
	path := filepath.Clean(c.Path)
	store := fs.NewFileStore(filepath.Dir(path), filepath.Base(path), ext)

	count := 0
	for i, text := range texts {
		for _, e := range jassdoc.ExtractEntries(text) {
			content, err := enc.Encode(jassdoc.RenderDetail(e))
			if err == nil {
				err = store.Save(deps.Ctx, &jassdoc.Page{
					Name:      e.Name,
					Signature: e.SignatureLine(),
					Source:    deps.Sources[i],
					Content:   content,
				})
			}
			if err != nil {
				_ = store.Abort()
				fmt.Fprintf(deps.Stderr, "error: %s\n", jassdoc.ErrorMessage(err))
				return err
			}
			count++
		}
	}

	if count == 0 {
		_ = store.Abort()
		err := jassdoc.Errorf(jassdoc.ENOTFOUND, "No documentation entries found.")
		fmt.Fprintf(deps.Stderr, "error: %s\n", jassdoc.ErrorMessage(err))
		return err
	}

	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d entries to %s\n", count, path)
	return nil
}

func (c *ExportCmd) encoder() (jassdoc.Encoder, string) {
	if c.Format == "text" {
		return encoderFor("text"), ".txt"
	}
	return encoderFor("markdown"), ".md"
}
