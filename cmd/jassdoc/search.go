package main

import (
	"fmt"
	"sync"

	"github.com/fwojciec/jassdoc"
	"github.com/fwojciec/jassdoc/session"
	"github.com/fwojciec/jassdoc/tcell"
)

// Run executes the search command. The selected entry is shown in a viewer
// and printed to stdout once the screen is released.
func (c *SearchCmd) Run(deps *Dependencies) error {
	screen, err := deps.NewScreen()
	if err != nil {
		err = jassdoc.Errorf(jassdoc.EUNAVAILABLE, "no terminal: %v", err)
		fmt.Fprintf(deps.Stderr, "error: %s\n", jassdoc.ErrorMessage(err))
		return err
	}
	release := sync.OnceFunc(screen.Fini)
	defer release()

	picker := tcell.NewPicker(screen)
	viewer := tcell.NewViewer(screen)

	s := &session.Session{
		Sources: deps.Sources,
		Loader:  deps.Loader,
		Indexer: deps.Indexer,
		List:    picker,
		Panel:   viewer,
		Logger:  deps.Logger,
	}
	s.Start(deps.Ctx)

	if err := picker.Run(deps.Ctx, s); err != nil {
		return err
	}

	d := viewer.Pending()
	if d == nil {
		return nil
	}
	if err := viewer.Run(deps.Ctx); err != nil {
		return err
	}

	release()
	fmt.Fprintln(deps.Stdout, d.PlainText())
	return nil
}
