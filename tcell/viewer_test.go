package tcell_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/jassdoc"
	jtcell "github.com/fwojciec/jassdoc/tcell"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var detail = jassdoc.RenderDetail(jassdoc.Entry{
	Name:        "GetUnitX",
	Signature:   "GetUnitX(unit whichUnit): real",
	Description: "/**\nReturns the X-coordinate.\n@param whichUnit the unit\n@pure\n*/\nconstant native GetUnitX takes unit whichUnit returns real",
})

func runViewer(t *testing.T, v *jtcell.Viewer) error {
	t.Helper()

	errc := make(chan error, 1)
	go func() { errc <- v.Run(context.Background()) }()

	select {
	case err := <-errc:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("viewer did not exit")
		return nil
	}
}

func TestViewer_ShowDetail(t *testing.T) {
	t.Parallel()

	t.Run("stores the detail", func(t *testing.T) {
		t.Parallel()

		v := jtcell.NewViewer(newScreen(t, 80, 10))

		require.NoError(t, v.ShowDetail(detail))

		assert.Same(t, detail, v.Pending())
	})

	t.Run("rejects a nil detail", func(t *testing.T) {
		t.Parallel()

		v := jtcell.NewViewer(newScreen(t, 80, 10))

		err := v.ShowDetail(nil)

		assert.Equal(t, jassdoc.EINVALID, jassdoc.ErrorCode(err))
		assert.Nil(t, v.Pending())
	})
}

func TestViewer_Draw(t *testing.T) {
	t.Parallel()

	screen := newScreen(t, 80, 10)
	v := jtcell.NewViewer(screen)
	require.NoError(t, v.ShowDetail(detail))

	v.Draw()

	assert.Equal(t, "GetUnitX(unit whichUnit): real", line(screen, 0))
	assert.Equal(t, "", line(screen, 1))
	assert.Equal(t, "Returns the X-coordinate.", line(screen, 2))
	assert.Equal(t, "@param whichUnit the unit", line(screen, 3))
	assert.Equal(t, "constant native GetUnitX takes unit whichUnit returns real", line(screen, 5))

	cells, w, _ := screen.GetContents()
	fg, _, _ := cells[0*w+0].Style.Decompose()
	assert.Equal(t, tcell.ColorYellow, fg)
}

func TestViewer_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns immediately without a detail", func(t *testing.T) {
		t.Parallel()

		v := jtcell.NewViewer(newScreen(t, 80, 10))

		require.NoError(t, runViewer(t, v))
	})

	t.Run("scrolls and quits", func(t *testing.T) {
		t.Parallel()

		screen := newScreen(t, 80, 3)
		v := jtcell.NewViewer(screen)
		require.NoError(t, v.ShowDetail(detail))

		screen.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
		screen.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
		screen.InjectKey(tcell.KeyRune, 'k', tcell.ModNone)
		screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

		require.NoError(t, runViewer(t, v))
		assert.Equal(t, 1, v.Offset())
	})

	t.Run("does not scroll past the last line", func(t *testing.T) {
		t.Parallel()

		screen := newScreen(t, 80, 3)
		v := jtcell.NewViewer(screen)
		require.NoError(t, v.ShowDetail(detail))

		screen.InjectKey(tcell.KeyEnd, 0, tcell.ModNone)
		screen.InjectKey(tcell.KeyPgDn, 0, tcell.ModNone)
		screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

		require.NoError(t, runViewer(t, v))
		assert.Equal(t, 3, v.Offset())
	})
}

func TestViewer_Draw_Tabs(t *testing.T) {
	t.Parallel()

	screen := newScreen(t, 80, 10)
	v := jtcell.NewViewer(screen)
	require.NoError(t, v.ShowDetail(jassdoc.RenderDetail(jassdoc.Entry{
		Name:        "F",
		Signature:   "F(nothing): nothing",
		Description: "/**\n\tindented\nab\tc\n*/\nnative F takes nothing returns nothing",
	})))

	v.Draw()

	assert.Equal(t, "    indented", line(screen, 2))
	assert.Equal(t, "ab  c", line(screen, 3))
}
