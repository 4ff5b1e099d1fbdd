package main_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/jassdoc"
	main "github.com/fwojciec/jassdoc/cmd/jassdoc"
	"github.com/fwojciec/jassdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const commonJ = `/**
Kills the target unit.
@param whichUnit the unit to kill
*/
native KillUnit takes unit whichUnit returns nothing
/**
Returns the X-coordinate of a unit.
*/
constant native GetUnitX takes unit whichUnit returns real
`

const blizzardJ = `/**
Creates a timer.
*/
native CreateTimer takes nothing returns timer
/**
Kills the target unit after a delay.
*/
native KillUnit takes unit whichUnit, real delay returns nothing
`

// fetcherOf serves texts by URL and fails for unknown URLs.
func fetcherOf(texts map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			text, ok := texts[url]
			if !ok {
				return "", fmt.Errorf("HTTP 404 for %s", url)
			}
			return text, nil
		},
		CloseFn: func() error { return nil },
	}
}

func newMain() *main.Main {
	return &main.Main{
		Fetcher: fetcherOf(map[string]string{
			"https://example.com/common.j":   commonJ,
			"https://example.com/Blizzard.j": blizzardJ,
		}),
	}
}

var sources = []string{"-s", "https://example.com/common.j", "-s", "https://example.com/Blizzard.j"}

func args(a ...string) []string {
	return append(append([]string{}, sources...), a...)
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	err := newMain().Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "jassdoc")
	assert.Contains(t, stdout.String(), "search")
	assert.Contains(t, stdout.String(), "--source")
}

func TestMain_Run_UnknownCommand(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	err := newMain().Run(context.Background(), []string{"frobnicate", "x"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_ConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("reads sources from the config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"source": ["https://example.com/Blizzard.j"]}`), 0o644))

		m := newMain()
		m.ConfigPath = path
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"list"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, "CreateTimer\tCreateTimer(nothing): timer\nKillUnit\tKillUnit(unit whichUnit, real delay): nothing\n", stdout.String())
	})

	t.Run("lets flags override the config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"source": ["https://example.com/Blizzard.j"]}`), 0o644))

		m := newMain()
		m.ConfigPath = path
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"-s", "https://example.com/common.j", "list"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "GetUnitX")
		assert.NotContains(t, stdout.String(), "CreateTimer")
	})

	t.Run("ignores a missing config file", func(t *testing.T) {
		t.Parallel()

		m := newMain()
		m.ConfigPath = filepath.Join(t.TempDir(), "missing.json")
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), args("list"), &stdout, &stderr)

		require.NoError(t, err)
	})
}

func TestMain_Run_Debug(t *testing.T) {
	t.Parallel()

	t.Run("logs fetches to stderr", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), args("--debug", "list"), &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "msg=fetch")
		assert.Contains(t, stderr.String(), "msg=load")
		assert.Contains(t, stderr.String(), "duration=")
	})

	t.Run("logs searches to stderr", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), args("--debug", "list", "-q", "timer"), &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "msg=\"build index\"")
		assert.Contains(t, stderr.String(), "msg=search")
	})

	t.Run("writes logs to the log file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "jassdoc.log")
		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), args("--debug", "--log-file", path, "list"), &stdout, &stderr)

		require.NoError(t, err)
		assert.Empty(t, stderr.String())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "msg=fetch")
	})

	t.Run("without debug mode stderr remains quiet", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), args("list"), &stdout, &stderr)

		require.NoError(t, err)
		assert.Empty(t, stderr.String())
	})
}

func TestMain_Run_FetchFailure(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	err := newMain().Run(context.Background(), []string{"-s", "https://example.com/missing.j", "list"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, jassdoc.EUNAVAILABLE, jassdoc.ErrorCode(err))
	assert.Contains(t, stderr.String(), "error: fetch https://example.com/missing.j: HTTP 404 for https://example.com/missing.j")
}
