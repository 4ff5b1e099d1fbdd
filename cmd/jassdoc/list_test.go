package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/jassdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists entries in extraction order", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), args("list"), &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"KillUnit\tKillUnit(unit whichUnit): nothing",
			"GetUnitX\tGetUnitX(unit whichUnit): real",
			"CreateTimer\tCreateTimer(nothing): timer",
			"KillUnit\tKillUnit(unit whichUnit, real delay): nothing",
		}, strings.Split(strings.TrimSpace(stdout.String()), "\n"))
	})

	t.Run("honors the limit", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), args("list", "-n", "2"), &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, "KillUnit\tKillUnit(unit whichUnit): nothing\nGetUnitX\tGetUnitX(unit whichUnit): real\n", stdout.String())
	})

	t.Run("filters by a fuzzy query", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), args("list", "--query", "CreateTimr"), &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "CreateTimer\tCreateTimer(nothing): timer")
		assert.NotContains(t, stdout.String(), "GetUnitX")
	})

	t.Run("reports no matches", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), args("list", "-q", "zzqqxxvv"), &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, "No matches.\n", stdout.String())
	})

	t.Run("rejects a non-positive limit", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), args("list", "-n", "0"), &stdout, &stderr)

		require.Error(t, err)
		assert.Equal(t, jassdoc.EINVALID, jassdoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: Limit must be positive.")
	})

	t.Run("returns not found when sources hold no entries", func(t *testing.T) {
		t.Parallel()

		m := newMain()
		m.Fetcher = fetcherOf(map[string]string{"https://example.com/empty.j": "globals\nendglobals\n"})
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"-s", "https://example.com/empty.j", "list"}, &stdout, &stderr)

		require.Error(t, err)
		assert.Equal(t, jassdoc.ENOTFOUND, jassdoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: No documentation entries found.")
	})
}
