package main_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jassdoc"
	main "github.com/fwojciec/jassdoc/cmd/jassdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints fingerprint, size and entry count per source", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/common.j":
				fmt.Fprint(w, commonJ)
			case "/Blizzard.j":
				fmt.Fprint(w, blizzardJ)
			default:
				http.NotFound(w, r)
			}
		}))
		t.Cleanup(srv.Close)

		m := &main.Main{}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{
			"-s", srv.URL + "/common.j",
			"-s", srv.URL + "/Blizzard.j",
			"sources",
		}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t,
			fmt.Sprintf("%016x  %8d bytes  %5d entries  %s\n", xxhash.Sum64String(commonJ), len(commonJ), 2, srv.URL+"/common.j")+
				fmt.Sprintf("%016x  %8d bytes  %5d entries  %s\n", xxhash.Sum64String(blizzardJ), len(blizzardJ), 2, srv.URL+"/Blizzard.j")+
				"2 sources, 4 entries\n",
			stdout.String())
	})

	t.Run("fails when any source fails", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		t.Cleanup(srv.Close)

		m := &main.Main{}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"-s", srv.URL + "/common.j", "sources"}, &stdout, &stderr)

		require.Error(t, err)
		assert.Equal(t, jassdoc.EUNAVAILABLE, jassdoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "HTTP 404")
		assert.Empty(t, stdout.String())
	})
}
