package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"labelsmobile/app"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	staticDir string
	envFile   string
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	base := t.TempDir()
	staticDir := filepath.Join(base, "www")
	require.NoError(t, os.MkdirAll(staticDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<h1>labels</h1>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "manifest.json"), []byte(`{"name":"labels"}`), 0644))

	return fixture{staticDir: staticDir, envFile: filepath.Join(base, ".env")}
}

func (f fixture) serve(method, target string) *httptest.ResponseRecorder {
	e := New(app.NewContainer(f.staticDir, f.envFile))
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestNew_ConfigRoute(t *testing.T) {
	t.Run("returns empty values without an env file", func(t *testing.T) {
		f := newFixture(t)

		rec := f.serve(http.MethodGet, "/api/config")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"SUPABASE_URL":"","SUPABASE_ANON_KEY":""}`, rec.Body.String())
		assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("returns values from the env file", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, os.WriteFile(f.envFile, []byte("SUPABASE_URL=\"http://x\"\nSUPABASE_ANON_KEY='key1'\n"), 0600))

		rec := f.serve(http.MethodGet, "/api/config")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"SUPABASE_URL":"http://x","SUPABASE_ANON_KEY":"key1"}`, rec.Body.String())
	})

	t.Run("returns 500 when the env file cannot be read", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, os.MkdirAll(f.envFile, 0755))

		rec := f.serve(http.MethodGet, "/api/config")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])
	})
}

func TestNew_StaticFiles(t *testing.T) {
	t.Run("serves the index page", func(t *testing.T) {
		f := newFixture(t)

		rec := f.serve(http.MethodGet, "/")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "<h1>labels</h1>", rec.Body.String())
		assert.Equal(t, "no-cache", rec.Header().Get("Pragma"))
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})

	t.Run("serves json files as application/json", func(t *testing.T) {
		f := newFixture(t)

		rec := f.serve(http.MethodGet, "/manifest.json")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	})

	t.Run("returns 404 for missing files with CORS headers", func(t *testing.T) {
		f := newFixture(t)

		rec := f.serve(http.MethodGet, "/missing.js")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("serves the health route", func(t *testing.T) {
		f := newFixture(t)

		rec := f.serve(http.MethodGet, "/health")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"ok":true`)
	})
}

func TestRun(t *testing.T) {
	f := newFixture(t)
	e := New(app.NewContainer(f.staticDir, f.envFile))

	ln, err := Listen("0")
	require.NoError(t, err)
	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, e, ln)
	}()

	url := fmt.Sprintf("http://127.0.0.1:%s/api/config", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && len(body) > 0
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestListen_PortInUse(t *testing.T) {
	ln, err := Listen("0")
	require.NoError(t, err)
	defer ln.Close()

	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	_, err = Listen(port)
	assert.Error(t, err)
}
