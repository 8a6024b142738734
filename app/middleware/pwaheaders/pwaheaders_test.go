package pwaheaders

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, target string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, Middleware()(handler)(c))
	return rec
}

func TestMiddleware(t *testing.T) {
	t.Run("adds no-cache and CORS headers", func(t *testing.T) {
		rec := serve(t, "/index.html", func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
		assert.Equal(t, "no-cache", rec.Header().Get("Pragma"))
		assert.Equal(t, "0", rec.Header().Get("Expires"))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("keeps headers on error responses", func(t *testing.T) {
		rec := serve(t, "/missing", func(c echo.Context) error {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("marks json paths as application/json", func(t *testing.T) {
		rec := serve(t, "/manifest.json", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		assert.Equal(t, echo.MIMEApplicationJSON, rec.Header().Get("Content-Type"))
	})

	t.Run("leaves other content types alone", func(t *testing.T) {
		rec := serve(t, "/app.js", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		assert.Empty(t, rec.Header().Get("Content-Type"))
	})
}
