// Package static serves the PWA assets from a directory on disk
package static

import (
	"io/fs"
	"os"

	"github.com/labstack/echo/v4"
)

type (
	Handler struct {
		serve echo.HandlerFunc
	}
)

// NewHandler serves files below root. Directories resolve to their
// index.html; anything else that does not exist is a 404.
func NewHandler(root string) *Handler {
	return NewHandlerFS(os.DirFS(root))
}

func NewHandlerFS(fsys fs.FS) *Handler {
	return &Handler{serve: echo.StaticDirectoryHandler(fsys, false)}
}

func (h Handler) GET(c echo.Context) error {
	return h.serve(c)
}

func Register(g *echo.Group, root string) {
	h := NewHandler(root)

	g.GET("/*", h.GET)
	g.HEAD("/*", h.GET)
}
