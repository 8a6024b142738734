// Package health reports that the PWA server is up and which build it runs
package health

import (
	"labelsmobile/version"
	"net/http"

	"github.com/labstack/echo/v4"
)

type (
	Handler struct {
		version string
		commit  string
	}

	StatusResponse struct {
		Ok      bool   `json:"ok"`
		Version string `json:"version"`
		Commit  string `json:"commit"`
	}
)

func NewHandler(version, commit string) *Handler {
	return &Handler{version: version, commit: commit}
}

func (h *Handler) GET(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{
		Ok:      true,
		Version: h.version,
		Commit:  h.commit,
	})
}

// Register mounts /health with the build info of this binary.
func Register(g *echo.Group) {
	g.GET("/health", NewHandler(version.Version, version.Commit).GET)
}
