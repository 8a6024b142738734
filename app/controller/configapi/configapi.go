// Package configapi publishes the Supabase client configuration to the PWA
package configapi

import (
	"labelsmobile/domain/supabaseconfig"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type (
	Handler struct {
		repo supabaseconfig.Repository
	}
	ErrorResponse struct {
		Error string `json:"error"`
	}
)

func NewHandler(repo supabaseconfig.Repository) *Handler {
	return &Handler{repo: repo}
}

func (h Handler) GET(c echo.Context) error {
	cfg, err := h.repo.Get(c.Request().Context())
	if err != nil {
		log.Errorf("failed to load supabase config: %s", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, cfg)
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/config", h.GET)
}
