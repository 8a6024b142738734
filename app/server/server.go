// Package server builds and runs the echo instance shared by the mobile
// server and the dev server
package server

import (
	"context"
	"errors"
	"fmt"
	"labelsmobile/app"
	"labelsmobile/app/middleware/pwaheaders"
	"labelsmobile/config"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
)

const shutdownTimeout = 5 * time.Second

// New returns an echo instance with the PWA headers, request IDs, request
// logging and panic recovery installed on every route.
func New(container *app.Container) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ulid.Make().String() },
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(pwaheaders.Middleware())

	config.AddRoutes(e, container)

	return e
}

// Listen binds port on all interfaces.
func Listen(port string) (net.Listener, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%s", port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on port %s: %w", port, err)
	}
	return ln, nil
}

// Run serves on ln until ctx is cancelled, then shuts the server down.
func Run(ctx context.Context, e *echo.Echo, ln net.Listener) error {
	e.Listener = ln

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start("")
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
