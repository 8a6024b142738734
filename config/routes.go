package config

import (
	"labelsmobile/app"
	"labelsmobile/app/controller/configapi"
	"labelsmobile/app/controller/health"
	"labelsmobile/app/controller/static"

	"github.com/labstack/echo/v4"
)

// AddRoutes wires the config API, the health route and the static assets.
// Static files take every path no other route claims.
func AddRoutes(e *echo.Echo, container *app.Container) {
	root := e.Group("")
	apiRoute := root.Group("/api")

	configHandler := configapi.NewHandler(container.ConfigRepository)
	configHandler.RegisterRoutes(apiRoute)

	health.Register(root)
	static.Register(root, container.StaticDir)
}
