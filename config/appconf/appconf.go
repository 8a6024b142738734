// Package appconf contains app related configurations
package appconf

import (
	"labelsmobile/config"
	devconf "labelsmobile/config/environments/development"
	prodconf "labelsmobile/config/environments/production"
	"os"
)

var appconf config.AppConfiger

func Port() string {
	return appconf.GetPort()
}

func StaticDir() string {
	return appconf.GetStaticDir()
}

func EnvFilePath() string {
	return appconf.GetEnvFilePath()
}

// Browser is an optional command line used instead of the platform default browser.
func Browser() string {
	return os.Getenv("LABELS_BROWSER")
}

func init() {
	Reload()
}

// Reload re-selects the environment from APP_ENV.
func Reload() {
	env := os.Getenv("APP_ENV")

	switch env {
	case "production":
		appconf = prodconf.New()
	case "development":
		appconf = devconf.New()
	default:
		appconf = devconf.New()
	}
}
