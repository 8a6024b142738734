// Package development contains development configuration of the app
package development

import (
	"labelsmobile/config"
	"os"
	"path/filepath"
	"strings"
)

type devconf struct{}

func New() config.AppConfiger {
	return devconf{}
}

func (dc devconf) GetPort() string {
	appPort := os.Getenv("LABELS_APP_PORT")
	if strings.TrimSpace(appPort) == "" {
		appPort = "8080"
	}
	return appPort
}

// GetStaticDir defaults to the directory holding the binary.
func (dc devconf) GetStaticDir() string {
	dir := os.Getenv("LABELS_STATIC_DIR")
	if strings.TrimSpace(dir) == "" {
		dir = config.ExecutableDir()
	}
	return dir
}

func (dc devconf) GetEnvFilePath() string {
	path := os.Getenv("LABELS_ENV_FILE")
	if strings.TrimSpace(path) == "" {
		path = filepath.Join(dc.GetStaticDir(), "..", ".env")
	}
	return path
}
