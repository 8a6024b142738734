// Package production contains production configuration of the app
package production

import (
	"labelsmobile/config"
	"os"
	"path/filepath"
	"strings"
)

type prodconf struct{}

func New() config.AppConfiger {
	return prodconf{}
}

func (pc prodconf) GetPort() string {
	appPort := os.Getenv("LABELS_APP_PORT")
	if strings.TrimSpace(appPort) == "" {
		appPort = "8080"
	}
	return appPort
}

// GetStaticDir defaults to the directory holding the binary.
func (pc prodconf) GetStaticDir() string {
	dir := os.Getenv("LABELS_STATIC_DIR")
	if strings.TrimSpace(dir) == "" {
		dir = config.ExecutableDir()
	}
	return dir
}

func (pc prodconf) GetEnvFilePath() string {
	path := os.Getenv("LABELS_ENV_FILE")
	if strings.TrimSpace(path) == "" {
		path = filepath.Join(pc.GetStaticDir(), "..", ".env")
	}
	return path
}
