// Package config holds details like routing and other configs for the app
package config

import (
	"os"
	"path/filepath"
)

type AppConfiger interface {
	GetPort() string
	GetStaticDir() string
	GetEnvFilePath() string
}

// ExecutableDir is the directory holding the running binary, or "." when it
// cannot be determined.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
