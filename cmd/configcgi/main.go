// Command configcgi is a CGI program that publishes the Supabase client
// configuration read from the project's .env file.
package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/log"
)

func main() {
	// stdout carries the CGI response.
	log.SetOutput(os.Stderr)

	os.Exit(run(context.Background(), os.Getenv, os.Stdout, envFilePath()))
}

// envFilePath honours LABELS_ENV_FILE, otherwise the project root two
// levels above the directory holding this program.
func envFilePath() string {
	if path := os.Getenv("LABELS_ENV_FILE"); strings.TrimSpace(path) != "" {
		return path
	}

	dir := "."
	if exe, err := os.Executable(); err == nil {
		dir = filepath.Dir(exe)
	}
	return filepath.Join(dir, "..", "..", ".env")
}
