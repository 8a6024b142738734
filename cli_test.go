package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"labelsmobile/version"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIApp_Name(t *testing.T) {
	app := newApp()

	if app.Name != "labelsmobile" {
		t.Errorf("expected app name 'labelsmobile', got %q", app.Name)
	}
}

func TestCLIApp_VersionFlag(t *testing.T) {
	app := newApp()

	if app.Version != version.Version {
		t.Errorf("expected version %q, got %q", version.Version, app.Version)
	}
}

func TestCLIApp_DefaultActionExists(t *testing.T) {
	app := newApp()

	// The default action (no subcommand) should be set
	if app.Action == nil {
		t.Error("expected default action to be set (starts the PWA server)")
	}
}

func TestCLIApp_VersionCommand(t *testing.T) {
	app := newApp()
	var buf bytes.Buffer
	app.Writer = &buf

	err := app.Run(context.Background(), []string{"labelsmobile", "version"})

	require.NoError(t, err)
	assert.Equal(t, "labelsmobile dev (unknown)\n", buf.String())
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer

	printBanner(&buf, "8080", "192.168.1.20")

	out := buf.String()
	assert.Contains(t, out, "http://localhost:8080")
	assert.Contains(t, out, "http://192.168.1.20:8080")
	assert.Contains(t, out, "Ctrl+C")
	assert.True(t, strings.HasSuffix(out, strings.Repeat("=", 60)+"\n"))
}
