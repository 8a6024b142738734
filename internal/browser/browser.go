// Package browser opens URLs in the user's browser
package browser

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/mattn/go-shellwords"
	pkgbrowser "github.com/pkg/browser"
)

// ErrEmptyCommand is returned when a custom browser command has no words.
var ErrEmptyCommand = errors.New("browser command is empty")

// Opener launches a browser. When Command is set it is parsed as a shell
// command line and the URL is appended as the last argument; otherwise the
// platform default browser is used.
type Opener struct {
	Command string

	openDefault func(url string) error
	run         func(name string, args ...string) error
}

func NewOpener(command string) *Opener {
	return &Opener{
		Command:     command,
		openDefault: pkgbrowser.OpenURL,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

func (o *Opener) Open(url string) error {
	if o.Command == "" {
		return o.openDefault(url)
	}

	words, err := shellwords.Parse(o.Command)
	if err != nil {
		return fmt.Errorf("invalid browser command: %w", err)
	}
	if len(words) == 0 {
		return ErrEmptyCommand
	}

	args := append(words[1:], url)
	return o.run(words[0], args...)
}

// OpenAfter opens url once delay has passed, unless ctx is cancelled first.
// It returns immediately; failures are logged.
func (o *Opener) OpenAfter(ctx context.Context, url string, delay time.Duration) <-chan error {
	done := make(chan error, 1)

	go func() {
		defer close(done)

		select {
		case <-ctx.Done():
			done <- ctx.Err()
			return
		case <-time.After(delay):
		}

		if err := o.Open(url); err != nil {
			log.Warnf("failed to open browser: %s", err)
			done <- err
			return
		}
		done <- nil
	}()

	return done
}
