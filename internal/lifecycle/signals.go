// Package lifecycle stops the servers on Ctrl+C or SIGTERM
package lifecycle

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// WatchSignals calls cancel on the first shutdown signal, after which the
// server prints its stop message and returns. The returned stop releases the
// handler and may be called more than once.
func WatchSignals(cancel context.CancelFunc) (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, shutdownSignals...)
	done := make(chan struct{})

	go func() {
		select {
		case <-sigs:
			cancel()
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigs)
			close(done)
		})
	}
}
