// Package shutdown provides signal-driven cancellation.
package shutdown

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

// ErrInterrupted is reported when a signal cancelled the run.
var ErrInterrupted = errors.New("interrupted")

// Signals are the signals that cancel the context returned by WithSignals.
var Signals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// WithSignals returns a context cancelled on the first SIGINT or SIGTERM.
// Calling stop restores default signal handling, so a second signal
// terminates the process.
func WithSignals(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent, Signals...)
}

// Err maps a cancelled context to ErrInterrupted and returns nil otherwise.
func Err(ctx context.Context) error {
	if ctx.Err() != nil {
		return ErrInterrupted
	}
	return nil
}
