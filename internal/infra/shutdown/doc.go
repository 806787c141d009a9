// Package shutdown provides signal-driven cancellation for cipherkit.
//
// Usage:
//
//	ctx, stop := shutdown.WithSignals(context.Background())
//	defer stop()
//	app.RunContext(ctx, os.Args)
//
// Blocking operations observe ctx and return ErrInterrupted after SIGINT
// or SIGTERM.
package shutdown
