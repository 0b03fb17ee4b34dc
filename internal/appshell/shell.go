// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ExitCanceled is returned when SIGINT/SIGTERM interrupts a run.
const ExitCanceled = 130

// RunFunc is the signature shared by every seqalign entry point.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main wires signals to a context, runs run, and exits with its code.
// An empty argv is passed through so the driver reports a usage error.
func Main(run RunFunc) {
	os.Exit(run.exec(os.Args[1:], os.Stdout, os.Stderr))
}

func (run RunFunc) exec(argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, argv, stdout, stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = ExitCanceled
	}
	return code
}
