// internal/cmdutil/log.go
package cmdutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"cloudeng.io/logging/ctxlog"
)

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// WithLogger attaches a slog logger to ctx. Verbose runs log text records
// at debug level to dst; otherwise ctxlog's discard logger is used.
func WithLogger(ctx context.Context, dst io.Writer, verbose bool, name string) context.Context {
	if !verbose {
		return ctx
	}
	h := slog.NewTextHandler(dst, &slog.HandlerOptions{Level: slog.LevelDebug})
	return ctxlog.WithLogger(ctx, slog.New(h).With("cmd", name))
}
