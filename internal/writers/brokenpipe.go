// internal/writers/brokenpipe.go
package writers

import (
	"bufio"
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means stdout's reader went away, as when
// the --pretty block is piped into `head`. The driver treats that as success.
func IsBrokenPipe(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, syscall.EPIPE), errors.Is(err, io.ErrClosedPipe):
		return true
	}
	return false
}

// FlushQuiet flushes w and swallows broken-pipe errors.
func FlushQuiet(w *bufio.Writer) error {
	if err := w.Flush(); err != nil && !IsBrokenPipe(err) {
		return err
	}
	return nil
}
