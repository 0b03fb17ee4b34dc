// internal/output/text.go
package output

import (
	"bufio"
	"io"
	"strconv"
)

// WriteText prints the five-line report: cost, aligned X, aligned Y,
// elapsed milliseconds, memory delta in KiB.
func WriteText(w io.Writer, r Record) error {
	bw := bufio.NewWriter(w)
	lines := []string{
		strconv.Itoa(r.Result.Cost),
		r.Result.X,
		r.Result.Y,
		strconv.FormatFloat(r.Millis(), 'f', -1, 64),
		strconv.FormatInt(r.MemoryKB, 10),
	}
	for _, l := range lines {
		if _, err := bw.WriteString(l); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
