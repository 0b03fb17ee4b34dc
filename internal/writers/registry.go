// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"seqalign/internal/output"
)

// WriteFunc renders one run report.
type WriteFunc func(w io.Writer, r output.Record) error

// Formats maps a --format value to its writer. Register in init() blocks.
var Formats = map[string]WriteFunc{}

// Register adds or replaces (last wins) the writer for format.
func Register(format string, fn WriteFunc) { Formats[format] = fn }

func init() {
	Register("text", output.WriteText)
	Register("json", output.WriteJSON)
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, r output.Record) error {
	fn, ok := Formats[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, r)
}

// Names lists registered formats in sorted order.
func Names() []string {
	out := make([]string, 0, len(Formats))
	for k := range Formats {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
