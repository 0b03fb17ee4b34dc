// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
)

// WriteJSON writes one v1 result object (pretty-indented).
func WriteJSON(w io.Writer, r Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPI(r))
}
