// pkg/api/result_v1.go
package api

// ResultV1 is the stable JSON schema for one alignment run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	Cost      int     `json:"cost"`
	X         string  `json:"x"`
	Y         string  `json:"y"`
	TimeMS    float64 `json:"time_ms"`
	MemoryKB  int64   `json:"memory_kb"`
	Algorithm string  `json:"algorithm,omitempty"`
	LengthX   int     `json:"length_x,omitempty"`
	LengthY   int     `json:"length_y,omitempty"`
}
