// internal/output/record.go
package output

import (
	"time"

	"seqalign-core/align"

	"seqalign/pkg/api"
)

// Record is everything a run reports: the alignment plus how long it took
// and how much resident memory it added.
type Record struct {
	Algorithm string
	Result    align.Result
	Elapsed   time.Duration
	MemoryKB  int64
}

// Millis returns Elapsed in fractional milliseconds.
func (r Record) Millis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// ToAPI converts a Record to the stable wire schema (v1).
func ToAPI(r Record) api.ResultV1 {
	return api.ResultV1{
		Cost:      r.Result.Cost,
		X:         r.Result.X,
		Y:         r.Result.Y,
		TimeMS:    r.Millis(),
		MemoryKB:  r.MemoryKB,
		Algorithm: r.Algorithm,
		LengthX:   countSymbols(r.Result.X),
		LengthY:   countSymbols(r.Result.Y),
	}
}

func countSymbols(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] != align.Gap {
			n++
		}
	}
	return n
}
