// internal/cmdutil/measure.go
package cmdutil

import (
	"context"
	"time"

	"seqalign/internal/memstat"
)

// Measurement is the wall time and resident-set delta of one call.
type Measurement struct {
	Elapsed  time.Duration
	MemoryKB int64
}

// Measure runs fn and reports how long it took and how much resident
// memory it added. Only fn itself is inside the window.
func Measure[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, Measurement, error) {
	before := memstat.Now()
	start := time.Now()
	out, err := fn(ctx)
	elapsed := time.Since(start)
	after := memstat.Now()
	return out, Measurement{Elapsed: elapsed, MemoryKB: memstat.DeltaKB(before, after)}, err
}
