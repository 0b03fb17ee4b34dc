// core/align/result.go
package align

import (
	"fmt"

	"seqalign-core/costmodel"
)

// Gap is the gap marker used in aligned strings.
const Gap = '_'

// Result is an optimal cost and one alignment that realises it.
type Result struct {
	Cost int
	X    string
	Y    string
}

// Len returns the number of alignment columns.
func (r Result) Len() int { return len(r.X) }

// Score recomputes the cost of the alignment column by column: delta for a
// gap column, alpha(a,b) otherwise. It assumes the alignment is well formed.
func (r Result) Score(m *costmodel.Model) int {
	total := 0
	for i := 0; i < len(r.X) && i < len(r.Y); i++ {
		a, b := r.X[i], r.Y[i]
		if a == Gap || b == Gap {
			total += m.Gap
			continue
		}
		total += m.Alpha(a, b)
	}
	return total
}

// Validate checks that r is an alignment of x against y: equal lengths, no
// all-gap column, and removing gaps reproduces each input.
func (r Result) Validate(x, y string) error {
	if len(r.X) != len(r.Y) {
		return fmt.Errorf("aligned lengths differ: %d vs %d", len(r.X), len(r.Y))
	}
	for i := 0; i < len(r.X); i++ {
		if r.X[i] == Gap && r.Y[i] == Gap {
			return fmt.Errorf("column %d is a gap on both sides", i)
		}
	}
	if got := degap(r.X); got != x {
		return fmt.Errorf("aligned X does not reproduce input: %q vs %q", got, x)
	}
	if got := degap(r.Y); got != y {
		return fmt.Errorf("aligned Y does not reproduce input: %q vs %q", got, y)
	}
	return nil
}

func degap(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != Gap {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func appendGaps(dst []byte, n int) []byte {
	for ; n > 0; n-- {
		dst = append(dst, Gap)
	}
	return dst
}
