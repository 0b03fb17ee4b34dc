// core/align/profile.go
package align

import (
	"context"
	"sync"

	"seqalign-core/costmodel"
)

// checkEvery is how many DP rows run between context checks.
const checkEvery = 256

// rowPool recycles profile rows so each recursion level reuses the
// buffers of the level before it.
type rowPool struct{ p sync.Pool }

func (rp *rowPool) get(n int) []int {
	if v, ok := rp.p.Get().(*[]int); ok && cap(*v) >= n {
		return (*v)[:n]
	}
	return make([]int, n)
}

func (rp *rowPool) put(r []int) { rp.p.Put(&r) }

// forwardProfile returns row[j] = min cost of aligning all of x with y[:j].
// prev and curr must hold len(y)+1 ints; the result aliases one of them.
func forwardProfile(ctx context.Context, x, y string, m *costmodel.Model, prev, curr []int) ([]int, error) {
	n, gap := len(y), m.Gap
	for j := 0; j <= n; j++ {
		prev[j] = j * gap
	}
	for i := 1; i <= len(x); i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		sub := &m.Sub[costmodel.Code(x[i-1])]
		curr[0] = prev[0] + gap
		for j := 1; j <= n; j++ {
			curr[j] = min(prev[j]+gap, curr[j-1]+gap, prev[j-1]+sub[costmodel.Code(y[j-1])])
		}
		prev, curr = curr, prev
	}
	return prev, nil
}

// reverseProfile is forwardProfile over reverse(x) and reverse(y): row[j] is
// the min cost of aligning all of x with the last j symbols of y. The
// reversal is done by indexing, no reversed copies are made.
func reverseProfile(ctx context.Context, x, y string, m *costmodel.Model, prev, curr []int) ([]int, error) {
	n, gap := len(y), m.Gap
	for j := 0; j <= n; j++ {
		prev[j] = j * gap
	}
	for i := 1; i <= len(x); i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		sub := &m.Sub[costmodel.Code(x[len(x)-i])]
		curr[0] = prev[0] + gap
		for j := 1; j <= n; j++ {
			curr[j] = min(prev[j]+gap, curr[j-1]+gap, prev[j-1]+sub[costmodel.Code(y[n-j])])
		}
		prev, curr = curr, prev
	}
	return prev, nil
}
