// core/align/efficient.go
package align

import (
	"context"

	"golang.org/x/sync/errgroup"

	"seqalign-core/costmodel"
)

// parallelMinCells is the smallest half-problem (rows × cols) for which
// the two profiles are computed on separate goroutines.
const parallelMinCells = 1 << 16

// hirschberg appends an optimal alignment of x against y to dx/dy and
// returns its cost.
func (a *Aligner) hirschberg(ctx context.Context, x, y string, dx, dy []byte) (int, []byte, []byte, error) {
	m, n := len(x), len(y)
	gap := a.model.Gap
	switch {
	case m == 0 && n == 0:
		return 0, dx, dy, nil
	case m == 0:
		return n * gap, appendGaps(dx, n), append(dy, y...), nil
	case n == 0:
		return m * gap, append(dx, x...), appendGaps(dy, m), nil
	case m == 1 && n == 1:
		// A single pair is only optimal while it beats two gap columns.
		if c := a.model.Alpha(x[0], y[0]); c <= 2*gap {
			return c, append(dx, x[0]), append(dy, y[0]), nil
		}
		return basicInto(ctx, x, y, a.model, dx, dy)
	case m == 1, m*n <= a.cfg.BaseCutoff:
		return basicInto(ctx, x, y, a.model, dx, dy)
	}
	if err := ctx.Err(); err != nil {
		return 0, dx, dy, err
	}

	mid := m / 2
	xl, xr := x[:mid], x[mid:]
	k, score, err := a.split(ctx, xl, xr, y)
	if err != nil {
		return 0, dx, dy, err
	}
	if _, dx, dy, err = a.hirschberg(ctx, xl, y[:k], dx, dy); err != nil {
		return 0, dx, dy, err
	}
	if _, dx, dy, err = a.hirschberg(ctx, xr, y[k:], dx, dy); err != nil {
		return 0, dx, dy, err
	}
	return score, dx, dy, nil
}

// split returns the first k in [0, len(y)] minimising
// cost(xl, y[:k]) + cost(xr, y[k:]) together with that minimum. All row
// buffers go back to the pool before it returns.
func (a *Aligner) split(ctx context.Context, xl, xr string, y string) (int, int, error) {
	n := len(y)
	var bufs [4][]int
	for i := range bufs {
		bufs[i] = a.rows.get(n + 1)
	}
	defer func() {
		for _, b := range bufs {
			a.rows.put(b)
		}
	}()

	var left, right []int
	if a.cfg.Parallel && len(xr)*n >= parallelMinCells {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			left, err = forwardProfile(gctx, xl, y, a.model, bufs[0], bufs[1])
			return err
		})
		g.Go(func() (err error) {
			right, err = reverseProfile(gctx, xr, y, a.model, bufs[2], bufs[3])
			return err
		})
		if err := g.Wait(); err != nil {
			return 0, 0, err
		}
	} else {
		var err error
		if left, err = forwardProfile(ctx, xl, y, a.model, bufs[0], bufs[1]); err != nil {
			return 0, 0, err
		}
		if right, err = reverseProfile(ctx, xr, y, a.model, bufs[2], bufs[3]); err != nil {
			return 0, 0, err
		}
	}

	k, best := 0, left[0]+right[n]
	for j := 1; j <= n; j++ {
		if s := left[j] + right[n-j]; s < best {
			k, best = j, s
		}
	}
	return k, best, nil
}

// Efficient is Aligner.Efficient with the given model and default options.
func Efficient(x, y string, m *costmodel.Model) Result {
	r, _ := New(Config{Model: m}).Efficient(context.Background(), x, y)
	return r
}
