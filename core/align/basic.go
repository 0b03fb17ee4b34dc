// core/align/basic.go
package align

import (
	"context"
	"slices"

	"seqalign-core/costmodel"
)

// Table returns the full cost table: t[i][j] is the minimum cost of
// aligning x[:i] with y[:j].
func Table(x, y string, m *costmodel.Model) [][]int {
	t, _ := fillTable(context.Background(), x, y, m)
	return t
}

// fillTable builds the (len(x)+1)×(len(y)+1) table in one allocation.
func fillTable(ctx context.Context, x, y string, m *costmodel.Model) ([][]int, error) {
	rows, cols := len(x)+1, len(y)+1
	gap := m.Gap
	cells := make([]int, rows*cols)
	t := make([][]int, rows)
	for i := range t {
		t[i] = cells[i*cols : (i+1)*cols : (i+1)*cols]
		t[i][0] = i * gap
	}
	for j := 1; j < cols; j++ {
		t[0][j] = j * gap
	}
	for i := 1; i < rows; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		sub := &m.Sub[costmodel.Code(x[i-1])]
		up, row := t[i-1], t[i]
		for j := 1; j < cols; j++ {
			row[j] = min(up[j]+gap, row[j-1]+gap, up[j-1]+sub[costmodel.Code(y[j-1])])
		}
	}
	return t, nil
}

// backtrack walks t from (len(x), len(y)) to (0, 0) and appends the
// alignment to dx/dy in left-to-right order. Ties prefer the diagonal, then
// consuming x against a gap, then consuming y against a gap.
func backtrack(t [][]int, x, y string, m *costmodel.Model, dx, dy []byte) ([]byte, []byte) {
	sx, sy := len(dx), len(dy)
	i, j := len(x), len(y)
	for i > 0 && j > 0 {
		s := t[i][j]
		switch {
		case t[i-1][j-1]+m.Alpha(x[i-1], y[j-1]) == s:
			dx = append(dx, x[i-1])
			dy = append(dy, y[j-1])
			i--
			j--
		case t[i-1][j]+m.Gap == s:
			dx = append(dx, x[i-1])
			dy = append(dy, Gap)
			i--
		default:
			dx = append(dx, Gap)
			dy = append(dy, y[j-1])
			j--
		}
	}
	for ; i > 0; i-- {
		dx = append(dx, x[i-1])
		dy = append(dy, Gap)
	}
	for ; j > 0; j-- {
		dx = append(dx, Gap)
		dy = append(dy, y[j-1])
	}
	// emitted right-to-left
	slices.Reverse(dx[sx:])
	slices.Reverse(dy[sy:])
	return dx, dy
}

// basicInto aligns x against y with the full table and appends the result.
func basicInto(ctx context.Context, x, y string, m *costmodel.Model, dx, dy []byte) (int, []byte, []byte, error) {
	t, err := fillTable(ctx, x, y, m)
	if err != nil {
		return 0, dx, dy, err
	}
	dx, dy = backtrack(t, x, y, m, dx, dy)
	return t[len(x)][len(y)], dx, dy, nil
}
