// core/align/aligner.go
package align

import (
	"context"
	"fmt"
	"sort"

	"seqalign-core/costmodel"
)

// Algorithm names accepted by ByName.
const (
	NameBasic     = "basic"
	NameEfficient = "efficient"
)

// Config holds aligner parameters.
type Config struct {
	Model *costmodel.Model // nil = costmodel.Default()

	// Parallel computes the forward and reverse profiles of large
	// sub-problems concurrently. Results are unchanged.
	Parallel bool

	// BaseCutoff sends Efficient sub-problems with len(x)*len(y) <= BaseCutoff
	// to the full-table aligner. 0 keeps only the single-symbol base case.
	BaseCutoff int
}

// Aligner runs either engine over a fixed cost model. It is safe for
// concurrent use.
type Aligner struct {
	cfg   Config
	model *costmodel.Model
	rows  rowPool
}

// New creates an Aligner.
func New(c Config) *Aligner {
	m := c.Model
	if m == nil {
		m = costmodel.Default()
	}
	if c.BaseCutoff < 0 {
		c.BaseCutoff = 0
	}
	return &Aligner{cfg: c, model: m}
}

// Model returns the cost model in use.
func (a *Aligner) Model() *costmodel.Model { return a.model }

// Basic aligns x against y using the full cost table: O(len(x)·len(y))
// time and memory. The only error is ctx's.
func (a *Aligner) Basic(ctx context.Context, x, y string) (Result, error) {
	dx := make([]byte, 0, len(x)+len(y))
	dy := make([]byte, 0, len(x)+len(y))
	cost, dx, dy, err := basicInto(ctx, x, y, a.model, dx, dy)
	if err != nil {
		return Result{}, err
	}
	return Result{Cost: cost, X: string(dx), Y: string(dy)}, nil
}

// Efficient aligns x against y with Hirschberg's divide and conquer:
// O(len(x)·len(y)) time, O(len(x)+len(y)) auxiliary memory. The cost always
// equals Basic's. The only error is ctx's.
func (a *Aligner) Efficient(ctx context.Context, x, y string) (Result, error) {
	dx := make([]byte, 0, len(x)+len(y))
	dy := make([]byte, 0, len(x)+len(y))
	cost, dx, dy, err := a.hirschberg(ctx, x, y, dx, dy)
	if err != nil {
		return Result{}, err
	}
	return Result{Cost: cost, X: string(dx), Y: string(dy)}, nil
}

// Func is the signature shared by both engines.
type Func func(ctx context.Context, x, y string) (Result, error)

// ByName returns the engine registered under name.
func (a *Aligner) ByName(name string) (Func, error) {
	switch name {
	case NameBasic:
		return a.Basic, nil
	case NameEfficient:
		return a.Efficient, nil
	}
	return nil, fmt.Errorf("unknown algorithm %q (want one of %v)", name, Names())
}

// Names lists the registered engines in sorted order.
func Names() []string {
	n := []string{NameBasic, NameEfficient}
	sort.Strings(n)
	return n
}

// Basic is Aligner.Basic with the given model.
func Basic(x, y string, m *costmodel.Model) Result {
	r, _ := New(Config{Model: m}).Basic(context.Background(), x, y)
	return r
}
