// core/costmodel/costmodel.go
package costmodel

import (
	"errors"
	"fmt"
)

// Symbols is the alphabet in index order.
const Symbols = "ACGT"

// DefaultGap is the linear gap penalty of the reference model.
const DefaultGap = 30

var code [256]int8

func init() {
	for i := range code {
		code[i] = -1
	}
	for i := 0; i < len(Symbols); i++ {
		code[Symbols[i]] = int8(i)
	}
}

// Index returns the table index of b and whether b is in the alphabet.
func Index(b byte) (int, bool) {
	c := code[b]
	return int(c), c >= 0
}

// Code is Index without the membership check. Non-alphabet bytes map to -1.
func Code(b byte) int { return int(code[b]) }

// Model is a linear gap penalty plus a substitution table indexed by
// symbol code (see Index).
type Model struct {
	Gap int
	Sub [4][4]int
}

// Default returns the reference cost model: gap 30 and the
// transition/transversion table used by default.
func Default() *Model {
	return &Model{
		Gap: DefaultGap,
		Sub: [4][4]int{
			//   A    C    G    T
			{0, 110, 48, 94},  // A
			{110, 0, 118, 48}, // C
			{48, 118, 0, 110}, // G
			{94, 48, 110, 0},  // T
		},
	}
}

// Delta returns the gap penalty.
func (m *Model) Delta() int { return m.Gap }

// Alpha returns the substitution cost of aligning a against b. Both must be
// alphabet symbols; callers validate sequences before aligning.
func (m *Model) Alpha(a, b byte) int {
	return m.Sub[code[a]][code[b]]
}

// Validate reports whether the model satisfies the invariants the aligners
// rely on: non-negative costs and a zero diagonal. Symmetry is not required.
func (m *Model) Validate() error {
	if m == nil {
		return errors.New("nil cost model")
	}
	if m.Gap < 0 {
		return fmt.Errorf("gap penalty must be ≥ 0, got %d", m.Gap)
	}
	for i := 0; i < len(Symbols); i++ {
		for j := 0; j < len(Symbols); j++ {
			v := m.Sub[i][j]
			if v < 0 {
				return fmt.Errorf("substitution %c-%c must be ≥ 0, got %d", Symbols[i], Symbols[j], v)
			}
			if i == j && v != 0 {
				return fmt.Errorf("substitution %c-%c must be 0, got %d", Symbols[i], Symbols[j], v)
			}
		}
	}
	return nil
}

// Symmetric reports whether Alpha(a,b) == Alpha(b,a) for every pair.
func (m *Model) Symmetric() bool {
	for i := 0; i < len(Symbols); i++ {
		for j := i + 1; j < len(Symbols); j++ {
			if m.Sub[i][j] != m.Sub[j][i] {
				return false
			}
		}
	}
	return true
}
