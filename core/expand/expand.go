// core/expand/expand.go
package expand

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"seqalign-core/costmodel"
)

// MaxLength caps the length of an expanded sequence.
const MaxLength = 1 << 30

var (
	ErrBadBase        = errors.New("base string should contain only A, C, G, T")
	ErrBadIndex       = errors.New("expected a numerical index")
	ErrIndexRange     = errors.New("index out of range")
	ErrOrphanIndex    = errors.New("index before any base string")
	ErrLengthMismatch = errors.New("expanded length mismatch")
	ErrTooLong        = errors.New("expanded sequence too long")
	ErrSequenceCount  = errors.New("exactly two base strings are required")
)

// InputError locates a problem in the compact input notation.
type InputError struct {
	Path  string
	Line  int
	Token string
	Err   error
}

func (e *InputError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteByte(':')
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, "%d: ", e.Line)
	} else if e.Path != "" {
		b.WriteByte(' ')
	}
	b.WriteString(e.Err.Error())
	if e.Token != "" {
		fmt.Fprintf(&b, ", but %q was given", e.Token)
	}
	return b.String()
}

func (e *InputError) Unwrap() error { return e.Err }

// Spec is one base string together with its doubling indices.
type Spec struct {
	Base    string
	Indices []int
}

// Expected returns len(Base) * 2^len(Indices), or -1 if that exceeds MaxLength.
func (s Spec) Expected() int {
	n := len(s.Base)
	for range s.Indices {
		if n > MaxLength/2 {
			return -1
		}
		n *= 2
	}
	return n
}

// Pair is the decoded input: two specs and their expansions.
type Pair struct {
	Specs [2]Spec
	X, Y  string
}

// Double inserts a copy of s immediately after position idx. idx must
// name a position of s: an index at or past the end is ErrIndexRange rather
// than being clamped to an append, since it always points at a typo in the
// input.
func Double(s string, idx int) (string, error) {
	if idx < 0 || idx >= len(s) {
		return "", fmt.Errorf("%w: %d not in [0,%d)", ErrIndexRange, idx, len(s))
	}
	var b strings.Builder
	b.Grow(2 * len(s))
	b.WriteString(s[:idx+1])
	b.WriteString(s)
	b.WriteString(s[idx+1:])
	return b.String(), nil
}

// Expand applies every index of spec in order and verifies the final length.
func Expand(spec Spec) (string, error) {
	if err := ValidateBase(spec.Base); err != nil {
		return "", err
	}
	if spec.Expected() < 0 {
		return "", ErrTooLong
	}
	s := spec.Base
	for _, idx := range spec.Indices {
		var err error
		if s, err = Double(s, idx); err != nil {
			return "", err
		}
	}
	if err := Verify(spec, s); err != nil {
		return "", err
	}
	return s, nil
}

// Verify checks that got has the length implied by spec.
func Verify(spec Spec, got string) error {
	if want := spec.Expected(); len(got) != want {
		return fmt.Errorf("%w: got %d, want %d (%d × 2^%d)",
			ErrLengthMismatch, len(got), want, len(spec.Base), len(spec.Indices))
	}
	return nil
}

// ValidateBase rejects anything other than the four alphabet symbols.
func ValidateBase(base string) error {
	for i := 0; i < len(base); i++ {
		if _, ok := costmodel.Index(base[i]); !ok {
			return ErrBadBase
		}
	}
	return nil
}

// classify reports whether tok is a base string (all letters) and, if not,
// parses it as an index.
func classify(tok string) (isBase bool, idx int, err error) {
	letters := true
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			letters = false
			break
		}
	}
	if letters {
		return true, 0, ValidateBase(tok)
	}
	n, perr := strconv.Atoi(tok)
	if perr != nil || n < 0 {
		return false, 0, ErrBadIndex
	}
	return false, n, nil
}

// ParseSpecs reads the compact notation: one token per non-blank line,
// letters start a new base string, integers append an index to the
// current one.
func ParseSpecs(r io.Reader) ([]Spec, error) {
	var specs []Spec
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		f := strings.Fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		tok := f[0]
		isBase, idx, err := classify(tok)
		if err != nil {
			return nil, &InputError{Line: ln, Token: tok, Err: err}
		}
		if isBase {
			specs = append(specs, Spec{Base: tok})
			continue
		}
		if len(specs) == 0 {
			return nil, &InputError{Line: ln, Token: tok, Err: ErrOrphanIndex}
		}
		cur := &specs[len(specs)-1]
		cur.Indices = append(cur.Indices, idx)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return specs, nil
}

// Parse decodes the input and expands both sequences.
func Parse(r io.Reader) (Pair, error) {
	var p Pair
	specs, err := ParseSpecs(r)
	if err != nil {
		return p, err
	}
	if len(specs) != 2 {
		return p, &InputError{Err: fmt.Errorf("%w, found %d", ErrSequenceCount, len(specs))}
	}
	out := [2]string{}
	for i, s := range specs {
		exp, err := Expand(s)
		if err != nil {
			return p, &InputError{Err: fmt.Errorf("sequence %d: %w", i+1, err)}
		}
		out[i] = exp
	}
	p.Specs = [2]Spec{specs[0], specs[1]}
	p.X, p.Y = out[0], out[1]
	return p, nil
}

// ParseFile is Parse on the named file. Input errors carry the path.
func ParseFile(path string) (Pair, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Pair{}, err
	}
	defer fh.Close()
	p, err := Parse(fh)
	var ie *InputError
	if errors.As(err, &ie) {
		ie.Path = path
	}
	return p, err
}
