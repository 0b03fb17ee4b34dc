package expand

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDouble(t *testing.T) {
	cases := []struct {
		in   string
		idx  int
		want string
	}{
		{"AC", 0, "AACC"},
		{"AC", 1, "ACAC"},
		{"AACC", 2, "AACAACCC"},
		{"AACC", 3, "AACCAACC"},
		{"T", 0, "TT"},
	}
	for _, c := range cases {
		got, err := Double(c.in, c.idx)
		require.NoError(t, err)
		if got != c.want {
			t.Errorf("Double(%q,%d)=%q want %q", c.in, c.idx, got, c.want)
		}
	}

	for _, idx := range []int{-1, 2, 10} {
		_, err := Double("AC", idx)
		require.ErrorIs(t, err, ErrIndexRange)
	}
}

func TestExpand(t *testing.T) {
	t.Run("single index", func(t *testing.T) {
		got, err := Expand(Spec{Base: "AC", Indices: []int{0}})
		require.NoError(t, err)
		require.Equal(t, "AACC", got)
	})
	t.Run("two indices", func(t *testing.T) {
		got, err := Expand(Spec{Base: "AC", Indices: []int{0, 3}})
		require.NoError(t, err)
		require.Equal(t, "AACCAACC", got)
		require.Len(t, got, 2*4)
	})
	t.Run("zero indices passthrough", func(t *testing.T) {
		got, err := Expand(Spec{Base: "GATTACA"})
		require.NoError(t, err)
		require.Equal(t, "GATTACA", got)
	})
	t.Run("bad base", func(t *testing.T) {
		_, err := Expand(Spec{Base: "ACGN"})
		require.ErrorIs(t, err, ErrBadBase)
	})
	t.Run("index out of range", func(t *testing.T) {
		_, err := Expand(Spec{Base: "AC", Indices: []int{0, 4}})
		require.ErrorIs(t, err, ErrIndexRange)
	})
	t.Run("too long", func(t *testing.T) {
		_, err := Expand(Spec{Base: "ACGT", Indices: make([]int, 40)})
		require.ErrorIs(t, err, ErrTooLong)
	})
}

func TestVerifyLengthMismatch(t *testing.T) {
	spec := Spec{Base: "AC", Indices: []int{0}}
	require.NoError(t, Verify(spec, "AACC"))

	err := Verify(spec, "AACCA")
	require.ErrorIs(t, err, ErrLengthMismatch)
	require.Contains(t, err.Error(), "got 5, want 4")

	require.ErrorIs(t, Verify(Spec{Base: "ACGT"}, "ACG"), ErrLengthMismatch)
}

func TestParse(t *testing.T) {
	in := `ACTG
3
6
1
TACG
1
2
9
`
	p, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, "ACTG", p.Specs[0].Base)
	require.Equal(t, []int{3, 6, 1}, p.Specs[0].Indices)
	require.Equal(t, []int{1, 2, 9}, p.Specs[1].Indices)
	require.Len(t, p.X, 4*8)
	require.Len(t, p.Y, 4*8)

	step, err := Double("ACTG", 3)
	require.NoError(t, err)
	require.Equal(t, "ACTGACTG", step)

	want := "ACTG"
	for _, idx := range []int{3, 6, 1} {
		want = want[:idx+1] + want + want[idx+1:]
	}
	require.Equal(t, want, p.X)
}

func TestParseTolerance(t *testing.T) {
	in := "\n  AC  trailing words\n\n0\nGT\r\n"
	p, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, "AACC", p.X)
	require.Equal(t, "GT", p.Y)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
		line int
		msg  string
	}{
		{"bad base", "ACGX\n0\nAC\n", ErrBadBase, 1, `but "ACGX" was given`},
		{"lowercase", "acgt\nAC\n", ErrBadBase, 1, `"acgt"`},
		{"bad index", "AC\n1x\nGT\n", ErrBadIndex, 2, `expected a numerical index, but "1x" was given`},
		{"negative index", "AC\n-1\nGT\n", ErrBadIndex, 2, `"-1"`},
		{"orphan index", "0\nAC\nGT\n", ErrOrphanIndex, 1, "before any base"},
		{"one sequence", "AC\n0\n", ErrSequenceCount, 0, "found 1"},
		{"three sequences", "AC\nGT\nCC\n", ErrSequenceCount, 0, "found 3"},
		{"empty", "", ErrSequenceCount, 0, "found 0"},
		{"range", "AC\n5\nGT\n", ErrIndexRange, 0, "sequence 1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
			var ie *InputError
			require.True(t, errors.As(err, &ie))
			require.Equal(t, tc.line, ie.Line)
			require.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(good, []byte("AC\n0\nG\n"), 0o644))
	p, err := ParseFile(good)
	require.NoError(t, err)
	require.Equal(t, "AACC", p.X)
	require.Equal(t, "G", p.Y)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("AC\nzz9\nG\n"), 0o644))
	_, err = ParseFile(bad)
	require.ErrorIs(t, err, ErrBadIndex)
	require.True(t, strings.HasPrefix(err.Error(), bad+":2: "), err.Error())

	_, err = ParseFile(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
