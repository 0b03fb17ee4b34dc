package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"seqalign-core/align"
)

// Options control the ASCII rendering.
type Options struct {
	// Columns per block. If <=0, use default (60).
	Width int

	// Glyphs for the match row
	ExactGlyph    string // identical symbols, default "|"
	PartialGlyph  string // transition (A/G or C/T), default "¦"
	MismatchGlyph string // transversion, default "."
}

// DefaultOptions is the stock look.
var DefaultOptions = Options{
	Width:         60,
	ExactGlyph:    "|",
	PartialGlyph:  "¦",
	MismatchGlyph: ".",
}

const linePrefix = "# "

func isPurine(b byte) bool { return b == 'A' || b == 'G' }

func isTransition(a, b byte) bool {
	return a != b && isPurine(a) == isPurine(b)
}

// Stats summarises the columns of an alignment.
type Stats struct {
	Columns     int
	Identical   int
	Transitions int
	Gaps        int
}

// Summarize counts identical, transition, and gap columns.
func Summarize(r align.Result) Stats {
	s := Stats{Columns: r.Len()}
	for i := 0; i < len(r.X) && i < len(r.Y); i++ {
		a, b := r.X[i], r.Y[i]
		switch {
		case a == align.Gap || b == align.Gap:
			s.Gaps++
		case a == b:
			s.Identical++
		case isTransition(a, b):
			s.Transitions++
		}
	}
	return s
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.ExactGlyph == "" {
		o.ExactGlyph = DefaultOptions.ExactGlyph
	}
	if o.PartialGlyph == "" {
		o.PartialGlyph = DefaultOptions.PartialGlyph
	}
	if o.MismatchGlyph == "" {
		o.MismatchGlyph = DefaultOptions.MismatchGlyph
	}
	return o
}

func (o Options) markRow(x, y string) string {
	var b strings.Builder
	for i := 0; i < len(x); i++ {
		a, c := x[i], y[i]
		switch {
		case a == align.Gap || c == align.Gap:
			b.WriteByte(' ')
		case a == c:
			b.WriteString(o.ExactGlyph)
		case isTransition(a, c):
			b.WriteString(o.PartialGlyph)
		default:
			b.WriteString(o.MismatchGlyph)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func symbols(s string) int {
	return len(s) - strings.Count(s, string(rune(align.Gap)))
}

// RenderAlignmentWithOptions draws a summary line followed by blocks of
// X / match row / Y with 1-based symbol coordinates.
func RenderAlignmentWithOptions(r align.Result, opt Options) string {
	opt = opt.withDefaults()
	var b strings.Builder

	st := Summarize(r)
	fmt.Fprintf(&b, "%scost: %d  identity: %d/%d", linePrefix, r.Cost, st.Identical, st.Columns)
	if st.Columns > 0 {
		fmt.Fprintf(&b, " (%.1f%%)", 100*float64(st.Identical)/float64(st.Columns))
	}
	fmt.Fprintf(&b, "  gaps: %d\n", st.Gaps)
	if len(r.X) != len(r.Y) {
		fmt.Fprintf(&b, "%s(pretty not available: aligned lengths differ)\n", linePrefix)
		return b.String()
	}

	w := len(strconv.Itoa(max(symbols(r.X), symbols(r.Y))))
	pad := strings.Repeat(" ", w+3)
	xi, yi := 0, 0
	for off := 0; off < len(r.X); off += opt.Width {
		end := min(off+opt.Width, len(r.X))
		xs, ys := r.X[off:end], r.Y[off:end]
		if off > 0 {
			b.WriteString(strings.TrimRight(linePrefix, " ") + "\n")
		}
		fmt.Fprintf(&b, "%sX %*d %s %d\n", linePrefix, w, xi+1, xs, xi+symbols(xs))
		if marks := opt.markRow(xs, ys); marks != "" {
			fmt.Fprintf(&b, "%s%s%s\n", linePrefix, pad, marks)
		} else {
			b.WriteString(strings.TrimRight(linePrefix, " ") + "\n")
		}
		fmt.Fprintf(&b, "%sY %*d %s %d\n", linePrefix, w, yi+1, ys, yi+symbols(ys))
		xi += symbols(xs)
		yi += symbols(ys)
	}
	return b.String()
}

// RenderAlignment uses DefaultOptions.
func RenderAlignment(r align.Result) string {
	return RenderAlignmentWithOptions(r, DefaultOptions)
}
