// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"seqalign-core/align"

	"seqalign/internal/cliutil"
	"seqalign/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Engine
	Algorithm  string
	CostsFile  string
	Parallel   bool
	BaseCutoff int

	// Output
	Format  string
	Pretty  bool
	Verbose bool

	// Positionals
	Input  string
	Output string

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: global DNA sequence alignment

Version: %s

Usage of %s:
  %s [flags] <input> <output>

`, name, version.Version, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// A non-empty fixedAlgorithm pins the engine and hides --algorithm.
func ParseArgs(fs *flag.FlagSet, argv []string, fixedAlgorithm string) (Options, error) {
	var opt Options
	var help bool

	if fixedAlgorithm == "" {
		fs.StringVar(&opt.Algorithm, "algorithm", align.NameEfficient, "aligner: basic | efficient ["+align.NameEfficient+"]")
	}
	fs.StringVar(&opt.CostsFile, "costs", "", "YAML cost model (gap + substitution table) [built-in]")
	fs.BoolVar(&opt.Parallel, "parallel", false, "compute forward/reverse profiles concurrently [false]")
	fs.IntVar(&opt.BaseCutoff, "base-cutoff", 0, "solve sub-problems with at most N cells directly (0 = single-symbol rule) [0]")

	fs.StringVar(&opt.Format, "format", "text", "output format: text | json [text]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "print an ASCII alignment block to stdout [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "structured diagnostics on stderr [false]")
	fs.BoolVar(&opt.Verbose, "v", false, "structured diagnostics on stderr (shorthand) [false]")

	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, pos := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if fixedAlgorithm != "" {
		opt.Algorithm = fixedAlgorithm
	}

	// Validation
	pos = append(pos, fs.Args()...)
	if len(pos) != 2 {
		return opt, fmt.Errorf("want exactly 2 arguments <input> <output>, got %d", len(pos))
	}
	opt.Input, opt.Output = pos[0], pos[1]
	if opt.Input == "" || opt.Output == "" {
		return opt, errors.New("input and output paths must be non-empty")
	}
	if opt.Algorithm != align.NameBasic && opt.Algorithm != align.NameEfficient {
		return opt, fmt.Errorf("invalid --algorithm %q", opt.Algorithm)
	}
	if opt.Format != "text" && opt.Format != "json" {
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	if opt.BaseCutoff < 0 {
		return opt, errors.New("--base-cutoff must be ≥ 0")
	}
	return opt, nil
}
