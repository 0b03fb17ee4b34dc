// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"

	"cloudeng.io/logging/ctxlog"
	"github.com/dustin/go-humanize"

	"seqalign-core/align"
	"seqalign-core/costmodel"
	"seqalign-core/expand"

	"seqalign/internal/cli"
	"seqalign/internal/cmdutil"
	"seqalign/internal/output"
	"seqalign/internal/pretty"
	"seqalign/internal/version"
	"seqalign/internal/writers"
)

// Exit codes shared by every seqalign binary.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitIO       = 3
	ExitInput    = 4
	ExitCanceled = 130
)

// RunContext is the seqalign entry point; --algorithm picks the engine.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return run(ctx, "seqalign", "", argv, stdout, stderr)
}

// BasicContext is seqalign-basic: the full-table aligner only.
func BasicContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return run(ctx, "seqalign-basic", align.NameBasic, argv, stdout, stderr)
}

// EfficientContext is seqalign-efficient: the linear-space aligner only.
func EfficientContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return run(ctx, "seqalign-efficient", align.NameEfficient, argv, stdout, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func errorf(stderr io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(stderr, "error: "+format+"\n", a...)
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := writers.FlushQuiet(outw); err != nil {
		errorf(stderr, "%v", err)
		return ExitIO
	}
	return code
}

func run(parent context.Context, name, fixed string, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fset := cli.NewFlagSet(name)
	fset.SetOutput(io.Discard)
	opts, err := cli.ParseArgs(fset, argv, fixed)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fset.SetOutput(outw)
			fset.Usage()
			return flushCode(outw, stderr, ExitOK)
		}
		errorf(stderr, "%v", err)
		fset.SetOutput(stderr)
		fset.Usage()
		return ExitUsage
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flushCode(outw, stderr, ExitOK)
	}

	ctx := cmdutil.WithLogger(parent, stderr, opts.Verbose, name)
	log := ctxlog.Logger(ctx)

	model := costmodel.Default()
	if opts.CostsFile != "" {
		model, err = costmodel.LoadFile(opts.CostsFile)
		if err != nil {
			errorf(stderr, "cost model: %v", err)
			if errors.As(err, new(*fs.PathError)) {
				return ExitIO
			}
			return ExitUsage
		}
		if !model.Symmetric() {
			cmdutil.Warnf(stderr, false, "cost model %s is asymmetric; swapping the inputs may change the cost", opts.CostsFile)
		}
		log.Debug("cost model loaded", "path", opts.CostsFile, "gap", model.Gap)
	}

	pair, err := expand.ParseFile(opts.Input)
	if err != nil {
		errorf(stderr, "%v", err)
		var ie *expand.InputError
		if errors.As(err, &ie) {
			return ExitInput
		}
		return ExitIO
	}
	log.Debug("input expanded",
		"path", opts.Input,
		"len_x", humanize.Comma(int64(len(pair.X))),
		"len_y", humanize.Comma(int64(len(pair.Y))),
		"cells", humanize.Comma(int64(len(pair.X))*int64(len(pair.Y))),
	)

	// The output is staged before alignment so a bad path fails before any
	// work; the target itself is only replaced once the result is written.
	fh, err := createPending(opts.Output)
	if err != nil {
		errorf(stderr, "%v", err)
		return ExitIO
	}
	defer fh.Discard()

	aligner := align.New(align.Config{Model: model, Parallel: opts.Parallel, BaseCutoff: opts.BaseCutoff})
	alignFn, err := aligner.ByName(opts.Algorithm)
	if err != nil {
		errorf(stderr, "%v", err)
		return ExitUsage
	}

	if ctx.Err() != nil {
		return ExitCanceled
	}
	res, m, err := cmdutil.Measure(ctx, func(ctx context.Context) (align.Result, error) {
		return alignFn(ctx, pair.X, pair.Y)
	})
	if err != nil || ctx.Err() != nil {
		if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.Debug("alignment interrupted", "err", ctx.Err())
			return ExitCanceled
		}
		errorf(stderr, "%v", err)
		return ExitFailure
	}
	log.Debug("aligned",
		"algorithm", opts.Algorithm,
		"cost", res.Cost,
		"columns", humanize.Comma(int64(res.Len())),
		"elapsed", m.Elapsed,
		"rss_delta", humanize.IBytes(uint64(max(m.MemoryKB, 0))*1024),
	)

	rec := output.Record{Algorithm: opts.Algorithm, Result: res, Elapsed: m.Elapsed, MemoryKB: m.MemoryKB}
	fw := bufio.NewWriter(fh)
	if err := writers.Write(opts.Format, fw, rec); err != nil {
		errorf(stderr, "writing %s: %v", opts.Output, err)
		return ExitIO
	}
	if err := fw.Flush(); err != nil {
		errorf(stderr, "writing %s: %v", opts.Output, err)
		return ExitIO
	}
	if err := fh.Commit(); err != nil {
		errorf(stderr, "%v", err)
		return ExitIO
	}

	if opts.Pretty {
		_, _ = io.WriteString(outw, pretty.RenderAlignment(res))
	}
	return flushCode(outw, stderr, ExitOK)
}
