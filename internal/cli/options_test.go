// internal/cli/options_test.go
package cli

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	return fs
}

func mustParse(t *testing.T, fixed string, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args, fixed)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "", "in.txt", "out.txt")
	if o.Algorithm != "efficient" || o.Format != "text" || o.Parallel || o.Pretty {
		t.Errorf("bad defaults %+v", o)
	}
	if o.Input != "in.txt" || o.Output != "out.txt" {
		t.Errorf("positionals %+v", o)
	}
}

func TestFlagsAfterPositionals(t *testing.T) {
	o := mustParse(t, "",
		"in.txt", "--algorithm", "basic", "out.txt", "--pretty", "--format=json", "-v",
	)
	if o.Algorithm != "basic" || o.Format != "json" || !o.Pretty || !o.Verbose {
		t.Errorf("flags not picked up: %+v", o)
	}
	if o.Input != "in.txt" || o.Output != "out.txt" {
		t.Errorf("positionals %+v", o)
	}
}

func TestFixedAlgorithm(t *testing.T) {
	o := mustParse(t, "basic", "a", "b")
	if o.Algorithm != "basic" {
		t.Fatalf("fixed algorithm not applied: %q", o.Algorithm)
	}
	if _, err := ParseArgs(newFS(), []string{"--algorithm", "efficient", "a", "b"}, "basic"); err == nil {
		t.Fatalf("--algorithm must be unknown when pinned")
	}
}

func TestPositionalCount(t *testing.T) {
	for _, args := range [][]string{nil, {"a"}, {"a", "b", "c"}} {
		_, err := ParseArgs(newFS(), args, "")
		if err == nil || !strings.Contains(err.Error(), "exactly 2") {
			t.Errorf("args %v: want count error, got %v", args, err)
		}
	}
}

func TestDoubleDashPositionals(t *testing.T) {
	o := mustParse(t, "", "--", "-in", "-out")
	if o.Input != "-in" || o.Output != "-out" {
		t.Fatalf("got %+v", o)
	}
}

func TestInvalidValues(t *testing.T) {
	cases := map[string][]string{
		"algorithm": {"--algorithm", "fast", "a", "b"},
		"format":    {"--format", "xml", "a", "b"},
		"cutoff":    {"--base-cutoff", "-1", "a", "b"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseArgs(newFS(), args, ""); err == nil {
				t.Fatalf("expected error for %v", args)
			}
		})
	}
}

func TestHelpAndVersion(t *testing.T) {
	var buf bytes.Buffer
	fs := NewFlagSet("seqalign")
	fs.SetOutput(&buf)
	if _, err := ParseArgs(fs, []string{"-h"}, ""); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
	if !strings.Contains(buf.String(), "<input> <output>") {
		t.Errorf("usage missing synopsis:\n%s", buf.String())
	}
	o, err := ParseArgs(newFS(), []string{"--version"}, "")
	if err != nil || !o.Version {
		t.Fatalf("version: %+v %v", o, err)
	}
}
