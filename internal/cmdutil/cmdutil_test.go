package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cloudeng.io/logging/ctxlog"
)

func TestWarnf(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, false, "cost model is %s", "asymmetric")
	if b.String() != "WARN: cost model is asymmetric\n" {
		t.Fatalf("got %q", b.String())
	}
	b.Reset()
	Warnf(&b, true, "hidden")
	if b.Len() != 0 {
		t.Fatalf("quiet must suppress, got %q", b.String())
	}
}

func TestWithLogger(t *testing.T) {
	var b bytes.Buffer
	ctx := WithLogger(context.Background(), &b, true, "seqalign")
	ctxlog.Logger(ctx).Debug("aligned", "cost", 30)
	if !strings.Contains(b.String(), "msg=aligned") || !strings.Contains(b.String(), "cost=30") ||
		!strings.Contains(b.String(), "cmd=seqalign") {
		t.Fatalf("unexpected log output %q", b.String())
	}

	b.Reset()
	ctx = WithLogger(context.Background(), &b, false, "seqalign")
	ctxlog.Logger(ctx).Info("hidden")
	if b.Len() != 0 {
		t.Fatalf("non-verbose must not log, got %q", b.String())
	}
}

func TestMeasure(t *testing.T) {
	v, m, err := Measure(context.Background(), func(context.Context) (int, error) {
		time.Sleep(2 * time.Millisecond)
		return 7, nil
	})
	if err != nil || v != 7 {
		t.Fatalf("got %d %v", v, err)
	}
	if m.Elapsed < 2*time.Millisecond {
		t.Fatalf("elapsed %v too small", m.Elapsed)
	}

	boom := errors.New("boom")
	_, _, err = Measure(context.Background(), func(context.Context) (string, error) { return "", boom })
	if !errors.Is(err, boom) {
		t.Fatalf("error not propagated: %v", err)
	}
}
