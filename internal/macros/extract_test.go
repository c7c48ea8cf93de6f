package macros

import (
	"context"
	"testing"

	"anvil/internal/diag"
)

type countingRunner struct {
	scriptedRunner
}

func TestExtractMemoizesPerKey(t *testing.T) {
	runner := &countingRunner{scriptedRunner{stdout: "#define __GNUC__ 8\n"}}
	e := NewExtractor(runner)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := e.Extract(ctx, "/usr/bin/gcc", LangC, nil); err != nil {
			t.Fatalf("extract failed: %v", err)
		}
	}
	if len(runner.calls) != 1 {
		t.Fatalf("memo miss: %d invocations for one key", len(runner.calls))
	}

	// A different flag set is a different key.
	if _, err := e.Extract(ctx, "/usr/bin/gcc", LangC, []string{"-m64"}); err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if len(runner.calls) != 2 {
		t.Fatalf("expected a fresh probe for new flags, got %d calls", len(runner.calls))
	}
}

func TestExtractMemoizesErrors(t *testing.T) {
	runner := &countingRunner{scriptedRunner{stderr: "boom", exit: 1}}
	e := NewExtractor(runner)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := e.Extract(ctx, "/usr/bin/cc", LangC, nil)
		if !diag.IsCode(err, diag.ProbeFailed) {
			t.Fatalf("expected ProbeFailed, got %v", err)
		}
	}
	if len(runner.calls) != 1 {
		t.Fatalf("errors must be memoized too, got %d calls", len(runner.calls))
	}
}
