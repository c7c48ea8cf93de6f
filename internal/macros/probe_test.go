package macros

import (
	"context"
	"errors"
	"strings"
	"testing"

	"anvil/internal/diag"
)

// scriptedRunner replays canned results and records the invocations it saw.
type scriptedRunner struct {
	stdout string
	stderr string
	exit   int
	err    error
	calls  [][]string
}

func (r *scriptedRunner) Run(ctx context.Context, path string, args ...string) (string, string, int, error) {
	r.calls = append(r.calls, append([]string{path}, args...))
	return r.stdout, r.stderr, r.exit, r.err
}

func TestProbeInvocationShape(t *testing.T) {
	runner := &scriptedRunner{stdout: "#define __clang__ 1\n"}
	table, err := Probe(context.Background(), runner, "/usr/bin/clang", LangCXX, []string{"-std=gnu++17"})
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if !table.Has("__clang__") {
		t.Fatalf("missing parsed symbol")
	}

	if len(runner.calls) != 1 {
		t.Fatalf("expected one invocation, got %d", len(runner.calls))
	}
	call := runner.calls[0]
	if call[0] != "/usr/bin/clang" || call[1] != "-E" || call[2] != "-dM" || call[3] != "-std=gnu++17" {
		t.Fatalf("unexpected invocation: %v", call)
	}
	if !strings.HasSuffix(call[len(call)-1], ".cpp") {
		t.Fatalf("C++ probe should use a .cpp translation unit: %v", call)
	}
}

func TestProbeMissingBinary(t *testing.T) {
	runner := &scriptedRunner{err: errors.New("no such file")}
	_, err := Probe(context.Background(), runner, "/missing/cc", LangC, nil)
	if !diag.IsCode(err, diag.ProcessNotFound) {
		t.Fatalf("expected ProcessNotFound, got %v", err)
	}
}

func TestProbeNonZeroExitReportsFirstStderrLine(t *testing.T) {
	runner := &scriptedRunner{stderr: "error: unknown argument\nmore context\n", exit: 1}
	_, err := Probe(context.Background(), runner, "/usr/bin/cc", LangC, nil)
	if !diag.IsCode(err, diag.ProbeFailed) {
		t.Fatalf("expected ProbeFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "error: unknown argument") {
		t.Fatalf("first stderr line missing: %v", err)
	}
	if strings.Contains(err.Error(), "more context") {
		t.Fatalf("should only carry the first stderr line: %v", err)
	}
}
