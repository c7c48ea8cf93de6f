package macros

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/charlievieth/reonce"

	"anvil/internal/diag"
)

// Preprocessor-mode invocation: -E stops after preprocessing, -dM dumps the
// macro table instead of the preprocessed source. Understood by every
// family we classify, including clang-cl.
var preprocessFlags = []string{"-E", "-dM"}

var defineRe = reonce.New(`^#define\s+(\S+)(?:\s+(.*))?$`)

// Probe invokes a candidate binary in preprocessor mode with the given extra
// flags on a minimal translation unit and returns the resulting macro table.
//
// It fails with diag.ProcessNotFound when the candidate does not exist and
// diag.ProbeFailed when the invocation exits non-zero.
func Probe(ctx context.Context, r Runner, path string, lang Language, flags []string) (Table, error) {
	tu, cleanup, err := translationUnit(lang)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	args := make([]string, 0, len(preprocessFlags)+len(flags)+1)
	args = append(args, preprocessFlags...)
	args = append(args, flags...)
	args = append(args, tu)

	stdout, stderr, exit, err := r.Run(ctx, path, args...)
	if err != nil {
		return nil, diag.Errorf(diag.ProcessNotFound, "cannot execute `%s`: %v", path, err)
	}
	if exit != 0 {
		return nil, diag.Errorf(diag.ProbeFailed,
			"`%s` failed to preprocess (exit %d): %s", path, exit, firstLine(stderr))
	}
	return parseDefines(stdout), nil
}

func parseDefines(out string) Table {
	t := make(Table)
	for _, line := range strings.Split(out, "\n") {
		m := defineRe.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		name, value := m[1], m[2]
		if value == "" {
			value = "1"
		}
		t[name] = value
	}
	return t
}

// translationUnit writes an empty conftest source file whose extension
// selects the probe language.
func translationUnit(lang Language) (string, func(), error) {
	dir, err := os.MkdirTemp("", "anvil-probe")
	if err != nil {
		return "", nil, err
	}
	tu := filepath.Join(dir, "conftest"+lang.Ext())
	if err := os.WriteFile(tu, nil, 0o644); err != nil {
		os.RemoveAll(dir)
		return "", nil, err
	}
	return tu, func() { os.RemoveAll(dir) }, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return "no error output"
	}
	return s
}
