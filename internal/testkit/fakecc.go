package testkit

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Undef marks a macro for removal when a spec section is applied.
const Undef = "\x00undef"

// Defs is one set of macro definitions.
type Defs map[string]string

// CompilerSpec describes a fake compiler as macro-definition sections:
// the "" key holds the base table, "*.c"/"*.cpp" keys apply by translation
// unit extension, and any other key applies when that exact argument is
// passed. Application order is base, extension, then arguments in the order
// given.
type CompilerSpec map[string]Defs

// Merge layers other on top of s into a fresh spec, leaving both inputs
// untouched. Fixtures compose by deltas.
func (s CompilerSpec) Merge(other CompilerSpec) CompilerSpec {
	out := make(CompilerSpec, len(s)+len(other))
	for key, defs := range s {
		out[key] = cloneDefs(defs)
	}
	for key, defs := range other {
		merged := out[key]
		if merged == nil {
			merged = make(Defs, len(defs))
			out[key] = merged
		}
		for name, value := range defs {
			merged[name] = value
		}
	}
	return out
}

func cloneDefs(defs Defs) Defs {
	out := make(Defs, len(defs))
	for name, value := range defs {
		out[name] = value
	}
	return out
}

// expand resolves the macro table the fake compiler would print for the
// given preprocessor arguments. Unrecognized flags are ignored, like a real
// driver quietly accepting dialect flags it maps to a lower standard.
func (s CompilerSpec) expand(args []string) Defs {
	out := Defs{}
	apply := func(defs Defs) {
		for name, value := range defs {
			if value == Undef {
				delete(out, name)
				continue
			}
			out[name] = value
		}
	}
	apply(s[""])
	if len(args) > 0 {
		ext := filepath.Ext(args[len(args)-1])
		apply(s["*"+ext])
	}
	for _, arg := range args {
		apply(s[arg])
	}
	return out
}

// FakeRunner serves canned preprocessor output for a set of fake binaries
// and resolves a canned PATH. It satisfies both macros.Runner and
// macros.PathResolver.
type FakeRunner struct {
	Compilers map[string]CompilerSpec // absolute path -> spec
	Path      map[string]string       // command name -> absolute path
	Calls     int
}

func (r *FakeRunner) Run(ctx context.Context, path string, args ...string) (string, string, int, error) {
	r.Calls++
	spec, ok := r.Compilers[path]
	if !ok {
		return "", "", -1, fmt.Errorf("no such binary: %s", path)
	}
	if len(args) < 2 || args[0] != "-E" || args[1] != "-dM" {
		return "", fmt.Sprintf("%s: not a preprocessor invocation", path), 1, nil
	}
	defs := spec.expand(args[2:])
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		if defs[name] == "" {
			fmt.Fprintf(&b, "#define %s\n", name)
			continue
		}
		fmt.Fprintf(&b, "#define %s %s\n", name, defs[name])
	}
	return b.String(), "", 0, nil
}

func (r *FakeRunner) LookPath(name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, ok := r.Compilers[name]; ok {
			return name, nil
		}
		return "", fmt.Errorf("%s: no such file", name)
	}
	if path, ok := r.Path[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("%s: not found", name)
}
