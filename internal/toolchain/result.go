package toolchain

import (
	"strings"

	"anvil/internal/macros"
)

// CompilerResult is the resolved identity of one compiler binary for one
// role. Flags is the minimal ordered set of extra arguments needed to
// reach the required dialect (and, for cross targets, the requested
// architecture); empty when the bare compiler already qualifies. Computed
// once per run and immutable afterwards.
type CompilerResult struct {
	Path     string
	Family   Family
	Version  Version
	Flags    []string
	Language macros.Language
}

func (r *CompilerResult) String() string {
	s := r.Path + " (" + r.Family.String() + " " + r.Version.String() + ", " + r.Language.String() + ")"
	if len(r.Flags) > 0 {
		s += " " + strings.Join(r.Flags, " ")
	}
	return s
}
