// Package testkit holds invariant checks shared by tests across packages.
package testkit

import (
	"fmt"
	"strings"

	"anvil/internal/toolchain"
)

// CheckResultInvariants runs the structural invariants every resolved
// compiler must satisfy:
// 1) path is set and the family is a recognized one
// 2) at most one dialect flag, and it never repeats
// 3) sysroot flags, when present, come first and as a complete pair
// 4) architecture steering flags (-m32/-m64/--target=...) come last
func CheckResultInvariants(r *toolchain.CompilerResult) error {
	if r == nil {
		return fmt.Errorf("nil compiler result")
	}
	if r.Path == "" {
		return fmt.Errorf("compiler result has empty path")
	}
	if r.Family == toolchain.FamilyUnknown {
		return fmt.Errorf("compiler result has unknown family")
	}

	dialects := 0
	lastSteer := -1
	for i, f := range r.Flags {
		if strings.HasPrefix(f, "-std=") || strings.HasPrefix(f, "-std:") { // -std=, -std:
			dialects++
		}
		if f == "-m32" || f == "-m64" || strings.HasPrefix(f, "--target=") {
			lastSteer = i
		}
	}
	if dialects > 1 {
		return fmt.Errorf("dialect flag repeats in %v", r.Flags)
	}
	if lastSteer >= 0 && lastSteer != len(r.Flags)-1 {
		return fmt.Errorf("steering flag is not last in %v", r.Flags)
	}

	for i, f := range r.Flags {
		if f == "-isysroot" {
			if i != 0 {
				return fmt.Errorf("-isysroot is not first in %v", r.Flags)
			}
			if len(r.Flags) < 2 || strings.HasPrefix(r.Flags[1], "-") {
				return fmt.Errorf("-isysroot has no path argument in %v", r.Flags)
			}
		}
	}
	return nil
}
