package toolchain

import (
	"anvil/internal/diag"
	"anvil/internal/platform"
)

// Minimum supported versions per family. Anything older gets rejected with
// a message naming the family and the found version.
var (
	minGCC     = Version{Major: 8, Minor: 1, Raw: "8.1"}
	minClang   = Version{Major: 8, Minor: 0, Raw: "8.0"}
	minClangCL = Version{Major: 9, Minor: 0, Raw: "9.0"}
)

const unsupportedCompilerMsg = "Unknown compiler or compiler not supported."

// checkSupport enforces the family and minimum-version policy for a probed
// binary against the triple of the role being resolved. MSVC proper is not
// a supported build compiler, and gcc never is on Windows targets, however
// recent.
func checkSupport(family Family, version Version, triple platform.Triple) error {
	switch family {
	case FamilyUnknown, FamilyMSVC:
		return diag.Errorf(diag.NotACompiler, unsupportedCompilerMsg)
	case FamilyGCC:
		if triple.IsWindows() {
			return diag.Errorf(diag.NotACompiler, unsupportedCompilerMsg)
		}
		if version.Compare(minGCC) < 0 {
			return diag.Errorf(diag.UnsupportedVersion,
				"Only GCC %s or newer is supported (found version %s).", minGCC, version)
		}
	case FamilyClang:
		if version.Compare(minClang) < 0 {
			return diag.Errorf(diag.UnsupportedVersion,
				"Only clang/llvm %s or newer is supported (found version %s).", minClang, version)
		}
	case FamilyClangCL:
		if version.Compare(minClangCL) < 0 {
			return diag.Errorf(diag.UnsupportedVersion,
				"Only clang-cl %s or newer is supported (found version %s)", minClangCL, version)
		}
	}
	return nil
}
