package toolchain

import (
	"anvil/internal/macros"
)

// Family is the compiler vendor lineage, derived from which defining
// symbols appear in the macro table. clang-cl is clang with the MSVC
// compatibility surface: it defines both __clang__ and _MSC_VER.
type Family uint8

const (
	FamilyUnknown Family = iota
	FamilyGCC
	FamilyClang
	FamilyClangCL
	FamilyMSVC
)

func (f Family) String() string {
	switch f {
	case FamilyGCC:
		return "gcc"
	case FamilyClang:
		return "clang"
	case FamilyClangCL:
		return "clang-cl"
	case FamilyMSVC:
		return "msvc"
	}
	return "unknown"
}

// GCCLike reports whether the compiler takes gcc-style flags (-std=,
// -m32/-m64, --target for clang).
func (f Family) GCCLike() bool {
	return f == FamilyGCC || f == FamilyClang
}

// Classify derives the family from characteristic symbol presence. A
// vendor-patched clang (e.g. Apple's) still classifies as clang; the
// vendor marker only affects version decoding.
func Classify(t macros.Table) Family {
	clang := t.Has("__clang__")
	msc := t.Has("_MSC_VER")
	switch {
	case clang && msc:
		return FamilyClangCL
	case clang:
		return FamilyClang
	case t.Has("__GNUC__"):
		return FamilyGCC
	case msc:
		return FamilyMSVC
	}
	return FamilyUnknown
}

// detectLanguage reports which language the binary actually compiled the
// probe input as. A C++ driver (g++, clang++) forces C++ mode even on a .c
// translation unit, which is how we catch a C++ compiler handed to a C
// role and vice versa.
func detectLanguage(t macros.Table) (macros.Language, bool) {
	if t.Has("__cplusplus") {
		return macros.LangCXX, true
	}
	if t.Has("__STDC_VERSION__") || t.Has("__STDC__") {
		return macros.LangC, true
	}
	return 0, false
}
