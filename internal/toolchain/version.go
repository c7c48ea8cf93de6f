package toolchain

import (
	"fmt"
	"strconv"
	"strings"

	"anvil/internal/macros"
)

// Version is an ordered (major, minor, patch) triple. Raw preserves the
// original spelling for diagnostics, including sentinel values like
// "4.0.0.or.less" for unmapped Apple clang builds.
type Version struct {
	Major, Minor, Patch int
	Raw                 string
}

// ParseVersion reads "8", "8.1" or "8.1.0" spellings.
func ParseVersion(s string) (Version, error) {
	v := Version{Raw: s}
	parts := strings.SplitN(s, ".", 3)
	dst := []*int{&v.Major, &v.Minor, &v.Patch}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q", s)
		}
		*dst[i] = n
	}
	return v, nil
}

func (v Version) String() string {
	if v.Raw != "" {
		return v.Raw
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or 1 by total order on (major, minor, patch).
func (v Version) Compare(o Version) int {
	for _, d := range [3]int{v.Major - o.Major, v.Minor - o.Minor, v.Patch - o.Patch} {
		if d < 0 {
			return -1
		}
		if d > 0 {
			return 1
		}
	}
	return 0
}

// Equal ignores the Raw spelling.
func (v Version) Equal(o Version) bool { return v.Compare(o) == 0 }

func versionFromMacros(major, minor, patch int) Version {
	return Version{
		Major: major, Minor: minor, Patch: patch,
		Raw: fmt.Sprintf("%d.%d.%d", major, minor, patch),
	}
}

// appleVersionMap translates __apple_build_version__-bearing clang versions
// (which follow Xcode numbering) to the upstream llvm release they are
// built from. Builds older than the table go back far enough that the
// exact upstream version stops mattering.
var appleVersionMap = map[string]Version{
	"11.0.1": {Major: 8, Minor: 0, Patch: 0, Raw: "8.0.0"},
	"12.0.0": {Major: 10, Minor: 0, Patch: 0, Raw: "10.0.0"},
	"12.0.5": {Major: 11, Minor: 1, Patch: 0, Raw: "11.1.0"},
	"13.0.0": {Major: 12, Minor: 0, Patch: 0, Raw: "12.0.0"},
	"13.1.6": {Major: 13, Minor: 0, Patch: 0, Raw: "13.0.0"},
	"14.0.0": {Major: 14, Minor: 0, Patch: 0, Raw: "14.0.0"},
	"15.0.0": {Major: 16, Minor: 0, Patch: 0, Raw: "16.0.0"},
}

var appleVersionUnknown = Version{Major: 4, Minor: 0, Patch: 0, Raw: "4.0.0.or.less"}

// versionOf extracts the compiler version from family-specific symbols.
func versionOf(family Family, t macros.Table) (Version, bool) {
	switch family {
	case FamilyGCC:
		major, ok1 := t.Int("__GNUC__")
		minor, ok2 := t.Int("__GNUC_MINOR__")
		patch, ok3 := t.Int("__GNUC_PATCHLEVEL__")
		if !ok1 || !ok2 || !ok3 {
			return Version{}, false
		}
		return versionFromMacros(major, minor, patch), true
	case FamilyClang, FamilyClangCL:
		major, ok1 := t.Int("__clang_major__")
		minor, ok2 := t.Int("__clang_minor__")
		patch, ok3 := t.Int("__clang_patchlevel__")
		if !ok1 || !ok2 || !ok3 {
			return Version{}, false
		}
		v := versionFromMacros(major, minor, patch)
		if family == FamilyClang && t.Has("__apple_build_version__") {
			if mapped, ok := appleVersionMap[v.Raw]; ok {
				return mapped, true
			}
			return appleVersionUnknown, true
		}
		return v, true
	case FamilyMSVC:
		return msvcVersion(t)
	}
	return Version{}, false
}

// msvcVersion decodes the packed _MSC_VER integer (MMmm) plus the separate
// _MSC_FULL_VER integer (MMmmPPPPP).
func msvcVersion(t macros.Table) (Version, bool) {
	if full, ok := t.Int("_MSC_FULL_VER"); ok {
		return versionFromMacros(full/10000000, (full/100000)%100, full%100000), true
	}
	packed, ok := t.Int("_MSC_VER")
	if !ok {
		return Version{}, false
	}
	return versionFromMacros(packed/100, packed%100, 0), true
}
