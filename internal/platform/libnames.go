package platform

import (
	"strings"

	"anvil/internal/diag"
)

// LibraryNames is the naming convention for build artifacts on one OS.
type LibraryNames struct {
	DLLPrefix       string
	DLLSuffix       string
	LibPrefix       string
	LibSuffix       string
	ImportLibSuffix string
	ObjSuffix       string
}

var libraryNameTable = map[string]LibraryNames{
	"linux-gnu": {
		DLLPrefix: "lib",
		DLLSuffix: ".so",
		LibPrefix: "lib",
		LibSuffix: "a",
		ObjSuffix: "o",
	},
	"darwin": {
		DLLPrefix: "lib",
		DLLSuffix: ".dylib",
		LibPrefix: "lib",
		LibSuffix: "a",
		ObjSuffix: "o",
	},
	"mingw32": {
		DLLSuffix:       ".dll",
		LibPrefix:       "lib",
		LibSuffix:       "a",
		ImportLibSuffix: "a",
		ObjSuffix:       "o",
	},
	"windows-msvc": {
		DLLSuffix:       ".dll",
		LibSuffix:       "lib",
		ImportLibSuffix: "lib",
		ObjSuffix:       "obj",
	},
	"windows-gnu": {
		DLLSuffix:       ".dll",
		LibPrefix:       "lib",
		LibSuffix:       "a",
		ImportLibSuffix: "a",
		ObjSuffix:       "o",
	},
	"openbsd": {
		DLLPrefix: "lib",
		DLLSuffix: ".so.1.0",
		LibPrefix: "lib",
		LibSuffix: "a",
		ObjSuffix: "o",
	},
}

// ResolveLibraryNames maps a raw OS identifier to its naming convention.
// ABI-qualified Linux identifiers collapse to linux-gnu, versioned Darwin
// and OpenBSD identifiers to their base entry. A mingw32 identifier
// resolves to the windows-msvc entry instead when msvcLayout is set (the
// paired C compiler is clang-cl or msvc, or this is an artifact-only build
// where MSVC-style layout is assumed by policy).
func ResolveLibraryNames(osToken string, msvcLayout bool) (LibraryNames, error) {
	key := osToken
	switch {
	case strings.HasPrefix(osToken, "linux-gnu"):
		key = "linux-gnu"
	case strings.HasPrefix(osToken, "darwin"):
		key = "darwin"
	case strings.HasPrefix(osToken, "openbsd"):
		key = "openbsd"
	case osToken == "mingw32" && msvcLayout:
		key = "windows-msvc"
	}
	names, ok := libraryNameTable[key]
	if !ok {
		return LibraryNames{}, diag.Errorf(diag.UnknownPlatform,
			"cannot determine library naming conventions for OS %q", osToken)
	}
	return names, nil
}
