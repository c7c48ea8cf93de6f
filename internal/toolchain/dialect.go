package toolchain

import (
	"anvil/internal/macros"
)

// dialect is a required language standard level, checked through the value
// of its standard-version symbol.
type dialect struct {
	name     string
	symbol   string
	required int
}

var (
	dialectC17   = dialect{name: "C17", symbol: "__STDC_VERSION__", required: 201710}
	dialectCXX17 = dialect{name: "C++17", symbol: "__cplusplus", required: 201703}
)

func requiredDialect(lang macros.Language) dialect {
	if lang == macros.LangCXX {
		return dialectCXX17
	}
	return dialectC17
}

// satisfied reports whether the table already reaches the dialect. Draft
// standard values below the final constant do not qualify.
func (d dialect) satisfied(t macros.Table) bool {
	v, ok := t.Int(d.symbol)
	return ok && v >= d.required
}

// dialectFlags lists the candidate flag sets per family, most modern
// spelling first. The accepted set becomes the sole dialect entry in the
// flag list; candidates are never accumulated.
func dialectFlags(family Family, lang macros.Language) [][]string {
	if lang == macros.LangCXX {
		switch family {
		case FamilyClangCL:
			return [][]string{{"-std:c++17"}}
		default:
			return [][]string{{"-std=gnu++17"}, {"-std=c++17"}}
		}
	}
	switch family {
	case FamilyClangCL:
		// clang-cl only forwards -std= for C through -Xclang.
		return [][]string{{"-Xclang", "-std=gnu17"}}
	default:
		return [][]string{{"-std=gnu17"}, {"-std=c17"}}
	}
}
