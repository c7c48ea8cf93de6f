package toolchain

import (
	"testing"

	"anvil/internal/macros"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		table macros.Table
		want  Family
	}{
		{"gcc", macros.Table{"__GNUC__": "8"}, FamilyGCC},
		{"clang", macros.Table{"__clang__": "1", "__GNUC__": "4"}, FamilyClang},
		{"clang-cl", macros.Table{"__clang__": "1", "_MSC_VER": "1929"}, FamilyClangCL},
		{"msvc", macros.Table{"_MSC_VER": "1929"}, FamilyMSVC},
		{"unknown", macros.Table{"__ELF__": "1"}, FamilyUnknown},
	}
	for _, c := range cases {
		if got := Classify(c.table); got != c.want {
			t.Fatalf("%s: Classify = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestDetectLanguage(t *testing.T) {
	lang, ok := detectLanguage(macros.Table{"__cplusplus": "201703L", "__STDC__": "1"})
	if !ok || lang != macros.LangCXX {
		t.Fatalf("C++ takes precedence, got %v %v", lang, ok)
	}
	lang, ok = detectLanguage(macros.Table{"__STDC_VERSION__": "201710L"})
	if !ok || lang != macros.LangC {
		t.Fatalf("expected C, got %v %v", lang, ok)
	}
	if _, ok := detectLanguage(macros.Table{}); ok {
		t.Fatalf("empty table has no language")
	}
}
