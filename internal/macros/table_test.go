package macros

import "testing"

func TestTableIntStripsIntegerSuffixes(t *testing.T) {
	table := Table{
		"__cplusplus":      "201703L",
		"__STDC_VERSION__": "201710L",
		"_MSC_FULL_VER":    "192930133",
		"BARE":             "42",
		"UNSIGNED":         "7UL",
	}
	cases := map[string]int{
		"__cplusplus":      201703,
		"__STDC_VERSION__": 201710,
		"_MSC_FULL_VER":    192930133,
		"BARE":             42,
		"UNSIGNED":         7,
	}
	for name, want := range cases {
		got, ok := table.Int(name)
		if !ok || got != want {
			t.Fatalf("Int(%s) = %d, %v; want %d", name, got, ok, want)
		}
	}
}

func TestTableIntRejectsNonNumeric(t *testing.T) {
	table := Table{"__VERSION__": `"13.2.0"`}
	if _, ok := table.Int("__VERSION__"); ok {
		t.Fatalf("expected non-numeric value to fail")
	}
	if _, ok := table.Int("MISSING"); ok {
		t.Fatalf("expected missing symbol to fail")
	}
}

func TestTableNamesSorted(t *testing.T) {
	table := Table{"B": "1", "A": "1", "C": "1"}
	names := table.Names()
	if len(names) != 3 || names[0] != "A" || names[1] != "B" || names[2] != "C" {
		t.Fatalf("Names() = %v, want sorted", names)
	}
}

func TestParseDefines(t *testing.T) {
	out := "#define __GNUC__ 8\n#define __ELF__\n#define __VERSION__ \"8.1.0\"\nnot a define\n"
	table := parseDefines(out)
	if v, _ := table.Value("__GNUC__"); v != "8" {
		t.Fatalf("__GNUC__ = %q", v)
	}
	if v, _ := table.Value("__ELF__"); v != "1" {
		t.Fatalf("valueless define should read as 1, got %q", v)
	}
	if v, _ := table.Value("__VERSION__"); v != `"8.1.0"` {
		t.Fatalf("__VERSION__ = %q", v)
	}
	if len(table) != 3 {
		t.Fatalf("unexpected extra symbols: %v", table.Names())
	}
}
