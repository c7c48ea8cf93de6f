package macros

import (
	"sort"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Table maps preprocessor symbol names to their textual values. A symbol
// defined with no value maps to "1", matching what -dM emits. Tables are
// immutable once produced; producers hand out fresh maps.
type Table map[string]string

// Has reports whether the symbol is defined at all.
func (t Table) Has(name string) bool {
	_, ok := t[name]
	return ok
}

// Value returns the raw textual value of a symbol.
func (t Table) Value(name string) (string, bool) {
	v, ok := t[name]
	return v, ok
}

// Int decodes a symbol as an integer, tolerating the L/UL/LL suffixes that
// standard-version macros carry (e.g. __cplusplus = 201703L).
func (t Table) Int(name string) (int, bool) {
	v, ok := t[name]
	if !ok {
		return 0, false
	}
	v = strings.TrimRight(v, "LUlu")
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	i, err := safecast.Conv[int](n)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Names returns the defined symbol names in sorted order, for --verbose
// dumps and stable test output.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
