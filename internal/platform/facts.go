package platform

import (
	"anvil/internal/macros"
)

// Facts are the platform properties a compiler reports about its default
// (or flag-toggled) output: architecture token, byte order, kernel family.
// Derived once from a macro table and immutable afterwards.
type Facts struct {
	CPU        string
	Endianness string
	Kernel     string
}

// cpuCheck associates an architecture token with the macro symbols that
// identify it. All listed symbols must be present. 64-bit variants come
// before their 32-bit base: powerpc64 compilers define both __powerpc64__
// and __powerpc__.
type cpuCheck struct {
	cpu  string
	all  []string
	xlen int // required __riscv_xlen, 0 when irrelevant
}

var cpuChecks = []cpuCheck{
	{cpu: "x86_64", all: []string{"__x86_64__"}},
	{cpu: "x86_64", all: []string{"_M_X64"}},
	{cpu: "x86", all: []string{"__i386__"}},
	{cpu: "x86", all: []string{"_M_IX86"}},
	{cpu: "aarch64", all: []string{"__aarch64__"}},
	{cpu: "aarch64", all: []string{"_M_ARM64"}},
	{cpu: "arm", all: []string{"__arm__"}},
	{cpu: "arm", all: []string{"_M_ARM"}},
	{cpu: "ia64", all: []string{"__ia64__"}},
	{cpu: "s390x", all: []string{"__s390x__"}},
	{cpu: "s390", all: []string{"__s390__"}},
	{cpu: "ppc64", all: []string{"__powerpc64__"}},
	{cpu: "ppc", all: []string{"__powerpc__"}},
	{cpu: "alpha", all: []string{"__alpha__"}},
	{cpu: "hppa", all: []string{"__hppa__"}},
	{cpu: "sparc64", all: []string{"__sparc__", "__arch64__"}},
	{cpu: "sparc", all: []string{"__sparc__"}},
	{cpu: "m68k", all: []string{"__m68k__"}},
	{cpu: "mips64", all: []string{"__mips64"}},
	{cpu: "mips32", all: []string{"__mips__"}},
	{cpu: "riscv64", all: []string{"__riscv"}, xlen: 64},
	{cpu: "sh4", all: []string{"__sh__"}},
}

var kernelChecks = []struct {
	kernel string
	symbol string
}{
	{"Linux", "__linux__"},
	{"Darwin", "__APPLE__"},
	{"WINNT", "_WIN32"},
	{"WINNT", "WINNT"},
	{"OpenBSD", "__OpenBSD__"},
	{"FreeBSD", "__FreeBSD__"},
	{"NetBSD", "__NetBSD__"},
	{"DragonFly", "__DragonFly__"},
	{"SunOS", "__sun"},
	{"WASI", "__wasi__"},
}

// FactsFromMacros derives platform facts from a probed macro table.
// Missing dimensions come back empty; the consistency checker treats an
// empty dimension as a mismatch against anything.
func FactsFromMacros(t macros.Table) Facts {
	var f Facts
	for _, c := range cpuChecks {
		ok := true
		for _, sym := range c.all {
			if !t.Has(sym) {
				ok = false
				break
			}
		}
		if ok && c.xlen != 0 {
			if n, present := t.Int("__riscv_xlen"); !present || n != c.xlen {
				ok = false
			}
		}
		if ok {
			f.CPU = c.cpu
			break
		}
	}

	f.Endianness = endiannessFromMacros(t)

	for _, c := range kernelChecks {
		if t.Has(c.symbol) {
			f.Kernel = c.kernel
			break
		}
	}
	return f
}

func endiannessFromMacros(t macros.Table) string {
	order, ok := t.Int("__BYTE_ORDER__")
	if ok {
		if little, lok := t.Int("__ORDER_LITTLE_ENDIAN__"); lok && order == little {
			return "little"
		}
		if big, bok := t.Int("__ORDER_BIG_ENDIAN__"); bok && order == big {
			return "big"
		}
		return ""
	}
	// MSVC-style compilers define neither; every platform they support is
	// little-endian.
	if t.Has("_WIN32") || t.Has("_MSC_VER") {
		return "little"
	}
	if t.Has("__LITTLE_ENDIAN__") {
		return "little"
	}
	if t.Has("__BIG_ENDIAN__") {
		return "big"
	}
	return ""
}
