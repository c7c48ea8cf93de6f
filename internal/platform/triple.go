package platform

import (
	"strings"

	"anvil/internal/diag"
)

// Triple is a parsed autoconf-style target string: cpu-vendor-os, where the
// OS part may itself contain dashes (linux-gnu, windows-msvc,
// linux-androideabi).
type Triple struct {
	Raw    string
	CPU    string
	Vendor string
	OS     string
}

// ParseTriple splits a canonical cpu-vendor-os[-abi] target string.
func ParseTriple(raw string) (Triple, error) {
	parts := strings.SplitN(raw, "-", 3)
	if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Triple{}, diag.Errorf(diag.InvalidTriple,
			"invalid target triple %q: expected cpu-vendor-os", raw)
	}
	return Triple{Raw: raw, CPU: parts[0], Vendor: parts[1], OS: parts[2]}, nil
}

// CanonicalCPU collapses the triple's CPU token to the architecture token
// the probe reports (i686 and friends become x86, powerpc becomes ppc, ...).
func (t Triple) CanonicalCPU() string {
	return canonicalCPU(t.CPU)
}

// Endianness returns the byte order implied by the CPU token.
func (t Triple) Endianness() string {
	return cpuEndianness(t.CPU)
}

// Kernel returns the kernel family implied by the OS token.
func (t Triple) Kernel() string {
	return osKernel(t.OS)
}

// IsWindows reports whether the triple targets Windows, whichever ABI.
func (t Triple) IsWindows() bool {
	return t.Kernel() == "WINNT"
}

// IsApple reports whether the triple targets a Darwin platform.
func (t Triple) IsApple() bool {
	return t.Kernel() == "Darwin"
}

// IsAndroid reports whether the OS token carries an Android ABI.
func (t Triple) IsAndroid() bool {
	return strings.Contains(t.OS, "android")
}

// Toolchain is the triple spelling clang's --target option understands:
// cpu-os, keeping the vendor only for Apple targets.
func (t Triple) Toolchain() string {
	if t.Vendor == "apple" {
		return t.CPU + "-" + t.Vendor + "-" + t.OS
	}
	return t.CPU + "-" + t.OS
}

func canonicalCPU(cpu string) string {
	switch cpu {
	case "i386", "i486", "i586", "i686":
		return "x86"
	case "x86_64", "amd64":
		return "x86_64"
	case "powerpc":
		return "ppc"
	case "powerpc64", "powerpc64le":
		return "ppc64"
	case "mips", "mipsel":
		return "mips32"
	case "mips64", "mips64el":
		return "mips64"
	case "sh4":
		return "sh4"
	}
	if strings.HasPrefix(cpu, "thumb") {
		return "arm"
	}
	if strings.HasPrefix(cpu, "arm") && cpu != "arm64" {
		return "arm"
	}
	if cpu == "arm64" {
		return "aarch64"
	}
	return cpu
}

var bigEndianCPUs = map[string]bool{
	"ppc":     true,
	"ppc64":   true,
	"sparc":   true,
	"sparc64": true,
	"s390":    true,
	"s390x":   true,
	"m68k":    true,
	"hppa":    true,
	"mips32":  true,
	"mips64":  true,
}

func cpuEndianness(cpu string) string {
	// Explicit little-endian spellings of otherwise big-endian families.
	if strings.HasSuffix(cpu, "el") || strings.HasSuffix(cpu, "le") {
		return "little"
	}
	if bigEndianCPUs[canonicalCPU(cpu)] {
		return "big"
	}
	return "little"
}

func osKernel(os string) string {
	switch {
	case strings.Contains(os, "android"):
		return "Linux"
	case strings.HasPrefix(os, "linux"):
		return "Linux"
	case strings.HasPrefix(os, "darwin"):
		return "Darwin"
	case strings.HasPrefix(os, "mingw"), strings.HasPrefix(os, "windows"):
		return "WINNT"
	case strings.HasPrefix(os, "openbsd"):
		return "OpenBSD"
	case strings.HasPrefix(os, "freebsd"):
		return "FreeBSD"
	case strings.HasPrefix(os, "netbsd"):
		return "NetBSD"
	case strings.HasPrefix(os, "dragonfly"):
		return "DragonFly"
	case strings.HasPrefix(os, "solaris"):
		return "SunOS"
	case strings.HasPrefix(os, "wasi"):
		return "WASI"
	}
	return "Unknown"
}

// BitwidthPartner returns the sibling architecture reachable with a word
// size toggle flag, when the ISA has 32- and 64-bit variants a single
// compiler can produce.
func BitwidthPartner(cpu string) (string, bool) {
	switch cpu {
	case "x86":
		return "x86_64", true
	case "x86_64":
		return "x86", true
	case "ppc":
		return "ppc64", true
	case "ppc64":
		return "ppc", true
	case "sparc":
		return "sparc64", true
	case "sparc64":
		return "sparc", true
	}
	return "", false
}

// BitwidthToggle is the flag that switches a gcc-like compiler to the given
// canonical architecture within its ISA family.
func BitwidthToggle(to string) string {
	switch to {
	case "x86_64", "ppc64", "sparc64":
		return "-m64"
	}
	return "-m32"
}
