package rust

import (
	"strings"

	"github.com/charlievieth/reonce"

	"anvil/internal/diag"
	"anvil/internal/platform"
)

// ArmTargetFacts describes the ARM flavor a compiler actually targets,
// extracted from its predefined macros. rustc encodes these in the CPU token
// of its triples, so the mapping cannot come from the input triple alone.
type ArmTargetFacts struct {
	Arch   int
	Thumb2 bool
	FPU    string
}

var (
	apiLevelRe  = reonce.New(`[0-9]+$`)
	osVersionRe = reonce.New(`[\d.]+$`)
)

// MapTriple translates an autoconf-style triple into the rustc spelling: it
// generates candidate spellings in preference order and returns the first
// one the release's target table actually ships. Release-gated renames
// (solaris sun→pc, wasi→wasip1) fall out of table membership rather than
// version comparisons.
func MapTriple(triple platform.Triple, arm *ArmTargetFacts, msvc bool, table *TargetTable) (string, error) {
	for _, cand := range candidates(triple, arm, msvc) {
		if table.Supports(cand) {
			return cand, nil
		}
	}
	return "", diag.Errorf(diag.UnsupportedRustTriple,
		"Don't know how to translate %s for rustc", triple.Raw)
}

// candidates builds the ordered spellings to try. More specific CPU flavors
// come before generic ones, the input's own vendor before substitutes, and
// an unrenamed OS before its renamed successor.
func candidates(triple platform.Triple, arm *ArmTargetFacts, msvc bool) []string {
	cpus := cpuCandidates(triple, arm)

	var out []string
	switch {
	case triple.IsAndroid():
		// rustc android triples carry no vendor: aarch64-linux-android,
		// thumbv7neon-linux-androideabi. API levels are host-side detail.
		os := apiLevelRe.ReplaceAllString(triple.OS, "")
		for _, cpu := range cpus {
			out = append(out, cpu+"-"+os)
		}
	case strings.HasPrefix(triple.OS, "wasi"):
		// Also vendorless. wasm32-wasi was renamed wasm32-wasip1; old
		// releases ship the former, new ones the latter.
		for _, cpu := range cpus {
			out = append(out, cpu+"-wasi", cpu+"-wasip1")
		}
	case triple.IsWindows():
		os := "windows-gnu"
		if msvc {
			os = "windows-msvc"
		}
		for _, cpu := range cpus {
			for _, vendor := range vendorCandidates(triple.Vendor, "windows") {
				out = append(out, cpu+"-"+vendor+"-"+os)
			}
		}
	default:
		os := stripOSVersion(triple.OS)
		base, _, _ := strings.Cut(os, "-")
		if base == "freebsd" {
			// armv6/armv7 FreeBSD triples spell no ABI suffix.
			os = strings.TrimSuffix(os, "-gnueabihf")
		}
		for _, cpu := range cpus {
			for _, vendor := range vendorCandidates(triple.Vendor, base) {
				out = append(out, cpu+"-"+vendor+"-"+os)
			}
		}
	}
	return out
}

// stripOSVersion removes the version suffix from the kernel component of the
// OS token: darwin11.2.0, freebsd12.1, solaris2, openbsd6.1. Later
// components keep their digits (linux-gnuabi64).
func stripOSVersion(os string) string {
	kernel, rest, found := strings.Cut(os, "-")
	kernel = osVersionRe.ReplaceAllString(kernel, "")
	if found {
		return kernel + "-" + rest
	}
	return kernel
}

// vendorCandidates orders the input's own vendor ahead of the usual vendor
// for the OS. Solaris tries sun before pc, so releases predating the rename
// resolve the old spelling.
func vendorCandidates(vendor, osBase string) []string {
	var subs []string
	switch osBase {
	case "darwin", "ios", "tvos":
		subs = []string{"apple"}
	case "windows":
		subs = []string{"pc"}
	case "solaris":
		subs = []string{"sun", "pc"}
	default:
		subs = []string{"unknown", "pc"}
	}
	out := []string{vendor}
	for _, s := range subs {
		if s != vendor {
			out = append(out, s)
		}
	}
	return out
}

// cpuCandidates rewrites the CPU token to rustc's vocabulary. ARM inputs fan
// out by probed architecture facts.
func cpuCandidates(triple platform.Triple, arm *ArmTargetFacts) []string {
	cpu := triple.CPU
	switch cpu {
	case "i386", "i486", "i586":
		return []string{"i686"}
	case "arm64":
		return []string{"aarch64"}
	}
	if triple.CanonicalCPU() != "arm" {
		return []string{cpu}
	}

	if arm != nil {
		switch {
		case arm.Arch >= 7 && arm.FPU == "neon" && arm.Thumb2:
			return []string{"thumbv7neon", "armv7"}
		case arm.Arch >= 7:
			return []string{"armv7"}
		case arm.Arch == 6:
			return []string{"armv6"}
		case arm.Arch <= 5:
			return []string{"armv4t"}
		}
	}
	if cpu == "arm" && triple.IsAndroid() {
		// Bare "arm" on Android means the v7 baseline.
		return []string{"armv7"}
	}
	return []string{cpu}
}
