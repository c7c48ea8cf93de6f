package toolchain

import (
	"context"

	"anvil/internal/diag"
	"anvil/internal/platform"
)

// roleLabel is "Target" or "Host", used in consistency diagnostics.
func roleLabel(host bool) string {
	if host {
		return "Host"
	}
	return "Target"
}

func flagLabel(host bool) string {
	if host {
		return "--host"
	}
	return "--target"
}

// CheckConsistency compares the platform facts a resolved compiler reports
// against the nominal triple for its role, dimension by dimension: CPU,
// endianness, kernel. When the compiler can be steered to the requested
// platform (same-ISA bit-width toggles for gcc-like compilers, --target for
// clang), the steering flag is appended to the result instead of failing.
func (p *Prober) CheckConsistency(ctx context.Context, result *CompilerResult, triple platform.Triple, host bool) error {
	table, err := p.Extractor.Extract(ctx, result.Path, result.Language, nil)
	if err != nil {
		return err
	}
	facts := platform.FactsFromMacros(table)

	want := platform.Facts{
		CPU:        triple.CanonicalCPU(),
		Endianness: triple.Endianness(),
		Kernel:     triple.Kernel(),
	}

	var extra []string

	// Same ISA, different word size: a single compiler covers both via
	// -m32/-m64, so the architecture dimension is negotiable.
	if facts.CPU != want.CPU && result.Family.GCCLike() {
		if partner, ok := platform.BitwidthPartner(facts.CPU); ok && partner == want.CPU {
			toggle := platform.BitwidthToggle(want.CPU)
			toggled, err := p.Extractor.Extract(ctx, result.Path, result.Language, append(append([]string{}, result.Flags...), toggle))
			if err == nil {
				if got := platform.FactsFromMacros(toggled); got.CPU == want.CPU {
					facts = got
					extra = []string{toggle}
				}
			}
		}
	}

	if facts != want && result.Family == FamilyClang {
		// clang is inherently a cross compiler; ask it for the target
		// directly before giving up.
		flag := "--target=" + triple.Toolchain()
		retargeted, err := p.Extractor.Extract(ctx, result.Path, result.Language, append(append([]string{}, result.Flags...), flag))
		if err == nil {
			if got := platform.FactsFromMacros(retargeted); got == want {
				facts = got
				extra = []string{flag}
			}
		}
	}

	label := roleLabel(host)
	flagName := flagLabel(host)
	switch {
	case facts.CPU != want.CPU:
		return diag.Errorf(diag.TargetMismatchCPU,
			"%s C compiler target CPU (%s) does not match %s CPU (%s)",
			label, facts.CPU, flagName, want.CPU)
	case facts.Endianness != want.Endianness:
		return diag.Errorf(diag.TargetMismatchEndianness,
			"%s C compiler target endianness (%s) does not match %s endianness (%s)",
			label, facts.Endianness, flagName, want.Endianness)
	case facts.Kernel != want.Kernel:
		return diag.Errorf(diag.TargetMismatchKernel,
			"%s C compiler target kernel (%s) does not match %s kernel (%s)",
			label, facts.Kernel, flagName, want.Kernel)
	}

	result.Flags = append(result.Flags, extra...)
	return nil
}

// ApplySysroot prepends SDK sysroot and minimum-OS-version flags, ahead of
// any dialect or steering flags already present. Apple targets only.
func ApplySysroot(result *CompilerResult, sdkPath, minVersion string) {
	flags := []string{"-isysroot", sdkPath, "-mmacosx-version-min=" + minVersion}
	result.Flags = append(flags, result.Flags...)
}
