package rust

import (
	"anvil/internal/macros"
)

// ArmFactsFromMacros reads the ARM flavor out of a compiler's predefined
// macro table. The compiler, not the input triple, knows whether it builds
// for v7, thumb2 or NEON.
func ArmFactsFromMacros(t macros.Table) *ArmTargetFacts {
	arch, ok := t.Int("__ARM_ARCH")
	if !ok {
		// Older compilers spell it per architecture revision.
		switch {
		case t.Has("__ARM_ARCH_7A__"), t.Has("__ARM_ARCH_7__"):
			arch = 7
		case t.Has("__ARM_ARCH_6__"), t.Has("__ARM_ARCH_6K__"):
			arch = 6
		case t.Has("__ARM_ARCH_4T__"):
			arch = 4
		default:
			return nil
		}
	}
	facts := &ArmTargetFacts{Arch: arch, Thumb2: t.Has("__thumb2__")}
	if t.Has("__ARM_NEON") || t.Has("__ARM_NEON__") {
		facts.FPU = "neon"
	}
	return facts
}
