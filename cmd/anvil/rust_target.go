package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"anvil/internal/envx"
	"anvil/internal/macros"
	"anvil/internal/platform"
	"anvil/internal/rust"
)

var rustTargetCmd = &cobra.Command{
	Use:   "rust-target",
	Short: "Map a platform triple to the rustc spelling",
	Long: `Rust-target translates one autoconf-style triple into the spelling the
installed rustc understands and validates it against the compiler's
supported-target list`,
	RunE: runRustTarget,
}

func init() {
	rustTargetCmd.Flags().String("target", "", "platform triple to translate (required)")
	rustTargetCmd.Flags().Int("arm-arch", 0, "ARM architecture revision the compiler targets")
	rustTargetCmd.Flags().Bool("arm-thumb2", false, "compiler targets thumb2")
	rustTargetCmd.Flags().String("arm-fpu", "", "ARM FPU flavor (e.g. neon)")
	rustTargetCmd.Flags().Bool("msvc", false, "resolved host compiler follows the MSVC layout")
	_ = rustTargetCmd.MarkFlagRequired("target")
}

func runRustTarget(cmd *cobra.Command, args []string) error {
	reporter, err := newReporter(cmd)
	if err != nil {
		return err
	}
	if err := rustTarget(cmd); err != nil {
		reporter.Report(err)
		return err
	}
	return nil
}

func rustTarget(cmd *cobra.Command) error {
	targetRaw, err := cmd.Flags().GetString("target")
	if err != nil {
		return fmt.Errorf("failed to get target flag: %w", err)
	}
	target, err := platform.ParseTriple(targetRaw)
	if err != nil {
		return err
	}

	var arm *rust.ArmTargetFacts
	if arch, _ := cmd.Flags().GetInt("arm-arch"); arch > 0 {
		thumb2, _ := cmd.Flags().GetBool("arm-thumb2")
		fpu, _ := cmd.Flags().GetString("arm-fpu")
		arm = &rust.ArmTargetFacts{Arch: arch, Thumb2: thumb2, FPU: fpu}
	}
	msvc, _ := cmd.Flags().GetBool("msvc")

	env := envx.Read()
	runner := macros.ExecRunner{}
	disc := &rust.Discoverer{Runner: runner, Paths: runner}
	rustcName := firstOf(env.Rustc, "rustc")
	cargoName := firstOf(env.Cargo, "cargo")
	tc, err := disc.Discover(cmd.Context(), rustcName, cargoName)
	if err != nil {
		return err
	}

	catalog := &rust.Catalog{Runner: runner}
	table, err := catalog.Lookup(cmd.Context(), tc.Rustc)
	if err != nil {
		return err
	}
	triple, err := rust.MapTriple(target, arm, msvc, table)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), triple)
	return nil
}
