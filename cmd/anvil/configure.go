package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"anvil/internal/diag"
	"anvil/internal/envx"
	"anvil/internal/macros"
	"anvil/internal/observ"
	"anvil/internal/platform"
	"anvil/internal/project"
	"anvil/internal/rust"
	"anvil/internal/sdk"
	"anvil/internal/toolchain"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Resolve and validate the build toolchains",
	Long: `Configure finds the C and C++ compilers for the target and host roles,
checks that they form a consistent suite for the requested platform, maps
the target triple for rustc and prints the produced configuration values`,
	RunE: runConfigure,
}

func init() {
	configureCmd.Flags().String("target", "", "target platform triple (cpu-vendor-os)")
	configureCmd.Flags().String("host", "", "host platform triple (defaults to --target)")
	configureCmd.Flags().String("cc", "", "target C compiler")
	configureCmd.Flags().String("cxx", "", "target C++ compiler")
	configureCmd.Flags().String("host-cc", "", "host C compiler")
	configureCmd.Flags().String("host-cxx", "", "host C++ compiler")
	configureCmd.Flags().String("macos-sdk", "", "macOS SDK path (skips the xcrun query)")
	configureCmd.Flags().String("macos-min-version", "", "minimum macOS version for sysroot flags")
	configureCmd.Flags().Bool("artifact-builds", false, "configure for artifact-only builds")
	configureCmd.Flags().Bool("skip-rust", false, "do not resolve the Rust toolchain")
	configureCmd.Flags().Bool("no-probe-cache", false, "disable the on-disk probe cache")
	configureCmd.Flags().Bool("prefer-version-mismatch", false,
		"report C/C++ version mismatch over a too-old C++ compiler")
}

// firstOf returns the first non-empty value, implementing the
// flag > environment > manifest precedence.
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func runConfigure(cmd *cobra.Command, args []string) error {
	reporter, err := newReporter(cmd)
	if err != nil {
		return err
	}
	if err := configure(cmd, reporter); err != nil {
		reporter.Report(err)
		return err
	}
	return nil
}

func configure(cmd *cobra.Command, reporter *diag.Reporter) error {
	flags := cmd.Flags()
	getString := func(name string) string {
		v, _ := flags.GetString(name)
		return v
	}
	getBool := func(name string) bool {
		v, _ := flags.GetBool(name)
		return v
	}

	env := envx.Read()
	manifest, found, err := project.Load(".")
	if err != nil {
		return err
	}
	var cfg project.Config
	if found {
		cfg = manifest.Config
		reporter.Info("using %s", manifest.Path)
	} else {
		cfg.MacOS.MinVersion = project.DefaultMacOSMinVersion
	}

	targetRaw := firstOf(getString("target"), cfg.Build.Target)
	if targetRaw == "" {
		return fmt.Errorf("no target triple: pass --target or set [build].target in anvil.toml")
	}
	target, err := platform.ParseTriple(targetRaw)
	if err != nil {
		return err
	}
	hostRaw := firstOf(getString("host"), cfg.Build.Host, targetRaw)
	host, err := platform.ParseTriple(hostRaw)
	if err != nil {
		return err
	}

	runner := macros.ExecRunner{}
	extractor := macros.NewExtractor(runner)
	if !getBool("no-probe-cache") {
		if disk, err := macros.OpenDiskCache("anvil"); err == nil {
			extractor.Disk = disk
		} else {
			// A cacheless run is just slower, never wrong.
			reporter.Warn("probe cache unavailable: %v", err)
		}
	}
	prober := &toolchain.Prober{Extractor: extractor}
	resolver := &toolchain.Resolver{Prober: prober, Paths: runner}

	timer := observ.NewTimer()

	req := toolchain.Request{
		Target: target,
		Host:   host,
		Overrides: toolchain.Overrides{
			CC:      firstOf(getString("cc"), env.CC, cfg.Toolchain.CC),
			CXX:     firstOf(getString("cxx"), env.CXX, cfg.Toolchain.CXX),
			HostCC:  firstOf(getString("host-cc"), env.HostCC, cfg.Toolchain.HostCC),
			HostCXX: firstOf(getString("host-cxx"), env.HostCXX, cfg.Toolchain.HostCXX),
		},
		MacOSMinVersion: firstOf(getString("macos-min-version"), cfg.MacOS.MinVersion),
		ArtifactBuild:   getBool("artifact-builds") || cfg.Build.ArtifactBuilds,
		Policy: toolchain.Policy{
			PreferVersionMismatch: getBool("prefer-version-mismatch"),
		},
	}

	if target.IsApple() || host.IsApple() {
		phase := timer.Begin("sdk")
		locator := &sdk.Locator{
			Runner:   runner,
			Paths:    runner,
			Override: firstOf(getString("macos-sdk"), env.SDKPath, cfg.MacOS.SDK),
		}
		req.SDKPath, err = locator.Locate(cmd.Context())
		timer.End(phase, req.SDKPath)
		if err != nil {
			return err
		}
	}

	// Artifact builds run off prebuilt binaries: no compiler is probed and
	// the library layout is assumed MSVC-style where that matters.
	tc := &toolchain.Toolchain{}
	msvcLayout := req.ArtifactBuild
	if !req.ArtifactBuild {
		phase := timer.Begin("probe")
		tc, err = resolver.Resolve(cmd.Context(), req)
		timer.End(phase, "")
		if err != nil {
			return err
		}
		msvcLayout = tc.TargetC.Family == toolchain.FamilyClangCL ||
			tc.TargetC.Family == toolchain.FamilyMSVC
	}
	libNames, err := platform.ResolveLibraryNames(target.OS, msvcLayout)
	if err != nil {
		return err
	}

	var rustTC *rust.Toolchain
	var rustTriple string
	if !getBool("skip-rust") {
		phase := timer.Begin("rust")
		rustTC, rustTriple, err = configureRust(cmd, target, env, cfg, extractor, tc, msvcLayout)
		timer.End(phase, rustTriple)
		if err != nil {
			return err
		}
	}

	printConfiguration(cmd, tc, libNames, rustTC, rustTriple)
	if timingsEnabled(cmd) {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}

// configureRust discovers rustc/cargo and maps the target triple, deriving
// the ARM flavor from what the target C compiler actually reports.
func configureRust(cmd *cobra.Command, target platform.Triple, env envx.Overrides,
	cfg project.Config, extractor *macros.Extractor, tc *toolchain.Toolchain,
	msvcLayout bool) (*rust.Toolchain, string, error) {

	runner := macros.ExecRunner{}
	disc := &rust.Discoverer{Runner: runner, Paths: runner}
	rustcName := firstOf(env.Rustc, cfg.Rust.Rustc, "rustc")
	cargoName := firstOf(env.Cargo, cfg.Rust.Cargo, "cargo")
	rustTC, err := disc.Discover(cmd.Context(), rustcName, cargoName)
	if err != nil {
		return nil, "", err
	}

	var arm *rust.ArmTargetFacts
	if target.CanonicalCPU() == "arm" && tc.TargetC != nil {
		table, err := extractor.Extract(cmd.Context(), tc.TargetC.Path, tc.TargetC.Language, tc.TargetC.Flags)
		if err == nil {
			arm = rust.ArmFactsFromMacros(table)
		}
	}

	catalog := &rust.Catalog{Runner: runner}
	table, err := catalog.Lookup(cmd.Context(), rustTC.Rustc)
	if err != nil {
		return nil, "", err
	}
	triple, err := rust.MapTriple(target, arm, msvcLayout, table)
	if err != nil {
		return nil, "", err
	}
	return rustTC, triple, nil
}

var configLabel = color.New(color.FgGreen, color.Bold)

func printConfiguration(cmd *cobra.Command, tc *toolchain.Toolchain,
	libNames platform.LibraryNames, rustTC *rust.Toolchain, rustTriple string) {

	colorOn, _ := useColor(cmd)
	out := cmd.OutOrStdout()
	line := func(label, format string, args ...any) {
		if colorOn {
			label = configLabel.Sprint(label)
		}
		fmt.Fprintf(out, "%-24s %s\n", label, fmt.Sprintf(format, args...))
	}

	if tc.TargetC != nil {
		line("target C compiler:", "%s", tc.TargetC)
		line("target C++ compiler:", "%s", tc.TargetCXX)
		line("host C compiler:", "%s", tc.HostC)
		line("host C++ compiler:", "%s", tc.HostCXX)
	}
	line("library names:", "dll=%s*%s lib=%s*%s obj=*%s",
		libNames.DLLPrefix, libNames.DLLSuffix, libNames.LibPrefix, libNames.LibSuffix, libNames.ObjSuffix)
	if rustTC != nil {
		line("rust target:", "%s", rustTriple)
		line("rustc:", "%s (%s)", rustTC.Rustc.Path, rustTC.Rustc.Release)
		line("cargo:", "%s (%s)", rustTC.Cargo.Path, rustTC.Cargo.Release)
	}
}
