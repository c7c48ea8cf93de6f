package rust

import (
	"context"
	"strings"

	"github.com/charlievieth/reonce"

	"anvil/internal/diag"
	"anvil/internal/macros"
)

// Tool is one discovered Rust-side binary (rustc or cargo).
type Tool struct {
	Path    string
	Release Release
	Host    string
	// Wrapper is set when the binary is a toolchain-manager shim (rustup)
	// rather than the compiler itself. A shim accepts a `+stable` selector
	// argument; the real tool rejects it.
	Wrapper bool
}

// Toolchain pairs the discovered rustc and cargo.
type Toolchain struct {
	Rustc Tool
	Cargo Tool
}

var (
	releaseLineRe = reonce.New(`(?m)^release: (\S+)$`)
	hostLineRe    = reonce.New(`(?m)^host: (\S+)$`)
)

// Discoverer locates rustc and cargo and interrogates their versions.
type Discoverer struct {
	Runner macros.Runner
	Paths  macros.PathResolver
}

// Discover resolves both tools and enforces that they come from the same
// toolchain series.
func (d *Discoverer) Discover(ctx context.Context, rustcName, cargoName string) (*Toolchain, error) {
	rustc, err := d.describe(ctx, rustcName, "rustc")
	if err != nil {
		return nil, err
	}
	cargo, err := d.describe(ctx, cargoName, "cargo")
	if err != nil {
		return nil, err
	}
	if !rustc.Release.SameSeries(cargo.Release) {
		return nil, diag.Errorf(diag.ToolVersionMismatch,
			"rustc is version %s, while cargo is version %s. Need to use matching versions of rustc and cargo.",
			rustc.Release, cargo.Release)
	}
	return &Toolchain{Rustc: rustc, Cargo: cargo}, nil
}

func (d *Discoverer) describe(ctx context.Context, name, what string) (Tool, error) {
	path, err := d.Paths.LookPath(name)
	if err != nil {
		return Tool{}, diag.Errorf(diag.RustNotFound, "Cannot find %s", what)
	}
	stdout, stderr, code, err := d.Runner.Run(ctx, path, "--version", "--verbose")
	if err != nil {
		return Tool{}, diag.Errorf(diag.ProcessNotFound, "failed to execute `%s`: %v", path, err)
	}
	if code != 0 {
		return Tool{}, diag.Errorf(diag.ProbeFailed, "`%s --version --verbose` failed: %s", path, firstLine(stderr))
	}
	tool := Tool{Path: path}
	m := releaseLineRe.FindStringSubmatch(stdout)
	if m == nil {
		return Tool{}, diag.Errorf(diag.ProbeBadOutput, "`%s --version --verbose` did not report a release", path)
	}
	tool.Release, err = ParseRelease(m[1])
	if err != nil {
		return Tool{}, diag.Errorf(diag.ProbeBadOutput, "`%s` reported %v", path, err)
	}
	if m := hostLineRe.FindStringSubmatch(stdout); m != nil {
		tool.Host = m[1]
	}
	tool.Wrapper = d.sniffWrapper(ctx, path)
	if tool.Wrapper {
		if real, ok := d.unwrap(ctx, what); ok {
			tool.Path = real
		}
	}
	return tool, nil
}

// unwrap asks rustup which binary its shim dispatches to, so later queries
// hit the real tool instead of the proxy. A missing or unhelpful rustup
// leaves the shim path in place; the shim forwards everything anyway.
func (d *Discoverer) unwrap(ctx context.Context, name string) (string, bool) {
	rustup, err := d.Paths.LookPath("rustup")
	if err != nil {
		return "", false
	}
	stdout, _, code, err := d.Runner.Run(ctx, rustup, "which", name)
	if err != nil || code != 0 {
		return "", false
	}
	real := strings.TrimSpace(stdout)
	if real == "" {
		return "", false
	}
	return real, true
}

// sniffWrapper probes whether the binary forwards rustup-style `+toolchain`
// selectors. The real rustc exits 1 complaining it cannot read `+stable` as
// a file; cargo exits 101; the rustup shim accepts it.
func (d *Discoverer) sniffWrapper(ctx context.Context, path string) bool {
	_, _, code, err := d.Runner.Run(ctx, path, "+stable", "--version")
	return err == nil && code == 0
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
