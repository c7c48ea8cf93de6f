package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "anvil.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadParsesAllSections(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[build]
target = "x86_64-pc-linux-gnu"
artifact-builds = true

[toolchain]
cc = "clang"
host-cxx = "g++-9"

[rust]
rustc = "/opt/rust/bin/rustc"

[macos]
min-version = "11.0"
`)
	m, ok, err := Load(dir)
	if err != nil || !ok {
		t.Fatalf("load: %v %v", ok, err)
	}
	if m.Root != dir {
		t.Fatalf("root = %q", m.Root)
	}
	cfg := m.Config
	if cfg.Build.Target != "x86_64-pc-linux-gnu" || !cfg.Build.ArtifactBuilds {
		t.Fatalf("build = %+v", cfg.Build)
	}
	if cfg.Toolchain.CC != "clang" || cfg.Toolchain.HostCXX != "g++-9" {
		t.Fatalf("toolchain = %+v", cfg.Toolchain)
	}
	if cfg.Rust.Rustc != "/opt/rust/bin/rustc" {
		t.Fatalf("rust = %+v", cfg.Rust)
	}
	if cfg.MacOS.MinVersion != "11.0" {
		t.Fatalf("macos = %+v", cfg.MacOS)
	}
}

func TestLoadDefaultsMacOSMinVersion(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[build]\ntarget = \"x86_64-apple-darwin20\"\n")
	m, ok, err := Load(dir)
	if err != nil || !ok {
		t.Fatalf("load: %v %v", ok, err)
	}
	if m.Config.MacOS.MinVersion != DefaultMacOSMinVersion {
		t.Fatalf("min version = %q", m.Config.MacOS.MinVersion)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[build]\ntargett = \"typo\"\n")
	if _, _, err := Load(dir); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestLoadSearchesUpward(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[build]\ntarget = \"x86_64-pc-linux-gnu\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	m, ok, err := Load(nested)
	if err != nil || !ok {
		t.Fatalf("load: %v %v", ok, err)
	}
	if m.Root != root {
		t.Fatalf("root = %q, want %q", m.Root, root)
	}
}

func TestLoadMissingManifest(t *testing.T) {
	// Walking up from a temp dir must not find a manifest (unless the host
	// has one above the temp root, which would be a broken environment).
	_, ok, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok {
		t.Skipf("manifest found above the temp dir")
	}
}
