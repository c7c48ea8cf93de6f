package platform

import "testing"

func TestParseTriple(t *testing.T) {
	tr, err := ParseTriple("x86_64-pc-linux-gnu")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if tr.CPU != "x86_64" || tr.Vendor != "pc" || tr.OS != "linux-gnu" {
		t.Fatalf("unexpected parse: %+v", tr)
	}
}

func TestParseTripleRejectsShortStrings(t *testing.T) {
	for _, raw := range []string{"", "x86_64", "x86_64-linux", "x86_64--linux"} {
		if _, err := ParseTriple(raw); err == nil {
			t.Fatalf("expected %q to fail", raw)
		}
	}
}

func TestCanonicalCPU(t *testing.T) {
	cases := map[string]string{
		"i686-pc-linux-gnu":            "x86",
		"i386-unknown-openbsd":         "x86",
		"x86_64-pc-linux-gnu":          "x86_64",
		"powerpc-unknown-linux-gnu":    "ppc",
		"powerpc64le-unknown-linux":    "ppc64",
		"arm-unknown-linux-gnueabihf":  "arm",
		"armv7-unknown-linux-gnueabi":  "arm",
		"thumbv7neon-linux-androideabi": "arm",
		"arm64-apple-darwin20":         "aarch64",
		"mips64el-unknown-linux-gnu":   "mips64",
		"mipsel-unknown-linux-gnu":     "mips32",
		"sparc64-unknown-linux-gnu":    "sparc64",
	}
	for raw, want := range cases {
		tr, err := ParseTriple(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got := tr.CanonicalCPU(); got != want {
			t.Fatalf("CanonicalCPU(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestEndianness(t *testing.T) {
	cases := map[string]string{
		"x86_64-pc-linux-gnu":        "little",
		"powerpc64-unknown-linux":    "big",
		"powerpc64le-unknown-linux":  "little",
		"mips64el-unknown-linux-gnu": "little",
		"mips-unknown-linux-gnu":     "big",
		"sparc-sun-solaris2":         "big",
		"aarch64-unknown-linux-gnu":  "little",
	}
	for raw, want := range cases {
		tr, err := ParseTriple(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got := tr.Endianness(); got != want {
			t.Fatalf("Endianness(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestKernel(t *testing.T) {
	cases := map[string]string{
		"x86_64-pc-linux-gnu":          "Linux",
		"aarch64-unknown-linux-android": "Linux",
		"x86_64-apple-darwin20":        "Darwin",
		"x86_64-pc-mingw32":            "WINNT",
		"x86_64-pc-windows-msvc":       "WINNT",
		"x86_64-unknown-openbsd6.1":    "OpenBSD",
		"x86_64-sun-solaris2":          "SunOS",
		"wasm32-unknown-wasi":          "WASI",
	}
	for raw, want := range cases {
		tr, err := ParseTriple(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got := tr.Kernel(); got != want {
			t.Fatalf("Kernel(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestToolchainSpelling(t *testing.T) {
	// clang's --target drops the vendor except on Apple platforms.
	tr, _ := ParseTriple("x86_64-pc-linux-gnu")
	if got := tr.Toolchain(); got != "x86_64-linux-gnu" {
		t.Fatalf("Toolchain() = %q", got)
	}
	tr, _ = ParseTriple("aarch64-apple-darwin20")
	if got := tr.Toolchain(); got != "aarch64-apple-darwin20" {
		t.Fatalf("Toolchain() = %q", got)
	}
}

func TestBitwidthPartnerAndToggle(t *testing.T) {
	cases := []struct {
		cpu, partner, toggle string
	}{
		{"x86", "x86_64", "-m64"},
		{"x86_64", "x86", "-m32"},
		{"ppc", "ppc64", "-m64"},
		{"sparc64", "sparc", "-m32"},
	}
	for _, c := range cases {
		partner, ok := BitwidthPartner(c.cpu)
		if !ok || partner != c.partner {
			t.Fatalf("BitwidthPartner(%q) = %q, %v", c.cpu, partner, ok)
		}
		if got := BitwidthToggle(c.partner); got != c.toggle {
			t.Fatalf("BitwidthToggle(%q) = %q, want %q", c.partner, got, c.toggle)
		}
	}
	if _, ok := BitwidthPartner("aarch64"); ok {
		t.Fatalf("aarch64 has no word-size sibling")
	}
}
