package toolchain

import (
	"context"
	"path/filepath"

	"github.com/charlievieth/reonce"

	"anvil/internal/diag"
	"anvil/internal/macros"
	"anvil/internal/platform"
)

// Overrides carries explicit compiler choices. Empty fields fall back to
// derivation (C++) or the candidate search (C).
type Overrides struct {
	CC      string
	CXX     string
	HostCC  string
	HostCXX string
}

// Policy tunes diagnostic priority when several findings hold at once.
type Policy struct {
	// PreferVersionMismatch reports the C/C++ suite version mismatch even
	// when the C++ compiler would be rejected as too old on its own.
	PreferVersionMismatch bool
}

// Request is everything the resolver needs for one run.
type Request struct {
	Target          platform.Triple
	Host            platform.Triple
	Overrides       Overrides
	SDKPath         string
	MacOSMinVersion string
	ArtifactBuild   bool
	Policy          Policy
}

// Toolchain is a fully resolved and cross-checked set of compilers.
type Toolchain struct {
	TargetC   *CompilerResult
	TargetCXX *CompilerResult
	HostC     *CompilerResult
	HostCXX   *CompilerResult
}

// Resolver finds, probes and pairs the compilers for both roles.
type Resolver struct {
	Prober *Prober
	Paths  macros.PathResolver
}

// candidateNames lists the compiler names worth trying for a triple, in
// preference order. Only unversioned names: a versioned binary is something
// the user points at explicitly.
func candidateNames(triple platform.Triple) []string {
	switch triple.Kernel() {
	case "WINNT":
		return []string{"clang-cl", "clang"}
	case "Darwin":
		return []string{"clang"}
	}
	return []string{"clang", "gcc"}
}

// Resolve runs the full pipeline: target C, target consistency, target C++,
// suite pairing, then the same for the host, reusing the target results when
// the host is the same platform and nothing overrides it. Artifact builds
// consume prebuilt binaries, so no compiler is located or probed and the
// returned toolchain is empty.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Toolchain, error) {
	if req.ArtifactBuild {
		return &Toolchain{}, nil
	}

	tc := &Toolchain{}
	var err error

	tc.TargetC, err = r.resolveC(ctx, req.Target, req.Overrides.CC, false)
	if err != nil {
		return nil, err
	}
	if err := r.Prober.CheckConsistency(ctx, tc.TargetC, req.Target, false); err != nil {
		return nil, err
	}
	tc.TargetCXX, err = r.resolveCXX(ctx, req, tc.TargetC, req.Overrides.CXX, "target")
	if err != nil {
		return nil, err
	}

	sameHost := req.Host.Raw == req.Target.Raw &&
		req.Overrides.HostCC == "" && req.Overrides.HostCXX == ""
	if sameHost {
		hostC, hostCXX := *tc.TargetC, *tc.TargetCXX
		tc.HostC, tc.HostCXX = &hostC, &hostCXX
	} else {
		// The host C compiler honors HOST_CC, falls back to CC, and only
		// then searches.
		hostOverride := req.Overrides.HostCC
		if hostOverride == "" {
			hostOverride = req.Overrides.CC
		}
		tc.HostC, err = r.resolveC(ctx, req.Host, hostOverride, true)
		if err != nil {
			return nil, err
		}
		if err := r.Prober.CheckConsistency(ctx, tc.HostC, req.Host, true); err != nil {
			return nil, err
		}
		tc.HostCXX, err = r.resolveCXX(ctx, req, tc.HostC, req.Overrides.HostCXX, "host")
		if err != nil {
			return nil, err
		}
	}

	if req.SDKPath != "" {
		if req.Target.IsApple() {
			ApplySysroot(tc.TargetC, req.SDKPath, req.MacOSMinVersion)
			ApplySysroot(tc.TargetCXX, req.SDKPath, req.MacOSMinVersion)
		}
		if req.Host.IsApple() {
			ApplySysroot(tc.HostC, req.SDKPath, req.MacOSMinVersion)
			ApplySysroot(tc.HostCXX, req.SDKPath, req.MacOSMinVersion)
		}
	}
	return tc, nil
}

// resolveC locates and probes the C compiler for one role. An explicit
// override commits us to that binary; otherwise the first candidate found on
// PATH is the one we use, and any defect in it is a hard error rather than a
// reason to keep searching.
func (r *Resolver) resolveC(ctx context.Context, triple platform.Triple, override string, host bool) (*CompilerResult, error) {
	roleWord := "target"
	if host {
		roleWord = "host"
	}

	var path string
	if override != "" {
		p, err := r.Paths.LookPath(override)
		if err != nil {
			return nil, diag.Errorf(diag.NoCompilerFound,
				"Cannot find the %s C compiler", roleWord)
		}
		path = p
	} else {
		prefix := ""
		if !host {
			prefix = triple.Toolchain() + "-"
		}
		for _, name := range candidateNames(triple) {
			if prefix != "" {
				if p, err := r.Paths.LookPath(prefix + name); err == nil {
					path = p
					break
				}
			}
			if p, err := r.Paths.LookPath(name); err == nil {
				path = p
				break
			}
		}
		if path == "" {
			return nil, diag.Errorf(diag.NoCompilerFound,
				"Cannot find the %s C compiler", roleWord)
		}
	}
	return r.Prober.Probe(ctx, path, macros.LangC, triple)
}

var (
	gccDriverRe   = reonce.New(`gcc(-[\d.]+)?$`)
	clangDriverRe = reonce.New(`clang(-[\d.]+)?$`)
)

// cxxFromC derives the C++ driver name from the resolved C driver. clang-cl
// compiles both languages through one binary.
func cxxFromC(path string, family Family) string {
	if family == FamilyClangCL {
		return path
	}
	dir, base := filepath.Split(path)
	switch {
	case clangDriverRe.MatchString(base):
		base = clangDriverRe.ReplaceAllString(base, "clang++$1")
	case gccDriverRe.MatchString(base):
		base = gccDriverRe.ReplaceAllString(base, "g++$1")
	default:
		base += "++"
	}
	return dir + base
}

// resolveCXX locates and probes the C++ compiler next to an already resolved
// C compiler, then enforces that both come from the same suite at the same
// version.
func (r *Resolver) resolveCXX(ctx context.Context, req Request, c *CompilerResult, override, roleWord string) (*CompilerResult, error) {
	name := override
	if name == "" {
		name = cxxFromC(c.Path, c.Family)
	}
	path, err := r.Paths.LookPath(name)
	if err != nil {
		return nil, diag.Errorf(diag.NoCompilerFound,
			"Cannot find the %s C++ compiler", roleWord)
	}

	triple := req.Target
	if roleWord == "host" {
		triple = req.Host
	}
	cxx, err := r.Prober.Probe(ctx, path, macros.LangCXX, triple)
	if err != nil {
		if req.Policy.PreferVersionMismatch && diag.CodeOf(err) == diag.UnsupportedVersion {
			if swapped := r.versionMismatch(ctx, path, c, roleWord); swapped != nil {
				return nil, swapped
			}
		}
		return nil, err
	}

	if cxx.Family != c.Family {
		return nil, diag.Errorf(diag.MismatchedFamily,
			"The %s C compiler is %s, while the %s C++ compiler is %s. Need to use the same compiler suite.",
			roleWord, c.Family, roleWord, cxx.Family)
	}
	if !cxx.Version.Equal(c.Version) {
		return nil, diag.Errorf(diag.MismatchedVersion,
			"The %s C compiler is version %s, while the %s C++ compiler is version %s. Need to use the same compiler version.",
			roleWord, c.Version, roleWord, cxx.Version)
	}
	return cxx, nil
}

// versionMismatch re-describes a rejected C++ binary and, when it belongs to
// the same suite as the C compiler at a different version, builds the pairing
// diagnostic to report instead of the version rejection. The describe hits
// the probe memo, so this costs no extra subprocess.
func (r *Resolver) versionMismatch(ctx context.Context, path string, c *CompilerResult, roleWord string) error {
	info, err := r.Prober.describe(ctx, path, macros.LangCXX)
	if err != nil {
		return nil
	}
	if info.family != c.Family || info.version.Equal(c.Version) {
		return nil
	}
	return diag.Errorf(diag.MismatchedVersion,
		"The %s C compiler is version %s, while the %s C++ compiler is version %s. Need to use the same compiler version.",
		roleWord, c.Version, roleWord, info.version)
}
