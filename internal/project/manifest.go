package project

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest is a located and parsed anvil.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the anvil.toml sections. Every section and key is
// optional; flags and environment variables override whatever is here.
type Config struct {
	Build     BuildConfig     `toml:"build"`
	Toolchain ToolchainConfig `toml:"toolchain"`
	Rust      RustConfig      `toml:"rust"`
	MacOS     MacOSConfig     `toml:"macos"`
}

type BuildConfig struct {
	Target         string `toml:"target"`
	Host           string `toml:"host"`
	ArtifactBuilds bool   `toml:"artifact-builds"`
}

type ToolchainConfig struct {
	CC      string `toml:"cc"`
	CXX     string `toml:"cxx"`
	HostCC  string `toml:"host-cc"`
	HostCXX string `toml:"host-cxx"`
}

type RustConfig struct {
	Rustc string `toml:"rustc"`
	Cargo string `toml:"cargo"`
}

type MacOSConfig struct {
	SDK        string `toml:"sdk"`
	MinVersion string `toml:"min-version"`
}

// DefaultMacOSMinVersion is used when [macos].min-version is absent.
const DefaultMacOSMinVersion = "10.15"

// Load reads the manifest found by upward search. A missing manifest is not
// an error: everything it configures has a flag or environment fallback.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindAnvilToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadConfig(path string) (Config, error) {
	cfg := Config{MacOS: MacOSConfig{MinVersion: DefaultMacOSMinVersion}}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, key)
	}
	return cfg, nil
}
