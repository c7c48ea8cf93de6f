// Package envx reads the environment overrides the resolver honors. The
// environment wins over the manifest; command-line flags win over both.
package envx

import (
	env "github.com/xyproto/env/v2"
)

// Overrides is every environment variable the configure pipeline consults.
type Overrides struct {
	CC      string
	CXX     string
	HostCC  string
	HostCXX string
	Rustc   string
	Cargo   string
	SDKPath string
}

// Read snapshots the override variables once per run.
func Read() Overrides {
	return Overrides{
		CC:      env.Str("CC"),
		CXX:     env.Str("CXX"),
		HostCC:  env.Str("HOST_CC"),
		HostCXX: env.Str("HOST_CXX"),
		Rustc:   env.Str("RUSTC"),
		Cargo:   env.Str("CARGO"),
		SDKPath: env.Str("MACOS_SDK_PATH"),
	}
}
