package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Probe errors: spawning and reading candidate binaries
	ProbeInfo        Code = 1000
	ProcessNotFound  Code = 1001
	ProbeFailed      Code = 1002
	ProbeBadOutput   Code = 1003
	ProbeCacheStale  Code = 1004
	ProbeInterrupted Code = 1005

	// Toolchain errors: classification, policy, pairing
	ToolchainInfo      Code = 2000
	NotACompiler       Code = 2001
	UnsupportedVersion Code = 2002
	NoDialectSupport   Code = 2003
	MismatchedFamily   Code = 2004
	MismatchedVersion  Code = 2005
	NoCompilerFound    Code = 2006

	// Target errors: resolved facts vs. requested triple
	TargetInfo               Code = 3000
	TargetMismatchCPU        Code = 3001
	TargetMismatchEndianness Code = 3002
	TargetMismatchKernel     Code = 3003

	// Platform errors
	PlatformInfo    Code = 4000
	UnknownPlatform Code = 4001
	InvalidTriple   Code = 4002
	SDKNotFound     Code = 4003

	// Rust toolchain errors
	RustInfo              Code = 5000
	UnsupportedRustTriple Code = 5001
	ToolVersionMismatch   Code = 5002
	RustNotFound          Code = 5003
)

func (c Code) String() string {
	return fmt.Sprintf("ANV%04d", uint16(c))
}
