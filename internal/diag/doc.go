// Package diag defines the diagnostic codes and terminal error type used by
// the toolchain resolution pipeline. Codes are grouped by subsystem: 1xxx
// probe, 2xxx toolchain, 3xxx target, 4xxx platform, 5xxx rust.
package diag
