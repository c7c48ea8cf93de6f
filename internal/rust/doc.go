// Package rust discovers the installed Rust toolchain and translates
// autoconf-style platform triples into the spelling rustc understands,
// validated against the supported-target list of the resolved release.
package rust
