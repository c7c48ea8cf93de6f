// Package toolchain is the inference engine of the configuration run: it
// classifies candidate compiler binaries by family and version from their
// preprocessor macro tables, negotiates the flags needed to reach the
// required language dialects, pairs C and C++ compilers for the target and
// host roles, and verifies that what a compiler produces matches the
// requested target triple.
package toolchain
