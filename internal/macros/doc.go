// Package macros runs candidate compiler binaries in preprocessor mode and
// parses the emitted #define lines into immutable symbol tables. It is the
// lowest layer of the toolchain resolution pipeline: everything above it
// works on macro tables, never on raw compiler output.
package macros
