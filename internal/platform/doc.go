// Package platform holds the static knowledge about target platforms:
// autoconf-style triple parsing, the macro symbols that identify a CPU,
// endianness and kernel, and the library naming conventions per OS.
package platform
