package toolchain_test

import (
	"strconv"

	"anvil/internal/testkit"
)

// Fixture compilers are composed the way the real ones behave: a base macro
// table for the driver, per-extension deltas, and per-flag deltas that model
// what the driver would do with that argument. Unknown arguments are
// ignored, like a driver mapping an old dialect spelling to a lower
// standard.

func gccBase(major, minor, patch int) testkit.CompilerSpec {
	return testkit.CompilerSpec{
		"": {
			"__GNUC__":            strconv.Itoa(major),
			"__GNUC_MINOR__":      strconv.Itoa(minor),
			"__GNUC_PATCHLEVEL__": strconv.Itoa(patch),
			"__STDC__":            "1",
			"__STDC_VERSION__":    "201112L",
		},
	}
}

// gccSpec models a modern gcc driver: C11 by default, C17 behind -std=gnu17.
func gccSpec(major, minor, patch int) testkit.CompilerSpec {
	return gccBase(major, minor, patch).Merge(testkit.CompilerSpec{
		"-std=gnu17": {"__STDC_VERSION__": "201710L"},
	})
}

func gxxSpec(major, minor, patch int) testkit.CompilerSpec {
	return gccBase(major, minor, patch).Merge(testkit.CompilerSpec{
		"": {
			"__STDC_VERSION__": testkit.Undef,
			"__cplusplus":      "201402L",
		},
		"-std=gnu++17": {"__cplusplus": "201703L"},
	})
}

func clangBase(major, minor, patch int) testkit.CompilerSpec {
	return testkit.CompilerSpec{
		"": {
			"__clang_major__":      strconv.Itoa(major),
			"__clang_minor__":      strconv.Itoa(minor),
			"__clang_patchlevel__": strconv.Itoa(patch),
			"__clang__":            "1",
			// clang impersonates an old gcc
			"__GNUC__":            "4",
			"__GNUC_MINOR__":      "2",
			"__GNUC_PATCHLEVEL__": "1",
			"__STDC__":            "1",
			"__STDC_VERSION__":    "201112L",
		},
		"-std=gnu17": {"__STDC_VERSION__": "201710L"},
	}
}

func clangSpec(major, minor, patch int) testkit.CompilerSpec {
	return clangBase(major, minor, patch)
}

func clangxxSpec(major, minor, patch int) testkit.CompilerSpec {
	return clangBase(major, minor, patch).Merge(testkit.CompilerSpec{
		"": {
			"__STDC_VERSION__": testkit.Undef,
			"__cplusplus":      "201402L",
		},
		"-std=gnu++17": {"__cplusplus": "201703L"},
	})
}

// appleClangSpec carries the Xcode build marker that triggers the version
// remap.
func appleClangSpec(xcodeMajor, xcodeMinor, xcodePatch int) testkit.CompilerSpec {
	return clangBase(xcodeMajor, xcodeMinor, xcodePatch).Merge(testkit.CompilerSpec{
		"": {"__apple_build_version__": "13000029"},
	})
}

func appleClangxxSpec(xcodeMajor, xcodeMinor, xcodePatch int) testkit.CompilerSpec {
	return appleClangSpec(xcodeMajor, xcodeMinor, xcodePatch).Merge(testkit.CompilerSpec{
		"": {
			"__STDC_VERSION__": testkit.Undef,
			"__cplusplus":      "201402L",
		},
		"-std=gnu++17": {"__cplusplus": "201703L"},
	})
}

// clangClSpec compiles both languages through one driver, so the language
// deltas hang off the translation unit extension.
func clangClSpec(major, minor, patch int) testkit.CompilerSpec {
	return testkit.CompilerSpec{
		"": {
			"__clang_major__":      strconv.Itoa(major),
			"__clang_minor__":      strconv.Itoa(minor),
			"__clang_patchlevel__": strconv.Itoa(patch),
			"__clang__":            "1",
			"_MSC_VER":             "1929",
			"_MSC_FULL_VER":        "192930133",
		},
		"*.c":        {"__STDC__": "1", "__STDC_VERSION__": "201112L"},
		"*.cpp":      {"__cplusplus": "201402L"},
		"-std=gnu17": {"__STDC_VERSION__": "201710L"},
		"-std:c++17": {"__cplusplus": "201703L"},
	}
}

func msvcSpec() testkit.CompilerSpec {
	return testkit.CompilerSpec{
		"":      {"_MSC_VER": "1929", "_MSC_FULL_VER": "192930133"},
		"*.c":   {"__STDC__": "1", "__STDC_VERSION__": "201112L"},
		"*.cpp": {"__cplusplus": "201402L"},
	}
}

// Platform deltas, merged on top of a compiler spec.

func onLinuxX86_64() testkit.CompilerSpec {
	return testkit.CompilerSpec{
		"": {
			"__x86_64__":              "1",
			"__linux__":               "1",
			"__BYTE_ORDER__":          "1234",
			"__ORDER_LITTLE_ENDIAN__": "1234",
			"__ORDER_BIG_ENDIAN__":    "4321",
		},
		"-m32": {"__x86_64__": testkit.Undef, "__i386__": "1"},
	}
}

func onLinuxX86() testkit.CompilerSpec {
	return testkit.CompilerSpec{
		"": {
			"__i386__":                "1",
			"__linux__":               "1",
			"__BYTE_ORDER__":          "1234",
			"__ORDER_LITTLE_ENDIAN__": "1234",
			"__ORDER_BIG_ENDIAN__":    "4321",
		},
		"-m64": {"__i386__": testkit.Undef, "__x86_64__": "1"},
	}
}

func onDarwinX86_64() testkit.CompilerSpec {
	return testkit.CompilerSpec{
		"": {
			"__x86_64__":              "1",
			"__APPLE__":               "1",
			"__BYTE_ORDER__":          "1234",
			"__ORDER_LITTLE_ENDIAN__": "1234",
			"__ORDER_BIG_ENDIAN__":    "4321",
		},
	}
}

func onWindowsX86_64() testkit.CompilerSpec {
	return testkit.CompilerSpec{
		"": {"_M_X64": "100", "_WIN32": "1"},
	}
}

// crossToDarwin teaches a clang fixture to honor --target for an Apple
// platform.
func crossToDarwin(target string) testkit.CompilerSpec {
	return testkit.CompilerSpec{
		"--target=" + target: {
			"__linux__": testkit.Undef,
			"__APPLE__": "1",
		},
	}
}
