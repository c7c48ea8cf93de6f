// Package sdk locates the Apple platform SDK used as the compiler sysroot.
package sdk

import (
	"context"
	"strings"

	"anvil/internal/diag"
	"anvil/internal/macros"
)

// Locator resolves the macOS SDK path. An explicit Override (configuration
// or --macos-sdk) short-circuits the xcrun query.
type Locator struct {
	Runner   macros.Runner
	Paths    macros.PathResolver
	Override string
}

// Locate returns the absolute SDK path for Apple targets.
func (l *Locator) Locate(ctx context.Context) (string, error) {
	if l.Override != "" {
		return l.Override, nil
	}
	xcrun, err := l.Paths.LookPath("xcrun")
	if err != nil {
		return "", diag.Errorf(diag.SDKNotFound,
			"Cannot find the macOS SDK: xcrun is not available and no SDK path was given")
	}
	stdout, stderr, code, err := l.Runner.Run(ctx, xcrun, "--sdk", "macosx", "--show-sdk-path")
	if err != nil {
		return "", diag.Errorf(diag.SDKNotFound, "failed to execute `%s`: %v", xcrun, err)
	}
	if code != 0 {
		return "", diag.Errorf(diag.SDKNotFound, "Cannot find the macOS SDK: %s",
			strings.TrimSpace(stderr))
	}
	path := strings.TrimSpace(stdout)
	if path == "" {
		return "", diag.Errorf(diag.SDKNotFound, "xcrun reported an empty SDK path")
	}
	return path, nil
}
