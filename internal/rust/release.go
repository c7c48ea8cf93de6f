package rust

import (
	"fmt"
	"strconv"
	"strings"
)

// Release is a Rust toolchain version as reported by the "release:" field of
// `rustc --version --verbose`. Pre-release suffixes ("1.77.0-nightly") are
// kept in Raw and ignored for ordering.
type Release struct {
	Major, Minor, Patch int
	Raw                 string
}

// ParseRelease reads "1.76.0" style release strings.
func ParseRelease(s string) (Release, error) {
	r := Release{Raw: s}
	core, _, _ := strings.Cut(s, "-")
	parts := strings.SplitN(core, ".", 3)
	dst := []*int{&r.Major, &r.Minor, &r.Patch}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Release{}, fmt.Errorf("invalid rust release %q", s)
		}
		*dst[i] = n
	}
	return r, nil
}

func (r Release) String() string {
	if r.Raw != "" {
		return r.Raw
	}
	return fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Patch)
}

// Compare returns -1, 0 or 1 by total order on (major, minor, patch).
func (r Release) Compare(o Release) int {
	for _, d := range [3]int{r.Major - o.Major, r.Minor - o.Minor, r.Patch - o.Patch} {
		if d < 0 {
			return -1
		}
		if d > 0 {
			return 1
		}
	}
	return 0
}

// SameSeries reports whether two releases share major.minor, which is how
// rustc and cargo from one toolchain relate (their patch levels may differ).
func (r Release) SameSeries(o Release) bool {
	return r.Major == o.Major && r.Minor == o.Minor
}
