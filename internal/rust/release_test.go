package rust

import "testing"

func TestParseRelease(t *testing.T) {
	r, err := ParseRelease("1.76.0")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.Major != 1 || r.Minor != 76 || r.Patch != 0 {
		t.Fatalf("r = %+v", r)
	}

	nightly, err := ParseRelease("1.77.0-nightly")
	if err != nil {
		t.Fatalf("parse nightly: %v", err)
	}
	if nightly.Minor != 77 || nightly.String() != "1.77.0-nightly" {
		t.Fatalf("nightly = %+v", nightly)
	}

	if _, err := ParseRelease("stable"); err == nil {
		t.Fatalf("expected parse failure")
	}
}

func TestReleaseCompare(t *testing.T) {
	old, _ := ParseRelease("1.75.0")
	cur, _ := ParseRelease("1.76.0")
	if old.Compare(cur) != -1 || cur.Compare(old) != 1 || cur.Compare(cur) != 0 {
		t.Fatalf("ordering broken")
	}
}

func TestReleaseSameSeries(t *testing.T) {
	a, _ := ParseRelease("1.76.0")
	b, _ := ParseRelease("1.76.1")
	c, _ := ParseRelease("1.77.0")
	if !a.SameSeries(b) {
		t.Fatalf("patch levels may differ within a series")
	}
	if a.SameSeries(c) {
		t.Fatalf("different minor is a different series")
	}
}
