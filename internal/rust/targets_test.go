package rust

import (
	"context"
	"testing"
)

func TestCatalogQueriesOncePerRelease(t *testing.T) {
	runner := newRustRunner("1.76.0", "1.76.0", false)
	tool := runner.tools["/usr/bin/rustc"]
	tool.targets = []string{"x86_64-unknown-linux-gnu", "wasm32-wasi"}
	runner.tools["/usr/bin/rustc"] = tool

	rustc := Tool{Path: "/usr/bin/rustc", Release: Release{Major: 1, Minor: 76, Raw: "1.76.0"}}
	catalog := &Catalog{Runner: runner}

	table, err := catalog.Lookup(context.Background(), rustc)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !table.Supports("wasm32-wasi") || table.Supports("wasm32-wasip1") {
		t.Fatalf("unexpected table contents")
	}
	if table.Len() != 2 {
		t.Fatalf("Len() = %d", table.Len())
	}

	before := runner.calls
	if _, err := catalog.Lookup(context.Background(), rustc); err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if runner.calls != before {
		t.Fatalf("target list queried twice for one release")
	}
}
