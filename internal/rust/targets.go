package rust

import (
	"context"
	"strings"

	"anvil/internal/diag"
	"anvil/internal/macros"
)

// TargetTable is the set of triples one rustc release can build for.
type TargetTable struct {
	release Release
	triples map[string]struct{}
}

// Supports reports whether the release ships the given target triple.
func (t *TargetTable) Supports(triple string) bool {
	_, ok := t.triples[triple]
	return ok
}

// Release is the rustc release the table was read from.
func (t *TargetTable) Release() Release { return t.release }

// Len is the number of supported triples.
func (t *TargetTable) Len() int { return len(t.triples) }

// NewTargetTable builds a table from an explicit triple list. Tests and
// offline callers feed it the shipped lists directly.
func NewTargetTable(release Release, triples []string) *TargetTable {
	t := &TargetTable{release: release, triples: make(map[string]struct{}, len(triples))}
	for _, triple := range triples {
		t.triples[triple] = struct{}{}
	}
	return t
}

// Catalog caches target tables per release, so a run that maps several
// triples queries rustc once.
type Catalog struct {
	Runner macros.Runner
	tables map[string]*TargetTable
}

// Lookup returns the target table for the given rustc, querying
// `--print target-list` on first use per release.
func (c *Catalog) Lookup(ctx context.Context, rustc Tool) (*TargetTable, error) {
	if t, ok := c.tables[rustc.Release.Raw]; ok {
		return t, nil
	}
	stdout, stderr, code, err := c.Runner.Run(ctx, rustc.Path, "--print", "target-list")
	if err != nil {
		return nil, diag.Errorf(diag.ProcessNotFound, "failed to execute `%s`: %v", rustc.Path, err)
	}
	if code != 0 {
		return nil, diag.Errorf(diag.ProbeFailed, "`%s --print target-list` failed: %s", rustc.Path, firstLine(stderr))
	}
	var triples []string
	for _, line := range strings.Split(stdout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			triples = append(triples, line)
		}
	}
	t := NewTargetTable(rustc.Release, triples)
	if c.tables == nil {
		c.tables = make(map[string]*TargetTable)
	}
	c.tables[rustc.Release.Raw] = t
	return t, nil
}
