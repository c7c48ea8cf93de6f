package macros

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Extractor memoizes probe results per run, keyed by (path, language,
// flags). The same binary gets probed for several purposes (family check,
// dialect check, bit-toggle check), so the memo avoids repeated subprocess
// invocations. Probe errors are memoized too: retrying an absent or broken
// binary within one run cannot succeed.
//
// The resolution pipeline is strictly sequential; the singleflight group is
// there so the memo also stays correct for any future concurrent caller.
type Extractor struct {
	Runner Runner
	Disk   *DiskCache

	mu    sync.Mutex
	memo  map[string]extractResult
	group singleflight.Group
}

type extractResult struct {
	table Table
	err   error
}

func NewExtractor(r Runner) *Extractor {
	return &Extractor{Runner: r, memo: make(map[string]extractResult)}
}

// Extract returns the macro table for (path, lang, flags), probing at most
// once per run for a given key.
func (e *Extractor) Extract(ctx context.Context, path string, lang Language, flags []string) (Table, error) {
	key := memoKey(path, lang, flags)

	e.mu.Lock()
	if e.memo == nil {
		e.memo = make(map[string]extractResult)
	}
	if res, ok := e.memo[key]; ok {
		e.mu.Unlock()
		return res.table, res.err
	}
	e.mu.Unlock()

	v, _, _ := e.group.Do(key, func() (any, error) {
		res := e.extract(ctx, path, lang, flags)
		e.mu.Lock()
		e.memo[key] = res
		e.mu.Unlock()
		return res, nil
	})
	res := v.(extractResult)
	return res.table, res.err
}

func (e *Extractor) extract(ctx context.Context, path string, lang Language, flags []string) extractResult {
	if e.Disk != nil {
		if t, ok := e.Disk.Get(path, lang, flags); ok {
			return extractResult{table: t}
		}
	}
	t, err := Probe(ctx, e.Runner, path, lang, flags)
	if err == nil && e.Disk != nil {
		// Cache failures are non-fatal: the probe result stands on its own.
		_ = e.Disk.Put(path, lang, flags, t)
	}
	return extractResult{table: t, err: err}
}

func memoKey(path string, lang Language, flags []string) string {
	return path + "\x00" + lang.String() + "\x00" + strings.Join(flags, "\x1f")
}
