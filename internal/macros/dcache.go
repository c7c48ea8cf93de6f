package macros

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when diskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache persists probed macro tables across configuration runs. Only
// raw probe output is cached, never resolution results; and an entry is
// keyed by the binary's stat signature, so a reinstalled compiler misses
// naturally. Purely an acceleration layer over the per-run memo.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// diskPayload is the serialized probe result.
type diskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path   string
	Lang   uint8
	Flags  []string
	Macros map[string]string
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(path string, lang Language, flags []string) (string, error) {
	st, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%d\x00%d\x00%s\x00%s",
		path, st.ModTime().UnixNano(), st.Size(), lang.String(), strings.Join(flags, "\x1f"))
	key := hex.EncodeToString(h.Sum(nil))
	// Подкаталог "probes" для удобства очистки.
	return filepath.Join(c.dir, "probes", key+".mp"), nil
}

// Put serializes and writes a probed macro table to the disk cache.
func (c *DiskCache) Put(path string, lang Language, flags []string, t Table) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.pathFor(path, lang, flags)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	payload := diskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   path,
		Lang:   uint8(lang),
		Flags:  flags,
		Macros: t,
	}
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a cached macro table, reporting whether a valid entry existed.
func (c *DiskCache) Get(path string, lang Language, flags []string) (Table, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, err := c.pathFor(path, lang, flags)
	if err != nil {
		return nil, false
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var payload diskPayload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}
	return Table(payload.Macros), true
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
