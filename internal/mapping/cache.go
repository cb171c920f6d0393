package mapping

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Increment when the payload layout changes.
const cacheSchemaVersion uint16 = 1

// Cache keeps decoded mapping sets on disk, keyed by the SHA-256 of the
// mapping file. Safe for concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema  uint16  `msgpack:"schema"`
	Format  string  `msgpack:"format"`
	Entries []Entry `msgpack:"entries"`
}

// OpenCache returns the cache under $XDG_CACHE_HOME/<app>, falling back
// to ~/.cache/<app>.
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewCache(filepath.Join(base, app))
}

// NewCache opens a cache rooted at dir, creating it if needed.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) Dir() string { return c.dir }

func (c *Cache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "mappings", hex.EncodeToString(key[:])+".mp")
}

// Load returns the set for the mapping file at path, decoding it only
// when the cache has no entry for its content. A nil cache just loads.
func (c *Cache) Load(path string) (set *Set, hit bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	if c == nil {
		set, err = Parse(path, data)
		return set, false, err
	}
	key := sha256.Sum256(append([]byte(FormatOf(path).String()+"\x00"), data...))
	if set, ok, err := c.get(key); err == nil && ok {
		return set, true, nil
	}
	set, err = Parse(path, data)
	if err != nil {
		return nil, false, err
	}
	if err := c.put(key, FormatOf(path), set); err != nil {
		return set, false, fmt.Errorf("mapping cache: %w", err)
	}
	return set, false, nil
}

func (c *Cache) put(key [32]byte, format Format, set *Set) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	payload := cachePayload{Schema: cacheSchemaVersion, Format: format.String(), Entries: set.Entries()}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// атомарная замена
	return os.Rename(f.Name(), p)
}

func (c *Cache) get(key [32]byte) (*Set, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false, nil
	}
	set := NewSet()
	for _, e := range payload.Entries {
		set.Add(e.Obf, e.Deobf)
	}
	return set, true, nil
}

// Clear removes every cached set.
func (c *Cache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "mappings"))
}
