package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/MrShwhale/ftml/internal/output"
	"github.com/MrShwhale/ftml/internal/page"
	"github.com/MrShwhale/ftml/internal/settings"
	"github.com/MrShwhale/ftml/internal/version"
)

// увеличивать при изменении формата CachePayload
const cacheSchemaVersion uint16 = 1

// Digest is the key of a cached render.
type Digest [32]byte

// RenderCache keeps rendered HTML on disk, keyed by everything that affects
// the output. Thread-safe for concurrent access.
type RenderCache struct {
	mu  sync.RWMutex
	dir string
}

// CachePayload is one cached render.
type CachePayload struct {
	Schema uint16
	Output output.HtmlOutput
}

// OpenRenderCache opens (creating if needed) the cache under
// $XDG_CACHE_HOME/app, or dir when it is not empty.
func OpenRenderCache(app, dir string) (*RenderCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, app)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &RenderCache{dir: dir}, nil
}

// CacheKey hashes the input together with the page, the settings and the
// generator version.
func CacheKey(input string, info *page.PageInfo, s settings.Settings, ver string) Digest {
	h := sha256.New()
	write := func(parts ...string) {
		for _, p := range parts {
			_, _ = h.Write([]byte(strconv.Itoa(len(p))))
			_, _ = h.Write([]byte{':'})
			_, _ = h.Write([]byte(p))
		}
	}
	write(ver, input, info.Page, info.Site, info.Title, info.Language,
		strconv.FormatFloat(info.Rating, 'g', -1, 64))
	if info.Category != nil {
		write("category", *info.Category)
	}
	if info.AltTitle != nil {
		write("alt", *info.AltTitle)
	}
	write(info.Tags...)
	write(fmt.Sprintf("%+v", s))

	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

func (c *RenderCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первым двум символам, чтобы не раздувать один каталог
	return filepath.Join(c.dir, hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a render to the cache.
func (c *RenderCache) Put(key Digest, out *output.HtmlOutput) (err error) {
	if c == nil {
		return nil
	}
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
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(&CachePayload{Schema: cacheSchemaVersion, Output: *out}); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a cached render. A missing entry or an entry of another schema
// is a miss, not an error.
func (c *RenderCache) Get(key Digest) (*output.HtmlOutput, bool, error) {
	if c == nil {
		return nil, false, nil
	}
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

	var payload CachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false, nil
	}
	return &payload.Output, true, nil
}

// DropAll removes every cached render.
func (c *RenderCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(c.dir)
}

func cacheVersion(opts Options) string {
	if opts.Version != "" {
		return opts.Version
	}
	return version.Version
}
