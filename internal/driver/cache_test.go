package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MrShwhale/ftml/internal/driver"
	"github.com/MrShwhale/ftml/internal/page"
	"github.com/MrShwhale/ftml/internal/settings"
)

func TestCacheKeyChangesWithInputs(t *testing.T) {
	info := page.Demo()
	s := settings.Default()
	base := driver.CacheKey("x", &info, s, "1")

	other := info
	other.Rating = 70
	draft := settings.FromMode(settings.ModeDraft)

	for name, key := range map[string]driver.Digest{
		"input":    driver.CacheKey("y", &info, s, "1"),
		"page":     driver.CacheKey("x", &other, s, "1"),
		"settings": driver.CacheKey("x", &info, draft, "1"),
		"version":  driver.CacheKey("x", &info, s, "2"),
	} {
		if key == base {
			t.Errorf("%s change did not change the key", name)
		}
	}
	if driver.CacheKey("x", &info, s, "1") != base {
		t.Errorf("key is not deterministic")
	}
}

func TestRenderFilesUsesCache(t *testing.T) {
	cache, err := driver.OpenRenderCache("ftml", t.TempDir())
	if err != nil {
		t.Fatalf("OpenRenderCache: %v", err)
	}
	path := filepath.Join(t.TempDir(), "c.ftml")
	if err := os.WriteFile(path, []byte("[[css]]\na{}\n[[/css]]\n**c**\n[[meta name=\"k\" content=\"v\"]]"), 0o600); err != nil {
		t.Fatal(err)
	}
	opts := driver.Options{Settings: settings.Default(), Cache: cache}

	first, err := driver.RenderFiles(context.Background(), []string{path}, page.Demo(), opts, 1)
	if err != nil || first[0].Err != nil {
		t.Fatalf("first render: %v %v", err, first[0].Err)
	}
	if first[0].Cached {
		t.Fatalf("first render should miss the cache")
	}

	second, err := driver.RenderFiles(context.Background(), []string{path}, page.Demo(), opts, 1)
	if err != nil || second[0].Err != nil {
		t.Fatalf("second render: %v %v", err, second[0].Err)
	}
	if !second[0].Cached {
		t.Fatalf("second render should hit the cache")
	}
	a, b := first[0].Render.Output, second[0].Render.Output
	if a.Body != b.Body || len(a.Styles) != len(b.Styles) || len(a.Meta) != len(b.Meta) {
		t.Fatalf("cached output differs:\n%+v\n%+v", a, b)
	}
	for i := range a.Meta {
		if a.Meta[i] != b.Meta[i] {
			t.Errorf("meta %d: %+v != %+v", i, a.Meta[i], b.Meta[i])
		}
	}

	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if _, ok, _ := cache.Get(driver.CacheKey("", &page.PageInfo{}, settings.Default(), "")); ok {
		t.Errorf("entry survived DropAll")
	}
}
