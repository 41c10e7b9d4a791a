// Package config loads ftml.toml, the per-site defaults of the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/MrShwhale/ftml/internal/page"
	"github.com/MrShwhale/ftml/internal/settings"
	"github.com/MrShwhale/ftml/internal/trace"
)

// FileName is the name of the site manifest.
const FileName = "ftml.toml"

var (
	// ErrUnknownKey is returned for keys ftml.toml does not define.
	ErrUnknownKey = errors.New("unknown key")
	// ErrPagesOutsideRoot is returned when [render].pages escapes the site root.
	ErrPagesOutsideRoot = errors.New("pages directory escapes site root")
)

// Site is the [site] section.
type Site struct {
	Name     string `toml:"name"`
	Language string `toml:"language"`
}

// Render is the [render] section.
type Render struct {
	Mode         string `toml:"mode"`
	MaxWarnings  uint   `toml:"max_warnings"`
	Preprocess   *bool  `toml:"preprocess"`
	MinifyStyles bool   `toml:"minify_styles"`
	Jobs         int    `toml:"jobs"`
	Pages        string `toml:"pages"` // каталог страниц относительно корня
}

// Page is the [page] section: defaults for every rendered page.
type Page struct {
	Category string   `toml:"category"`
	Title    string   `toml:"title"`
	AltTitle string   `toml:"alt_title"`
	Rating   float64  `toml:"rating"`
	Tags     []string `toml:"tags"`
}

// Trace is the [trace] section.
type Trace struct {
	Level  string `toml:"level"`
	Mode   string `toml:"mode"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// Config is a decoded ftml.toml.
type Config struct {
	Site   Site   `toml:"site"`
	Render Render `toml:"render"`
	Page   Page   `toml:"page"`
	Trace  Trace  `toml:"trace"`

	// Root is the directory holding the manifest; empty for Default.
	Root string `toml:"-"`
}

// Default is used when no ftml.toml is found.
func Default() *Config {
	return &Config{
		Site:   Site{Name: "sandbox", Language: "en"},
		Render: Render{Mode: settings.ModePage.String()},
		Trace:  Trace{Level: "off"},
	}
}

// Find walks up from startDir to locate ftml.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses the manifest at path. Missing keys keep their Default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	cfg.Root = filepath.Dir(path)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads the nearest ftml.toml above startDir, or Default.
func Discover(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) validate() error {
	if _, err := settings.ParseMode(c.Render.Mode); err != nil {
		return fmt.Errorf("[render].mode: %w", err)
	}
	if c.Render.Jobs < 0 {
		return fmt.Errorf("[render].jobs must not be negative, got %d", c.Render.Jobs)
	}
	if _, err := c.tracerConfig(); err != nil {
		return err
	}
	if c.Render.Pages != "" {
		if _, err := c.PagesDir(); err != nil {
			return err
		}
	}
	return nil
}

// Settings returns the render settings the manifest asks for.
func (c *Config) Settings() settings.Settings {
	mode, err := settings.ParseMode(c.Render.Mode)
	if err != nil {
		mode = settings.ModePage
	}
	s := settings.FromMode(mode)
	s.MaxWarnings = c.Render.MaxWarnings
	s.MinifyStyles = c.Render.MinifyStyles
	return s
}

// Preprocess reports whether inputs are normalized before rendering; on by default.
func (c *Config) Preprocess() bool {
	return c.Render.Preprocess == nil || *c.Render.Preprocess
}

// PageInfo builds the page context for slug from [site] and [page].
func (c *Config) PageInfo(slug string) page.PageInfo {
	info := page.PageInfo{
		Page:     slug,
		Site:     c.Site.Name,
		Title:    c.Page.Title,
		Rating:   c.Page.Rating,
		Tags:     append([]string(nil), c.Page.Tags...),
		Language: c.Site.Language,
	}
	if info.Title == "" {
		info.Title = slug
	}
	if c.Page.Category != "" {
		info.Category = page.Str(c.Page.Category)
	}
	if c.Page.AltTitle != "" {
		info.AltTitle = page.Str(c.Page.AltTitle)
	}
	return info
}

// TraceConfig converts [trace]; an empty level means off.
func (c *Config) TraceConfig() trace.Config {
	cfg, err := c.tracerConfig()
	if err != nil {
		return trace.Config{Level: trace.LevelOff}
	}
	return cfg
}

func (c *Config) tracerConfig() (trace.Config, error) {
	cfg := trace.Config{Mode: trace.ModeStream, OutputPath: c.Trace.Output}
	var err error
	if c.Trace.Level != "" {
		if cfg.Level, err = trace.ParseLevel(c.Trace.Level); err != nil {
			return cfg, fmt.Errorf("[trace].level: %w", err)
		}
	}
	if c.Trace.Mode != "" {
		if cfg.Mode, err = trace.ParseMode(c.Trace.Mode); err != nil {
			return cfg, fmt.Errorf("[trace].mode: %w", err)
		}
	}
	if c.Trace.Format != "" {
		if cfg.Format, err = trace.ParseFormat(c.Trace.Format); err != nil {
			return cfg, fmt.Errorf("[trace].format: %w", err)
		}
	}
	return cfg, nil
}

// PagesDir resolves [render].pages against the site root. The directory
// must stay inside the root and exist.
func (c *Config) PagesDir() (string, error) {
	rel := strings.TrimSpace(c.Render.Pages)
	if rel == "" {
		return c.Root, nil
	}
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("invalid [render].pages %q: must be relative", rel)
	}
	dir := filepath.Join(c.Root, filepath.Clean(filepath.FromSlash(rel)))
	if !pathWithin(c.Root, dir) {
		return "", fmt.Errorf("invalid [render].pages %q: %w", rel, ErrPagesOutsideRoot)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("invalid [render].pages %q: %w", rel, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("invalid [render].pages %q: not a directory", rel)
	}
	return dir, nil
}

func pathWithin(root, path string) bool {
	if root == "" || path == "" {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
