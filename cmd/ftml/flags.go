package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MrShwhale/ftml/internal/config"
	"github.com/MrShwhale/ftml/internal/driver"
	"github.com/MrShwhale/ftml/internal/page"
	"github.com/MrShwhale/ftml/internal/preproc"
	"github.com/MrShwhale/ftml/internal/settings"
)

const stdinPath = "-"

// colorEnabled resolves --color for output going to f.
func colorEnabled(cmd *cobra.Command, f *os.File) bool {
	flag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch flag {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f) && !color.NoColor
	}
}

// loadConfig reads --config or the nearest ftml.toml above the input.
func loadConfig(cmd *cobra.Command, input string) (*config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return config.Load(path)
	}
	start := "."
	if input != "" && input != stdinPath {
		if st, err := os.Stat(input); err == nil && !st.IsDir() {
			start = filepath.Dir(input)
		} else {
			start = input
		}
	}
	return config.Discover(start)
}

// renderSettings applies the global flags on top of the config.
func renderSettings(cmd *cobra.Command, cfg *config.Config) (settings.Settings, error) {
	s := cfg.Settings()
	pf := cmd.Root().PersistentFlags()
	mode, err := pf.GetString("mode")
	if err != nil {
		return s, fmt.Errorf("failed to get mode flag: %w", err)
	}
	if mode != "" {
		m, err := settings.ParseMode(mode)
		if err != nil {
			return s, err
		}
		keep := s
		s = settings.FromMode(m)
		s.MinifyStyles, s.MaxWarnings = keep.MinifyStyles, keep.MaxWarnings
	}
	if pf.Changed("minify-styles") {
		if s.MinifyStyles, err = pf.GetBool("minify-styles"); err != nil {
			return s, fmt.Errorf("failed to get minify-styles flag: %w", err)
		}
	}
	if pf.Changed("max-warnings") {
		if s.MaxWarnings, err = pf.GetUint("max-warnings"); err != nil {
			return s, fmt.Errorf("failed to get max-warnings flag: %w", err)
		}
	}
	return s, nil
}

// readInput reads a file, or stdin for "-". With preprocess the text is
// normalized here, so warning spans point into what the renderer received.
func readInput(cmd *cobra.Command, path string, preprocess bool) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == stdinPath {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path) // #nosec G304 -- path is a CLI argument
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if preprocess {
		return preproc.Substitute(string(data)), nil
	}
	return string(data), nil
}

// driverOptions собирает общие опции конвейера для команды.
func driverOptions(cmd *cobra.Command, path string) (driver.Options, *config.Config, error) {
	cfg, err := loadConfig(cmd, path)
	if err != nil {
		return driver.Options{}, nil, err
	}
	s, err := renderSettings(cmd, cfg)
	if err != nil {
		return driver.Options{}, nil, err
	}
	pre := cfg.Preprocess()
	if pf := cmd.Root().PersistentFlags(); pf.Changed("preprocess") {
		if pre, err = pf.GetBool("preprocess"); err != nil {
			return driver.Options{}, nil, fmt.Errorf("failed to get preprocess flag: %w", err)
		}
	}
	name := path
	if path == stdinPath {
		name = "<stdin>"
	}
	return driver.Options{Settings: s, Path: name, Tracer: tracerFrom(cmd), Preprocess: pre}, cfg, nil
}

type pageFlags struct {
	slug, title, altTitle, site, lang, category string
	rating                                      float64
	tags                                        []string
}

func addPageFlags(cmd *cobra.Command, pf *pageFlags) {
	f := cmd.Flags()
	f.StringVar(&pf.slug, "page", "", "page slug (default: file name)")
	f.StringVar(&pf.title, "title", "", "page title")
	f.StringVar(&pf.altTitle, "alt-title", "", "alternate page title")
	f.StringVar(&pf.site, "site", "", "site name")
	f.StringVar(&pf.lang, "lang", "", "page language")
	f.StringVar(&pf.category, "category", "", "page category")
	f.Float64Var(&pf.rating, "rating", 0, "page rating")
	f.StringSliceVar(&pf.tags, "tags", nil, "page tags")
}

// pageInfo builds the page for path from the config and the flags.
func (pf *pageFlags) pageInfo(cmd *cobra.Command, cfg *config.Config, path string) page.PageInfo {
	slug := pf.slug
	if slug == "" {
		if path == stdinPath || path == "" {
			slug = "stdin"
		} else {
			slug = driver.SlugFor(path)
		}
	}
	info := cfg.PageInfo(slug)
	f := cmd.Flags()
	if f.Changed("title") {
		info.Title = pf.title
	}
	if f.Changed("alt-title") {
		info.AltTitle = page.Str(pf.altTitle)
	}
	if f.Changed("site") {
		info.Site = pf.site
	}
	if f.Changed("lang") {
		info.Language = pf.lang
	}
	if f.Changed("category") {
		info.Category = page.Str(strings.TrimSpace(pf.category))
	}
	if f.Changed("rating") {
		info.Rating = pf.rating
	}
	if f.Changed("tags") {
		info.Tags = pf.tags
	}
	return info
}
