package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MrShwhale/ftml/internal/config"
	"github.com/MrShwhale/ftml/internal/settings"
	"github.com/MrShwhale/ftml/internal/trace"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
}

const manifest = `
[site]
name = "scp-wiki"
language = "en"

[render]
mode = "draft"
max_warnings = 5
preprocess = false
pages = "pages"

[page]
category = "fragment"
rating = 12.5
tags = ["scp", "euclid"]

[trace]
level = "phase"
format = "ndjson"
`

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, config.FileName), manifest)
	if err := os.MkdirAll(filepath.Join(root, "pages", "deep"), 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Discover(filepath.Join(root, "pages", "deep"))
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Site.Name != "scp-wiki" {
		t.Errorf("site = %q", cfg.Site.Name)
	}

	s := cfg.Settings()
	if s.Mode != settings.ModeDraft || s.UseTrueIDs || cfg.Preprocess() || s.MaxWarnings != 5 {
		t.Errorf("settings = %+v", s)
	}

	info := cfg.PageInfo("scp-173")
	if info.FullName() != "fragment:scp-173" || info.Title != "scp-173" || info.Rating != 12.5 {
		t.Errorf("page info = %+v", info)
	}
	if err := info.Validate(); err != nil {
		t.Errorf("page info invalid: %v", err)
	}

	tc := cfg.TraceConfig()
	if tc.Level != trace.LevelPhase || tc.Format != trace.FormatNDJSON {
		t.Errorf("trace config = %+v", tc)
	}

	dir, err := cfg.PagesDir()
	if err != nil || dir != filepath.Join(root, "pages") {
		t.Errorf("PagesDir = %q, %v", dir, err)
	}
}

func TestDiscoverDefault(t *testing.T) {
	cfg, err := config.Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	// в /tmp выше может лежать чужой ftml.toml, проверяем только корень
	if cfg.Root == "" {
		s := cfg.Settings()
		if s.Mode != settings.ModePage || !cfg.Preprocess() {
			t.Errorf("default settings = %+v", s)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, body string
		wantErr    error
		contains   string
	}{
		{"unknown key", "[render]\nmod = \"page\"\n", config.ErrUnknownKey, "render.mod"},
		{"bad mode", "[render]\nmode = \"wiki\"\n", nil, "[render].mode"},
		{"bad trace level", "[trace]\nlevel = \"loud\"\n", nil, "[trace].level"},
		{"pages escape", "[render]\npages = \"../elsewhere\"\n", config.ErrPagesOutsideRoot, ""},
		{"negative jobs", "[render]\njobs = -1\n", nil, "jobs"},
		{"syntax", "[render\n", nil, "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), config.FileName)
			writeFile(t, path, tt.body)
			_, err := config.Load(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("err = %q, want substring %q", err, tt.contains)
			}
		})
	}
}
