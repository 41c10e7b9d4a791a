package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestProgressUI(t *testing.T) {
	tests := []struct {
		in      string
		quiet   bool
		want    bool
		wantErr bool
	}{
		{" ON ", false, true, false},
		{"on", true, false, false},
		{"off", false, false, false},
		{"sometimes", false, false, true},
	}
	for _, tt := range tests {
		got, err := progressUI(tt.in, tt.quiet)
		if (err != nil) != tt.wantErr {
			t.Errorf("progressUI(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("progressUI(%q, %v) = %v, want %v", tt.in, tt.quiet, got, tt.want)
		}
	}
}

func TestPad(t *testing.T) {
	if got := pad("日本", 6); got != "日本  " {
		t.Errorf("pad = %q", got)
	}
	if got := pad("toolong", 3); got != "toolong" {
		t.Errorf("pad = %q", got)
	}
}

func TestRenderCommandBodyOnly(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "ftml.toml", "[site]\nname = \"test\"\n")
	file := writeFile(t, dir, "demo.ftml", "**Test**\n__string__\n")

	out, err := execute(t, "render", "--config", cfg, "--color", "off", "--quiet", "--body-only", file)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(out) != "<p><strong>Test</strong><br><u>string</u></p>" {
		t.Errorf("output = %q", out)
	}
}

func TestDiagCommandJSON(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "ftml.toml", "")
	file := writeFile(t, dir, "broken.ftml", "**open\n[[/div]]\n")

	out, err := execute(t, "diag", "--config", cfg, "--color", "off", "--format", "json", file)
	if err != nil {
		t.Fatalf("diag: %v", err)
	}
	var report diagReportJSON
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(report.Files) != 1 || report.Count == 0 {
		t.Fatalf("report = %+v", report)
	}
	if report.Files[0].Count != report.Count {
		t.Errorf("file count %d, total %d", report.Files[0].Count, report.Count)
	}
}

func TestVersionJSON(t *testing.T) {
	out, err := execute(t, "version", "--format", "json", "--blocks")
	versionShowBlocks = false
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var info buildInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if info.Tool != "ftml" || !strings.HasPrefix(info.Generator, "ftml") {
		t.Errorf("info = %+v", info)
	}
	if !slices.Contains(info.Blocks, "code") || !slices.Contains(info.Modules, "CSS") {
		t.Errorf("blocks = %v, modules = %v", info.Blocks, info.Modules)
	}
}
