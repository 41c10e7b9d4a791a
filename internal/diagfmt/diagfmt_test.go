package diagfmt_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/MrShwhale/ftml/internal/diag"
	"github.com/MrShwhale/ftml/internal/diagfmt"
	"github.com/MrShwhale/ftml/internal/driver"
	"github.com/MrShwhale/ftml/internal/settings"
	"github.com/MrShwhale/ftml/internal/source"
)

func oneWarning(path, content string, start, end uint32) (*diag.Bag, *source.FileSet) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, []byte(content))
	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(diag.SynUnterminatedInline, source.Span{File: id, Start: start, End: end}, "unterminated bold"))
	return bag, fs
}

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	bag, fs := oneWarning("/home/user/site/pages/test.ftml", "a **b\n", 2, 4)
	tests := []struct {
		name     string
		mode     diagfmt.PathMode
		contains string
	}{
		{"absolute", diagfmt.PathModeAbsolute, "/home/user/site/pages/test.ftml:1:3"},
		{"relative", diagfmt.PathModeRelative, " pages/test.ftml:1:3"},
		{"basename", diagfmt.PathModeBasename, "test.ftml:1:3"},
		{"auto shortens long paths", diagfmt.PathModeAuto, "test.ftml:1:3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			diagfmt.Short(&buf, bag, fs, tt.mode, "/home/user/site")
			out := " " + buf.String()
			if !strings.Contains(out, tt.contains) {
				t.Errorf("output %q does not contain %q", out, tt.contains)
			}
			if !strings.Contains(out, "WARNING SYN2003 unterminated bold") {
				t.Errorf("missing severity and code: %q", out)
			}
		})
	}
}

func TestPrettyCaret(t *testing.T) {
	bag, fs := oneWarning("page.ftml", "first\nsay **hi\nlast\n", 10, 12)
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{Context: 1})
	want := "page.ftml:2:5: WARNING SYN2003: unterminated bold\n" +
		" 1 | first\n" +
		" 2 | say **hi\n" +
		"   |     ^~\n" +
		" 3 | last\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	// колонка считается в байтах, подчёркивание в ширине терминала
	bag, fs := oneWarning("p.ftml", "日本 **x", 7, 9)
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 || lines[2] != "   |      ^~" {
		t.Errorf("caret line = %q", lines[2])
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("n.ftml", []byte("[[div]]\n[[span]]\n[[/div]]\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewWarning(diag.SynUnbalancedBlock, source.Span{File: id, Start: 8, End: 16}, "span is not closed").
		WithNote(source.Span{File: id, Start: 17, End: 25}, "enclosing block closed here"))

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{ShowNotes: true})
	if !strings.Contains(buf.String(), "note: n.ftml:3:1: enclosing block closed here") {
		t.Errorf("note missing:\n%s", buf.String())
	}
}

func TestJSON(t *testing.T) {
	res := driver.Parse(context.Background(), "**open", driver.Options{Settings: settings.Default()})
	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, res.Diagnostics, res.FileSet, diagfmt.JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Count != 1 || out.Diagnostics[0].Kind != diag.KindUnterminatedInline {
		t.Fatalf("unexpected output: %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Token != "**" || d.Location.StartLine != 1 || d.Location.StartCol != 1 {
		t.Errorf("diagnostic = %+v", d)
	}
}

func TestTreePretty(t *testing.T) {
	res := driver.Parse(context.Background(), "**a** [[span class=\"x\"]]b[[/span]]", driver.Options{Settings: settings.Default()})
	var buf bytes.Buffer
	if err := diagfmt.FormatTreePretty(&buf, res.Tree, res.FileSet); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Document", "Container b (delimited)", "Attr class=\"x\"", "└── ", "Text \"b\""} {
		if !strings.Contains(out, want) {
			t.Errorf("tree missing %q:\n%s", want, out)
		}
	}
}

func TestTokensJSON(t *testing.T) {
	tr := driver.Tokenize(context.Background(), "[[div]]x", driver.Options{})
	var buf bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&buf, tr.Tokens); err != nil {
		t.Fatal(err)
	}
	var toks []diagfmt.TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &toks); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if toks[0].Name != "div" || toks[len(toks)-1].Kind != "EOF" {
		t.Errorf("tokens = %+v", toks)
	}
}
