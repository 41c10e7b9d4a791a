package text_test

import (
	"strings"
	"testing"

	"github.com/MrShwhale/ftml/internal/diag"
	"github.com/MrShwhale/ftml/internal/lexer"
	"github.com/MrShwhale/ftml/internal/page"
	"github.com/MrShwhale/ftml/internal/parser"
	"github.com/MrShwhale/ftml/internal/render/text"
	"github.com/MrShwhale/ftml/internal/resolve"
	"github.com/MrShwhale/ftml/internal/source"
)

func render(input string) string {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.ftml", []byte(input)))
	rep := diag.BagReporter{Bag: diag.NewBag(0)}
	tree := parser.Parse(file, lexer.New(file, lexer.Options{Reporter: rep}),
		parser.Options{Reporter: rep, PageSyntax: true}).Tree
	doc := resolve.Resolve(tree, file, resolve.Options{Reporter: rep, AllowLocalPaths: true})
	info := page.Demo()
	return text.Render(doc, text.Options{Page: &info})
}

func TestRender(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"demonstration",
			"[[css]]\ndiv.blockquote { color: blue; }\n[[/css]]\n**Test**\n[[module CSS]]\n.my-class {\n    display: block;\n}\n[[/module]]\n__string__\n",
			"Test\nstring"},
		{"paragraphs", "a\n\n\nb", "a\n\nb"},
		{"heading", "++ Title\nbody", "++ Title\nbody"},
		{"lists", "* a\n  * b\n# c", "* a\n  * b\n1. c"},
		{"blockquote", "[[blockquote]]\none\ntwo\n[[/blockquote]]", "> one\n> two"},
		{"links", "[https://a.b Site] http://c.d", "Site [https://a.b] http://c.d"},
		{"code", "[[code type=\"go\"]]\nx := 1\n[[/code]]", "```go\nx := 1\n```"},
		{"rule", "a\n----\nb", "a\n------\nb"},
		{"footnotes", "a[[footnote]]b[[/footnote]]", "a[1]\n\nFootnotes\n1. b"},
		{"rate", "[[module Rate]]", "rating: +69"},
		{"tags", "[[module Tags]]", "tale"},
		{"definitions", ": a : b\n: c : d", "a: b\nc: d"},
		{"ruby", "[[ruby]]漢[[rt]]kan[[/rt]][[/ruby]]", "漢(kan)"},
		{"user", "[[*user Some Name]]", "Some Name"},
		{"inputs", "[[*checkbox]] [[checkbox]] [[*radio g]] [[radio g]]", "[X]  [ ]  (*)  ( )"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestNoResolvedDelimiters: закрытые конструкции не оставляют разметку в тексте.
func TestNoResolvedDelimiters(t *testing.T) {
	got := render("**b** //i// __u__ --s-- ^^p^^ ,,d,, {{m}} [[span]]x[[/span]]")
	for _, delim := range []string{"**", "//", "__", "--", "^^", ",,", "{{", "}}", "[["} {
		if strings.Contains(got, delim) {
			t.Errorf("%q left in %q", delim, got)
		}
	}
}
