package html_test

import (
	"math"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/MrShwhale/ftml/internal/diag"
	"github.com/MrShwhale/ftml/internal/lexer"
	"github.com/MrShwhale/ftml/internal/output"
	"github.com/MrShwhale/ftml/internal/page"
	"github.com/MrShwhale/ftml/internal/parser"
	"github.com/MrShwhale/ftml/internal/render/html"
	"github.com/MrShwhale/ftml/internal/resolve"
	"github.com/MrShwhale/ftml/internal/settings"
	"github.com/MrShwhale/ftml/internal/source"
)

func render(t *testing.T, input string, s settings.Settings) html.Result {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("h.ftml", []byte(input)))
	rep := diag.BagReporter{Bag: diag.NewBag(0)}
	tree := parser.Parse(file, lexer.New(file, lexer.Options{Reporter: rep}),
		parser.Options{Reporter: rep, PageSyntax: s.EnablePageSyntax}).Tree
	doc := resolve.Resolve(tree, file, resolve.Options{Reporter: rep, AllowLocalPaths: s.AllowLocalPaths})
	info := page.Demo()
	return html.Generate(doc, html.Options{Page: &info, Settings: s, Version: "1.0"})
}

func TestBodies(t *testing.T) {
	pageMode := settings.FromMode(settings.ModePage)
	tests := []struct {
		name  string
		input string
		mode  settings.Mode
		want  string
	}{
		{
			name:  "demonstration",
			input: "[[css]]\ndiv.blockquote { color: blue; }\n[[/css]]\n**Test**\n[[module CSS]]\n.my-class {\n    display: block;\n}\n[[/module]]\n__string__\n",
			want:  "<p><strong>Test</strong><br><u>string</u></p>",
		},
		{
			name:  "escaping",
			input: `a < b & "c" 'd'`,
			want:  "<p>a &lt; b &amp; &#34;c&#34; &#39;d&#39;</p>",
		},
		{
			name:  "paragraphs",
			input: "a\nb\n\nc\n",
			want:  "<p>a<br>b</p><p>c</p>",
		},
		{
			name:  "heading and list",
			input: "+ Title\n* a\n* b\n",
			want:  `<h1 id="toc0">Title</h1><ul><li>a</li><li>b</li></ul>`,
		},
		{
			name:  "draft ids",
			input: "++ Title",
			mode:  settings.ModeDraft,
			want:  `<h2 id="u-toc0">Title</h2>`,
		},
		{
			name:  "code",
			input: "[[code type=\"Go\"]]\nx < y\n[[/code]]",
			want:  `<pre><code class="language-go">x &lt; y</code></pre>`,
		},
		{
			name:  "unknown module",
			input: "[[module Foo--bar]]",
			want:  "<!-- unknown module Foo-bar -->",
		},
		{
			name:  "rate module",
			input: "[[module Rate]]",
			want:  `<div class="page-rate-widget-box"><span class="rate-points">rating: <span class="number">+69</span></span></div>`,
		},
		{
			name:  "tags module hides underscore tags",
			input: "[[module Tags]]",
			want:  `<div class="page-tags"><span><a href="/system:page-tags/tag/tale">tale</a></span></div>`,
		},
		{
			name:  "footnotes",
			input: "a[[footnote]]b[[/footnote]]",
			want: `<p>a<sup class="footnoteref"><a id="footnoteref-1" href="#footnote-1">1</a></sup></p>` +
				`<div class="footnotes-footer"><div class="title">Footnotes</div>` +
				`<div class="footnote-footer" id="footnote-1"><a href="#footnoteref-1">1</a>. b</div></div>`,
		},
		{
			name:  "links",
			input: "[https://a.b Site] http://c.d",
			want:  `<p><a href="https://a.b">Site</a> <a href="http://c.d">http://c.d</a></p>`,
		},
		{
			name:  "unsafe href dropped",
			input: `[[a href="javascript:x"]]y[[/a]]`,
			want:  "<p><a>y</a></p>",
		},
		{
			name:  "local link in forum post",
			input: "[/page label]",
			mode:  settings.ModeForumPost,
			want:  "<p>label</p>",
		},
		{
			name:  "div with attributes",
			input: "[[div class=\"x\"]]\nhi\n[[/div]]",
			want:  `<div class="x"><p>hi</p></div>`,
		},
		{
			name:  "unterminated markup stays literal",
			input: "**a //b",
			want:  "<p>**a //b</p>",
		},
		{
			name:  "em dash and raw",
			input: "a -- @@<b>@@",
			want:  "<p>a — &lt;b&gt;</p>",
		},
		{
			name:  "horizontal rule",
			input: "a\n----\nb",
			want:  "<p>a</p><hr><p>b</p>",
		},
		{
			name:  "definition list",
			input: ": a : b\n: **c** : d\ne",
			want:  "<dl><dt>a</dt><dd>b</dd><dt><strong>c</strong></dt><dd>d</dd></dl><p>e</p>",
		},
		{
			name:  "ruby",
			input: "[[ruby]]漢[[rt]]kan[[/rt]][[/ruby]]",
			want:  "<p><ruby>漢<rt>kan</rt></ruby></p>",
		},
		{
			name:  "user",
			input: "[[user Some Name]] [[*user bob]]",
			want: `<p><span class="user-info"><a href="/user:info/some-name">Some Name</a></span> ` +
				`<span class="user-info"><a href="/user:info/bob"><img class="small" src="/avatars--common/missing/small.png" alt="">bob</a></span></p>`,
		},
		{
			name:  "checkbox and radio",
			input: `[[*checkbox class="x"]] [[radio g]]`,
			want:  `<p><input type="checkbox" checked class="x"> <input type="radio" name="g"></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pageMode
			if tt.mode != settings.ModePage {
				s = settings.FromMode(tt.mode)
			}
			got := render(t, tt.input, s)
			if got.Body != tt.want {
				t.Errorf("body mismatch:\n got: %s\nwant: %s", got.Body, tt.want)
			}
		})
	}
}

func TestUserSlug(t *testing.T) {
	tests := map[string]string{
		"Some Name":    "some-name",
		"  a__b--C ":   "a-b-c",
		"user123":      "user123",
		"Ünïcode name": "n-code-name",
	}
	for in, want := range tests {
		if got := html.UserSlug(in); got != want {
			t.Errorf("UserSlug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNestedStructure(t *testing.T) {
	res := render(t, "[[blockquote]]\n**bold //both//**\n* one\n  * two\n[[/blockquote]]", settings.Default())
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.Body))
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Find("blockquote > p > strong > em").Text(); got != "both" {
		t.Errorf("nested inline text = %q (body %s)", got, res.Body)
	}
	if n := doc.Find("blockquote > ul > li > ul > li").Length(); n != 1 {
		t.Errorf("nested list items = %d (body %s)", n, res.Body)
	}
}

func TestDemonstrationMeta(t *testing.T) {
	res := render(t, "x", settings.Default())
	want := []output.MetaEntry{
		{Kind: output.MetaName, Name: "generator", Value: "ftml 1.0"},
		{Kind: output.MetaName, Name: "page", Value: "some-page"},
		{Kind: output.MetaProperty, Name: "og:title", Value: "Test page!"},
		{Kind: output.MetaProperty, Name: "og:site_name", Value: "sandbox"},
		{Kind: output.MetaName, Name: "keywords", Value: "tale, _cc"},
		{Kind: output.MetaName, Name: "rating", Value: "69"},
	}
	if len(res.Meta) != len(want)+1 {
		t.Fatalf("meta = %+v", res.Meta)
	}
	for i, w := range want {
		if res.Meta[i] != w {
			t.Errorf("meta[%d] = %+v, want %+v", i, res.Meta[i], w)
		}
	}
	last := res.Meta[len(res.Meta)-1]
	if last.Kind != output.MetaHTTPEquiv || last.Name != "Content-Language" || last.Value == "" {
		t.Errorf("locale entry = %+v", last)
	}
	for _, m := range res.Meta {
		if m.Name == "alt-title" {
			t.Error("nil alt title must not produce an entry")
		}
	}
}

func TestBuildMetaOptionalFields(t *testing.T) {
	info := page.PageInfo{
		Page:     "scp-173",
		Category: page.Str("archive"),
		Site:     "scp-wiki",
		Title:    "SCP-173",
		AltTitle: page.Str(""),
		Rating:   math.NaN(),
		Language: "en-us",
	}
	directives := []resolve.MetaCandidate{{Kind: output.MetaProperty, Name: "og:type", Value: "article"}}
	got := html.BuildMeta(&info, directives, "")
	want := []output.MetaEntry{
		{Kind: output.MetaName, Name: "generator", Value: "ftml"},
		{Kind: output.MetaName, Name: "page", Value: "archive:scp-173"},
		{Kind: output.MetaProperty, Name: "og:title", Value: "SCP-173"},
		{Kind: output.MetaProperty, Name: "og:site_name", Value: "scp-wiki"},
		{Kind: output.MetaHTTPEquiv, Name: "Content-Language", Value: "en-US"},
		{Kind: output.MetaProperty, Name: "og:type", Value: "article"},
	}
	if len(got) != len(want) {
		t.Fatalf("meta = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("meta[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	info.AltTitle = page.Str("Sculpture")
	info.Rating = -3.5
	got = html.BuildMeta(&info, nil, "")
	var names []string
	for _, m := range got {
		names = append(names, m.Name+"="+m.Value)
	}
	joined := strings.Join(names, ";")
	if !strings.Contains(joined, "alt-title=Sculpture") || !strings.Contains(joined, "rating=-3.5") {
		t.Errorf("meta = %s", joined)
	}
}

func TestFormatRating(t *testing.T) {
	cases := map[float64]string{69: "+69", 0: "0", -2: "-2", 1.5: "+1.5"}
	for in, want := range cases {
		if got := html.FormatRating(in); got != want {
			t.Errorf("FormatRating(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestDocument(t *testing.T) {
	info := page.Demo()
	info.Language = "en-us"
	out := output.HtmlOutput{
		Body:   "<p>x</p>",
		Styles: []string{"a { color: red; }", "b::after { content: \"</style>\"; }"},
		Meta:   []output.MetaEntry{{Kind: output.MetaProperty, Name: "og:title", Value: `"quoted"`}},
	}
	doc := html.Document(out, &info)

	gq, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	if lang, _ := gq.Find("html").Attr("lang"); lang != "en-US" {
		t.Errorf("lang = %q", lang)
	}
	if got := gq.Find("title").Text(); got != "Test page!" {
		t.Errorf("title = %q", got)
	}
	if got, _ := gq.Find(`meta[property="og:title"]`).Attr("content"); got != `"quoted"` {
		t.Errorf("meta content = %q", got)
	}
	if n := gq.Find("style").Length(); n != 2 {
		t.Errorf("style elements = %d, want 2", n)
	}
	if got := gq.Find("body p").Text(); got != "x" {
		t.Errorf("body = %q", got)
	}
}
