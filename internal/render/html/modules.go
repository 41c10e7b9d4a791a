package html

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/MrShwhale/ftml/internal/ast"
	"github.com/MrShwhale/ftml/internal/blocks"
)

func (g *generator) module(n *ast.Node) {
	if n.Has(ast.FlagNeutralized) {
		if n.Name == "" {
			g.w("<!-- unknown module -->")
			return
		}
		g.w("<!-- unknown module " + commentSafe(n.Name) + " -->")
		return
	}
	switch n.Module {
	case blocks.ModuleRate:
		g.rate()
	case blocks.ModuleTags:
		g.tags()
	}
}

// FormatRating prints a rating the way the rate box shows it: signed, shortest form.
func FormatRating(r float64) string {
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if r > 0 {
		s = "+" + s
	}
	return s
}

func (g *generator) rate() {
	rating := "0"
	if g.opts.Page != nil {
		rating = FormatRating(g.opts.Page.Rating)
	}
	g.w(`<div class="page-rate-widget-box"><span class="rate-points">rating: <span class="number">`)
	g.text(rating)
	g.w(`</span></span></div>`)
}

// tags renders the tag list. Tags starting with '_' are hidden.
func (g *generator) tags() {
	g.w(`<div class="page-tags"><span>`)
	if g.opts.Page != nil {
		first := true
		for _, tag := range g.opts.Page.Tags {
			if tag == "" || strings.HasPrefix(tag, "_") {
				continue
			}
			if !first {
				g.w(" ")
			}
			first = false
			g.w(`<a href="/system:page-tags/tag/`)
			g.attr(url.PathEscape(tag))
			g.w(`">`)
			g.text(tag)
			g.w("</a>")
		}
	}
	g.w("</span></div>")
}

func (g *generator) footnoteRef(n *ast.Node) {
	num := strconv.Itoa(n.Index)
	g.w(`<sup class="footnoteref"><a id="` + g.prefix + "footnoteref-" + num +
		`" href="#` + g.prefix + "footnote-" + num + `">` + num + "</a></sup>")
}

// footnoteBlock renders the footnote list. n is nil for the implicit block at the end.
func (g *generator) footnoteBlock(n *ast.Node) {
	if len(g.doc.Footnotes) == 0 {
		return
	}
	title := "Footnotes"
	if n != nil {
		if v, ok := n.Attr("hide"); ok && (v == "true" || v == "yes") {
			return
		}
		if v, ok := n.Attr("title"); ok {
			title = v
		}
	}
	g.w(`<div class="footnotes-footer"><div class="title">`)
	g.text(title)
	g.w("</div>")
	for _, id := range g.doc.Footnotes {
		fn := g.tree.Get(id)
		num := strconv.Itoa(fn.Index)
		g.w(`<div class="footnote-footer" id="` + g.prefix + "footnote-" + num + `"><a href="#` +
			g.prefix + "footnoteref-" + num + `">` + num + "</a>. ")
		g.inline(fn.Children)
		g.w("</div>")
	}
	g.w("</div>")
}
