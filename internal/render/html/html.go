// Package html generates the HTML body and the <meta> list of a resolved document.
package html

import (
	"strconv"
	"strings"

	"github.com/MrShwhale/ftml/internal/ast"
	"github.com/MrShwhale/ftml/internal/blocks"
	"github.com/MrShwhale/ftml/internal/output"
	"github.com/MrShwhale/ftml/internal/page"
	"github.com/MrShwhale/ftml/internal/resolve"
	"github.com/MrShwhale/ftml/internal/settings"
)

type Options struct {
	Page     *page.PageInfo
	Settings settings.Settings
	// Version goes into the generator meta entry.
	Version string
}

// Result is the generated body and meta list.
type Result struct {
	Body string
	Meta []output.MetaEntry
}

type generator struct {
	doc    resolve.Result
	tree   *ast.Tree
	opts   Options
	prefix string
	sb     strings.Builder
}

// Generate renders doc. It never fails: every node kind has an HTML form.
func Generate(doc resolve.Result, opts Options) Result {
	g := generator{
		doc:    doc,
		tree:   doc.Tree,
		opts:   opts,
		prefix: opts.Settings.IDPrefix(),
	}
	root := g.tree.Get(g.tree.Root)
	g.sb.Grow(len(root.Children) * 16)
	g.flow(root.Children)
	if !doc.FootnoteBlock.IsValid() {
		g.footnoteBlock(nil)
	}
	return Result{
		Body: g.sb.String(),
		Meta: BuildMeta(opts.Page, doc.Meta, opts.Version),
	}
}

func (g *generator) w(s string) {
	g.sb.WriteString(s)
}

// isFlowNode reports whether n ends the current paragraph.
func isFlowNode(n *ast.Node) bool {
	if n.Kind.IsFlow() {
		return true
	}
	if n.Kind == ast.NodeContainer {
		spec, ok := blocks.ByID(n.Block)
		return ok && spec.Level == blocks.LevelFlow
	}
	return false
}

// flow renders the children of a flow container, grouping inline runs into
// paragraphs. Breaks at the edges of a paragraph are dropped.
func (g *generator) flow(children []ast.NodeID) {
	open := false
	pendingBr := 0
	closeP := func() {
		if open {
			g.w("</p>")
			open = false
		}
		pendingBr = 0
	}

	for _, id := range children {
		n := g.tree.Get(id)
		switch {
		case n.Has(ast.FlagRemoved):
			continue
		case n.Kind == ast.NodeParagraphBreak:
			closeP()
		case n.Kind == ast.NodeLineBreak:
			if open {
				pendingBr++
			}
		case isFlowNode(n):
			closeP()
			g.node(id)
		default:
			if !open {
				g.w("<p>")
				open = true
			}
			for ; pendingBr > 0; pendingBr-- {
				g.w("<br>")
			}
			g.node(id)
		}
	}
	closeP()
}

// inline renders children one after another.
func (g *generator) inline(children []ast.NodeID) {
	for _, id := range children {
		g.node(id)
	}
}

func (g *generator) node(id ast.NodeID) {
	n := g.tree.Get(id)
	if n.Has(ast.FlagRemoved) {
		return
	}
	switch n.Kind {
	case ast.NodeText:
		g.text(n.Text)
	case ast.NodeRaw:
		g.text(n.Text)
	case ast.NodeEmDash:
		g.w("—")
	case ast.NodeLineBreak, ast.NodeParagraphBreak:
		g.w("<br>")
	case ast.NodeContainer:
		g.container(n)
	case ast.NodeCode:
		g.code(n)
	case ast.NodeModule:
		g.module(n)
	case ast.NodeLink:
		g.link(n)
	case ast.NodeHeading:
		level := min(max(n.Depth, 1), 6)
		tag := "h" + strconv.Itoa(level)
		g.w("<" + tag + ` id="` + g.prefix + "toc" + strconv.Itoa(n.Index) + `">`)
		g.inline(n.Children)
		g.w("</" + tag + ">")
	case ast.NodeList:
		tag := "ul"
		if n.Ordered {
			tag = "ol"
		}
		g.w("<" + tag + ">")
		g.inline(n.Children)
		g.w("</" + tag + ">")
	case ast.NodeListItem:
		g.w("<li>")
		g.inline(n.Children)
		g.w("</li>")
	case ast.NodeHorizontalRule:
		g.w("<hr>")
	case ast.NodeDefinitionList:
		g.definitionList(n)
	case ast.NodeUser:
		g.user(n)
	case ast.NodeInput:
		g.input(n)
	case ast.NodeFootnote:
		g.footnoteRef(n)
	case ast.NodeFootnoteBlock:
		g.footnoteBlock(n)
	case ast.NodeDocument:
		g.flow(n.Children)
	case ast.NodeStyle, ast.NodeMeta:
		// всегда удаляются резолвером
	}
}

func (g *generator) container(n *ast.Node) {
	spec, ok := blocks.ByID(n.Block)
	if !ok || spec.Tag == "" {
		g.inline(n.Children)
		return
	}
	g.w("<" + spec.Tag)
	g.attrs(n)
	g.w(">")
	if spec.Level == blocks.LevelFlow {
		g.flow(n.Children)
	} else {
		g.inline(n.Children)
	}
	g.w("</" + spec.Tag + ">")
}

func (g *generator) attrs(n *ast.Node) {
	for _, a := range n.Attrs {
		if a.Bare {
			continue
		}
		if a.Key == "href" && n.Has(ast.FlagNeutralized) {
			continue
		}
		value := a.Value
		if a.Key == "id" {
			value = g.prefix + value
		}
		g.w(" " + a.Key + `="`)
		g.attr(value)
		g.w(`"`)
	}
}

func (g *generator) code(n *ast.Node) {
	g.w("<pre><code")
	if lang, ok := n.Attr("type"); ok && lang != "" {
		g.w(` class="language-`)
		g.attr(strings.ToLower(lang))
		g.w(`"`)
	}
	g.w(">")
	g.text(ast.TrimRawBody(n.Text))
	g.w("</code></pre>")
}

func (g *generator) link(n *ast.Node) {
	if n.Has(ast.FlagNeutralized) {
		if len(n.Children) == 0 {
			g.text(n.Target)
			return
		}
		g.inline(n.Children)
		return
	}
	g.w(`<a href="`)
	g.attr(n.Target)
	g.w(`">`)
	if len(n.Children) == 0 {
		g.text(n.Target)
	} else {
		g.inline(n.Children)
	}
	g.w("</a>")
}
