// Package text renders a resolved document as plain text.
package text

import (
	"strconv"
	"strings"

	"github.com/MrShwhale/ftml/internal/ast"
	"github.com/MrShwhale/ftml/internal/blocks"
	"github.com/MrShwhale/ftml/internal/page"
	"github.com/MrShwhale/ftml/internal/resolve"
)

type Options struct {
	Page *page.PageInfo
}

type renderer struct {
	doc       resolve.Result
	tree      *ast.Tree
	opts      Options
	sb        strings.Builder
	prefixes  []string
	lineStart bool
	listDepth int
}

// Render returns the plain-text form of doc.
func Render(doc resolve.Result, opts Options) string {
	r := renderer{doc: doc, tree: doc.Tree, opts: opts, lineStart: true}
	r.node(doc.Tree.Root)
	if !doc.FootnoteBlock.IsValid() {
		r.footnotes("Footnotes")
	}
	return strings.TrimRight(r.sb.String(), "\n ")
}

// write emits s on the current line, adding prefixes at the start of a line.
func (r *renderer) write(s string) {
	if s == "" {
		return
	}
	if r.lineStart {
		for _, p := range r.prefixes {
			r.sb.WriteString(p)
		}
		r.lineStart = false
	}
	r.sb.WriteString(s)
}

// writeLines emits multi-line text, keeping prefixes on every line.
func (r *renderer) writeLines(s string) {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			r.lineBreak()
		}
		r.write(line)
	}
}

func (r *renderer) lineBreak() {
	r.sb.WriteByte('\n')
	r.lineStart = true
}

// ensureNewline ends the current line unless it is empty.
func (r *renderer) ensureNewline() {
	if !r.lineStart {
		r.lineBreak()
	}
}

func (r *renderer) paragraph() {
	r.ensureNewline()
	if s := r.sb.String(); len(s) > 0 && !strings.HasSuffix(s, "\n\n") {
		r.lineBreak()
	}
}

func (r *renderer) children(n *ast.Node) {
	for _, id := range n.Children {
		r.node(id)
	}
}

func (r *renderer) node(id ast.NodeID) {
	n := r.tree.Get(id)
	if n.Has(ast.FlagRemoved) {
		return
	}
	switch n.Kind {
	case ast.NodeDocument:
		r.children(n)
	case ast.NodeText, ast.NodeRaw:
		r.write(n.Text)
	case ast.NodeEmDash:
		r.write("—")
	case ast.NodeLineBreak:
		r.lineBreak()
	case ast.NodeParagraphBreak:
		r.paragraph()
	case ast.NodeContainer:
		r.container(n)
	case ast.NodeHeading:
		r.ensureNewline()
		r.write(strings.Repeat("+", max(n.Depth, 1)) + " ")
		r.children(n)
		r.ensureNewline()
	case ast.NodeList:
		r.ensureNewline()
		r.listDepth++
		for i, item := range n.Children {
			r.listItem(r.tree.Get(item), n.Ordered, i+1)
		}
		r.listDepth--
	case ast.NodeHorizontalRule:
		r.ensureNewline()
		r.write("------")
		r.ensureNewline()
	case ast.NodeDefinitionList:
		r.ensureNewline()
		for _, id := range n.Children {
			item := r.tree.Get(id)
			for i, part := range item.Children {
				if i > 0 {
					r.write(": ")
				}
				r.children(r.tree.Get(part))
			}
			r.ensureNewline()
		}
	case ast.NodeUser:
		r.write(n.Name)
	case ast.NodeInput:
		mark := "[ ] "
		switch {
		case n.Block == blocks.Radio && n.Has(ast.FlagStarred):
			mark = "(*) "
		case n.Block == blocks.Radio:
			mark = "( ) "
		case n.Has(ast.FlagStarred):
			mark = "[X] "
		}
		r.write(mark)
	case ast.NodeCode:
		lang, _ := n.Attr("type")
		r.ensureNewline()
		r.writeLines("```" + strings.ToLower(lang) + "\n" + ast.TrimRawBody(n.Text) + "\n```")
		r.ensureNewline()
	case ast.NodeLink:
		r.link(n)
	case ast.NodeModule:
		r.module(n)
	case ast.NodeFootnote:
		r.write("[" + strconv.Itoa(n.Index) + "]")
	case ast.NodeFootnoteBlock:
		title := "Footnotes"
		if v, ok := n.Attr("title"); ok {
			title = v
		}
		if v, ok := n.Attr("hide"); ok && (v == "true" || v == "yes") {
			return
		}
		r.footnotes(title)
	}
}

func (r *renderer) container(n *ast.Node) {
	switch n.Block {
	case blocks.Blockquote:
		r.ensureNewline()
		r.prefixes = append(r.prefixes, "> ")
		r.children(n)
		r.ensureNewline()
		r.prefixes = r.prefixes[:len(r.prefixes)-1]
	case blocks.Div:
		r.ensureNewline()
		r.children(n)
		r.ensureNewline()
	case blocks.RubyText:
		r.write("(")
		r.children(n)
		r.write(")")
	case blocks.Anchor:
		r.children(n)
		if href, ok := n.Attr("href"); ok && !n.Has(ast.FlagNeutralized) {
			r.write(" [" + href + "]")
		}
	default:
		r.children(n)
	}
}

func (r *renderer) listItem(item *ast.Node, ordered bool, index int) {
	r.write(strings.Repeat("  ", r.listDepth-1))
	if ordered {
		r.write(strconv.Itoa(index) + ". ")
	} else {
		r.write("* ")
	}
	r.children(item)
	r.ensureNewline()
}

func (r *renderer) link(n *ast.Node) {
	if len(n.Children) == 0 {
		r.write(n.Target)
		return
	}
	mark := r.sb.Len()
	r.children(n)
	label := r.sb.String()[mark:]
	if !n.Has(ast.FlagNeutralized) && label != n.Target {
		r.write(" [" + n.Target + "]")
	}
}

func (r *renderer) module(n *ast.Node) {
	if n.Has(ast.FlagNeutralized) || r.opts.Page == nil {
		return
	}
	switch n.Module {
	case blocks.ModuleRate:
		r.ensureNewline()
		rating := strconv.FormatFloat(r.opts.Page.Rating, 'f', -1, 64)
		if r.opts.Page.Rating > 0 {
			rating = "+" + rating
		}
		r.write("rating: " + rating)
		r.ensureNewline()
	case blocks.ModuleTags:
		var visible []string
		for _, tag := range r.opts.Page.Tags {
			if tag != "" && !strings.HasPrefix(tag, "_") {
				visible = append(visible, tag)
			}
		}
		r.ensureNewline()
		r.write(strings.Join(visible, " "))
		r.ensureNewline()
	}
}

func (r *renderer) footnotes(title string) {
	if len(r.doc.Footnotes) == 0 {
		return
	}
	r.paragraph()
	r.write(title)
	r.ensureNewline()
	for _, id := range r.doc.Footnotes {
		fn := r.tree.Get(id)
		r.write(strconv.Itoa(fn.Index) + ". ")
		r.children(fn)
		r.ensureNewline()
	}
}
