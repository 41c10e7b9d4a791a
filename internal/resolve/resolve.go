// Package resolve runs the semantic pass over a parsed document: it pulls
// styles and meta directives out of the body, resolves modules and numbers
// footnotes and headings.
package resolve

import (
	"fmt"
	"strings"

	"github.com/MrShwhale/ftml/internal/ast"
	"github.com/MrShwhale/ftml/internal/blocks"
	"github.com/MrShwhale/ftml/internal/diag"
	"github.com/MrShwhale/ftml/internal/output"
	"github.com/MrShwhale/ftml/internal/source"
)

type Options struct {
	Reporter        diag.Reporter
	AllowLocalPaths bool
	MinifyStyles    bool
}

// MetaCandidate is a [[meta]] directive that passed validation.
type MetaCandidate struct {
	Kind  output.MetaKind
	Name  string
	Value string
	Span  source.Span
}

// Result is the resolved document.
type Result struct {
	Tree   *ast.Tree
	Styles []string
	Meta   []MetaCandidate
	// Footnotes lists footnote nodes by number (Footnotes[0] is footnote 1).
	Footnotes []ast.NodeID
	// FootnoteBlock is the first [[footnoteblock]], or NoNodeID.
	FootnoteBlock ast.NodeID
	Headings      int
}

type resolver struct {
	tree *ast.Tree
	file *source.File
	opts Options
	res  Result
	css  *styleChecker
}

// Resolve walks tree in pre-order. The tree is updated in place (flags, indices).
func Resolve(tree *ast.Tree, file *source.File, opts Options) Result {
	r := resolver{
		tree: tree,
		file: file,
		opts: opts,
		res:  Result{Tree: tree},
		css:  newStyleChecker(opts.MinifyStyles),
	}
	tree.Walk(tree.Root, r.visit)
	return r.res
}

func (r *resolver) visit(id ast.NodeID, n *ast.Node) bool {
	switch n.Kind {
	case ast.NodeStyle:
		r.style(n)
		return false
	case ast.NodeModule:
		r.module(n)
		return false
	case ast.NodeMeta:
		r.meta(n)
		return false
	case ast.NodeFootnote:
		r.res.Footnotes = append(r.res.Footnotes, id)
		n.Index = len(r.res.Footnotes)
	case ast.NodeFootnoteBlock:
		if r.res.FootnoteBlock.IsValid() {
			n.Flags |= ast.FlagRemoved
		} else {
			r.res.FootnoteBlock = id
		}
	case ast.NodeHeading:
		n.Index = r.res.Headings
		r.res.Headings++
	case ast.NodeLink:
		r.checkLink(n, n.Target)
	case ast.NodeContainer:
		if n.Block == blocks.Anchor {
			if href, ok := n.Attr("href"); ok {
				r.checkLink(n, href)
			}
		}
	}
	return true
}

func (r *resolver) module(n *ast.Node) {
	switch n.Module {
	case blocks.ModuleCSS:
		r.style(n)
	case blocks.ModuleRate, blocks.ModuleTags:
		// рендерится генератором из PageInfo
	default:
		n.Flags |= ast.FlagNeutralized
		if n.Name == "" {
			r.warnf(diag.SemaMissingModule, n.Span, "[[module]] without a module name")
			return
		}
		r.warnf(diag.SemaUnknownModule, n.Span, "unknown module %q", n.Name)
	}
}

func (r *resolver) warnf(code diag.Code, sp source.Span, format string, args ...any) {
	if r.opts.Reporter == nil {
		return
	}
	diag.ReportWarning(r.opts.Reporter, code, sp, fmt.Sprintf(format, args...)).
		WithToken(r.marker(sp)).
		Emit()
}

// marker returns the source of the opening marker of the block at sp.
func (r *resolver) marker(sp source.Span) string {
	text := r.file.Text(sp)
	if i := strings.Index(text, "]]"); i >= 0 && strings.HasPrefix(text, "[[") {
		return text[:i+2]
	}
	return text
}
