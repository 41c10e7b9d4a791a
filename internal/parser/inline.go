package parser

import (
	"github.com/MrShwhale/ftml/internal/ast"
	"github.com/MrShwhale/ftml/internal/blocks"
	"github.com/MrShwhale/ftml/internal/diag"
	"github.com/MrShwhale/ftml/internal/token"
)

var delimBlocks = map[token.Kind]blocks.ID{
	token.Bold:          blocks.Bold,
	token.Italics:       blocks.Italics,
	token.Underline:     blocks.Underline,
	token.Strikethrough: blocks.Strikethrough,
	token.Superscript:   blocks.Superscript,
	token.Subscript:     blocks.Subscript,
	token.MonospaceOpen: blocks.Monospace,
}

func (p *Parser) delimiter(tok token.Token) {
	opener := tok.Kind
	if tok.Kind == token.MonospaceClose {
		opener = token.MonospaceOpen
	}

	if tok.Has(token.FlagCloses) || tok.Kind == token.MonospaceClose {
		for i := len(p.stack) - 1; i > 0 && p.stack[i].kind == frameInline; i-- {
			if p.stack[i].delim != opener {
				continue
			}
			for len(p.stack)-1 > i {
				p.unterminate(p.top())
			}
			f := p.pop()
			p.appendNode(ast.Node{
				Kind:      ast.NodeContainer,
				Span:      p.span(f.open.Span.Start, tok.Span.End),
				Block:     delimBlocks[opener],
				Delimited: true,
				Children:  f.children,
			})
			return
		}
	}

	if tok.Has(token.FlagOpens) && tok.Kind != token.MonospaceClose {
		p.push(&frame{kind: frameInline, open: tok, delim: tok.Kind})
		return
	}
	p.appendText(tok.Span, tok.Text)
}

// unterminate pops a delimiter frame that never found its closer. The
// delimiter becomes literal text followed by the collected content.
func (p *Parser) unterminate(f *frame) {
	p.pop()
	p.warnf(diag.SynUnterminatedInline, f.open.Span, f.open.Text,
		"%q is never closed", f.open.Text)
	p.appendText(f.open.Span, f.open.Text)
	p.splice(f.children)
}

func (p *Parser) link(tok token.Token) {
	n := ast.Node{Kind: ast.NodeLink, Span: tok.Span, Target: tok.Name}
	if tok.Value != "" {
		sp := p.span(tok.ValueStart, tok.ValueStart+uint32(len(tok.Value)))
		n.Children = []ast.NodeID{p.b.NewText(sp, tok.Value)}
	}
	p.appendNode(n)
}
