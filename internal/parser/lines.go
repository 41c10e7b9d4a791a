package parser

import (
	"strings"

	"github.com/MrShwhale/ftml/internal/ast"
	"github.com/MrShwhale/ftml/internal/token"
)

func (p *Parser) lineBreak(tok token.Token) {
	ctx := p.context()
	if p.stack[ctx].kind == frameLine {
		p.closeDelimitersAbove(ctx)
		if p.closeLine(tok.Span.Start) {
			return
		}
	}
	p.appendNode(ast.Node{Kind: ast.NodeLineBreak, Span: tok.Span})
}

func (p *Parser) paragraphBreak(tok token.Token) {
	ctx := p.context()
	p.closeDelimitersAbove(ctx)
	if p.stack[ctx].kind == frameLine {
		p.closeLine(tok.Span.Start)
	}
	p.appendNode(ast.Node{Kind: ast.NodeParagraphBreak, Span: tok.Span})
}

// openLine starts a heading, a list item or a definition item; it runs to the end of the line.
func (p *Parser) openLine(tok token.Token, n ast.Node) {
	ctx := p.context()
	if !isFlow(p.stack[ctx]) {
		p.appendText(tok.Span, tok.Text)
		return
	}
	p.closeDelimitersAbove(ctx)
	n.Span = tok.Span
	p.push(&frame{kind: frameLine, open: tok, node: n})
}

// closeLine pops the line frame on top of the stack. It returns false when
// the line fell back to literal text (a definition item without a separator).
func (p *Parser) closeLine(end uint32) bool {
	f := p.pop()
	n := f.node
	if n.Kind == ast.NodeDefinitionItem {
		return p.closeDefinition(f, end)
	}
	n.Span = p.span(f.open.Span.Start, end)
	n.Children = trimTrailingBreaks(p, f.children)
	p.appendNode(n)
	return true
}

// definitionSep ends the term of the definition item being parsed.
func (p *Parser) definitionSep(tok token.Token) {
	ctx := p.context()
	f := p.stack[ctx]
	if f.kind != frameLine || f.node.Kind != ast.NodeDefinitionItem || f.sep != nil {
		p.appendText(tok.Span, tok.Text)
		return
	}
	p.closeDelimitersAbove(ctx)
	sep := tok
	f.sep = &sep
	f.split = len(f.children)
}

// closeDefinition builds `: term : description` from a popped line frame.
func (p *Parser) closeDefinition(f *frame, end uint32) bool {
	if f.sep == nil {
		p.appendText(f.open.Span, f.open.Text)
		p.splice(f.children)
		return false
	}
	term := p.b.Add(ast.Node{
		Kind:     ast.NodeDefinitionTerm,
		Span:     p.span(f.open.Span.End, f.sep.Span.Start),
		Children: p.trimSpaces(f.children[:f.split]),
	})
	desc := p.b.Add(ast.Node{
		Kind:     ast.NodeDefinitionDesc,
		Span:     p.span(f.sep.Span.End, end),
		Children: p.trimSpaces(trimTrailingBreaks(p, f.children[f.split:])),
	})
	p.appendNode(ast.Node{
		Kind:     ast.NodeDefinitionItem,
		Span:     p.span(f.open.Span.Start, end),
		Children: []ast.NodeID{term, desc},
	})
	return true
}

// trimSpaces strips blanks from the text at both edges of ids, dropping
// text nodes left empty.
func (p *Parser) trimSpaces(ids []ast.NodeID) []ast.NodeID {
	const blanks = " \t\r"
	if len(ids) > 0 {
		if n := p.b.Get(ids[0]); n.Kind == ast.NodeText {
			trimmed := strings.TrimLeft(n.Text, blanks)
			n.Span.Start += uint32(len(n.Text) - len(trimmed)) // #nosec G115 -- trimmed is a suffix of n.Text
			n.Text = trimmed
			if n.Text == "" {
				ids = ids[1:]
			}
		}
	}
	if len(ids) > 0 {
		if n := p.b.Get(ids[len(ids)-1]); n.Kind == ast.NodeText {
			trimmed := strings.TrimRight(n.Text, blanks)
			n.Span.End -= uint32(len(n.Text) - len(trimmed)) // #nosec G115 -- trimmed is a prefix of n.Text
			n.Text = trimmed
			if n.Text == "" {
				ids = ids[:len(ids)-1]
			}
		}
	}
	return ids
}

func (p *Parser) horizontalRule(tok token.Token) {
	ctx := p.context()
	if !isFlow(p.stack[ctx]) {
		p.appendText(tok.Span, tok.Text)
		return
	}
	p.closeDelimitersAbove(ctx)
	p.appendNode(ast.Node{Kind: ast.NodeHorizontalRule, Span: tok.Span})
	p.swallow = true
}

func trimTrailingBreaks(p *Parser, ids []ast.NodeID) []ast.NodeID {
	for len(ids) > 0 {
		k := p.b.Get(ids[len(ids)-1]).Kind
		if k != ast.NodeLineBreak && k != ast.NodeParagraphBreak {
			break
		}
		ids = ids[:len(ids)-1]
	}
	return ids
}
