package parser

import (
	"github.com/MrShwhale/ftml/internal/ast"
	"github.com/MrShwhale/ftml/internal/blocks"
	"github.com/MrShwhale/ftml/internal/diag"
	"github.com/MrShwhale/ftml/internal/token"
)

func nodeKindFor(id blocks.ID) ast.NodeKind {
	switch id {
	case blocks.CSS:
		return ast.NodeStyle
	case blocks.Module:
		return ast.NodeModule
	case blocks.Meta:
		return ast.NodeMeta
	case blocks.Code:
		return ast.NodeCode
	case blocks.Footnote:
		return ast.NodeFootnote
	case blocks.FootnoteBlock:
		return ast.NodeFootnoteBlock
	case blocks.User:
		return ast.NodeUser
	case blocks.Checkbox, blocks.Radio:
		return ast.NodeInput
	default:
		return ast.NodeContainer
	}
}

func (p *Parser) openBlock(tok token.Token) {
	spec, ok := blocks.Lookup(tok.Name)
	if !ok {
		p.warnf(diag.SynUnknownBlock, tok.Span, tok.Text, "unknown block [[%s]]", tok.Name)
		p.appendText(tok.Span, tok.Text)
		return
	}

	ctx := p.context()
	switch {
	case tok.Has(token.FlagStar) && !spec.HasFlag(blocks.FlagStar):
		p.warnf(diag.SynUnknownBlock, tok.Span, tok.Text, "[[%s]] does not take a star", tok.Name)
		p.openLiteral(tok, spec)
		return
	case spec.ID == blocks.RubyText && !p.insideBlock(blocks.Ruby):
		p.warnf(diag.SynInvalidNesting, tok.Span, tok.Text, "[[%s]] is only allowed inside [[ruby]]", tok.Name)
		p.openLiteral(tok, spec)
		return
	case spec.ID == blocks.User && tok.Value == "":
		p.warnf(diag.SynInvalidAttribute, tok.Span, tok.Text, "[[%s]] needs a user name", tok.Name)
		p.appendText(tok.Span, tok.Text)
		return
	case spec.HasFlag(blocks.FlagPageSyntax) && !p.opts.PageSyntax:
		p.warnf(diag.SynDisallowedBlock, tok.Span, tok.Text, "[[%s]] is not allowed here", tok.Name)
		p.openLiteral(tok, spec)
		return
	case spec.Level == blocks.LevelFlow && !isFlow(p.stack[ctx]):
		p.warnf(diag.SynInvalidNesting, tok.Span, tok.Text, "[[%s]] cannot be nested inside inline content", tok.Name)
		p.openLiteral(tok, spec)
		return
	case spec.Level == blocks.LevelFlow:
		p.closeDelimitersAbove(ctx)
	}

	node := ast.Node{
		Kind:  nodeKindFor(spec.ID),
		Span:  tok.Span,
		Block: spec.ID,
	}
	if spec.HasFlag(blocks.FlagNameArg) {
		node.Name = tok.Value
	} else {
		node.Attrs = p.parseAttrs(tok, spec)
	}
	if tok.Has(token.FlagStar) {
		node.Flags |= ast.FlagStarred
	}
	if spec.ID == blocks.Module {
		node.Name = blocks.ModuleName(tok.Value)
		if m, ok := blocks.LookupModule(node.Name); ok {
			node.Module = m.ID
		}
	}

	flow := spec.Level == blocks.LevelFlow
	switch {
	case spec.Body == blocks.BodyNone,
		spec.ID == blocks.Module && !tok.Has(token.FlagHasBody):
		p.appendNode(node)
	default:
		p.push(&frame{kind: frameBlock, open: tok, spec: spec, node: node})
	}
	if flow {
		p.swallow = true
	}
}

// insideBlock reports whether a block of kind id is open (and not literal).
func (p *Parser) insideBlock(id blocks.ID) bool {
	for i := len(p.stack) - 1; i > 0; i-- {
		if f := p.stack[i]; f.kind == frameBlock && !f.literal && f.spec.ID == id {
			return true
		}
	}
	return false
}

// openLiteral handles a block that cannot appear at this position: it keeps its
// markup as text, but still pairs with its close marker.
func (p *Parser) openLiteral(tok token.Token, spec blocks.Spec) {
	if spec.Body == blocks.BodyNone || (spec.ID == blocks.Module && !tok.Has(token.FlagHasBody)) {
		p.appendText(tok.Span, tok.Text)
		return
	}
	p.push(&frame{kind: frameBlock, open: tok, spec: spec, literal: true})
}

func (p *Parser) rawBody(tok token.Token) {
	f := p.top()
	if f.kind != frameBlock || f.spec.Body != blocks.BodyRaw || f.raw != nil {
		p.appendText(tok.Span, tok.Text)
		return
	}
	raw := tok
	f.raw = &raw
}

func (p *Parser) closeBlock(tok token.Token) {
	spec, ok := blocks.Lookup(tok.Name)
	if !ok {
		p.warnf(diag.SynUnmatchedClose, tok.Span, tok.Text, "[[/%s]] closes an unknown block", tok.Name)
		p.appendText(tok.Span, tok.Text)
		return
	}
	if tok.Has(token.FlagTrailingArgs) {
		p.warnf(diag.SynCloseWithArguments, tok.Span, tok.Text, "close marker [[/%s]] takes no arguments", tok.Name)
	}
	if spec.Body == blocks.BodyNone {
		p.warnf(diag.SynBodylessBlockClosed, tok.Span, tok.Text, "[[%s]] has no body and cannot be closed", tok.Name)
		p.appendText(tok.Span, tok.Text)
		return
	}

	target := -1
	for i := len(p.stack) - 1; i > 0; i-- {
		if f := p.stack[i]; f.kind == frameBlock && f.spec.ID == spec.ID {
			target = i
			break
		}
	}
	if target < 0 {
		p.warnf(diag.SynUnmatchedClose, tok.Span, tok.Text, "[[/%s]] has no matching [[%s]]", tok.Name, tok.Name)
		p.appendText(tok.Span, tok.Text)
		return
	}

	for len(p.stack)-1 > target {
		f := p.top()
		switch f.kind {
		case frameInline:
			p.unterminate(f)
		case frameLine:
			p.closeLine(tok.Span.Start)
		case frameBlock:
			p.report(diag.SynUnbalancedBlock, f.open.Span, f.open.Text,
				"[[%s]] is closed by [[/%s]] before its own close marker",
				[]any{f.open.Name, tok.Name},
				[]diag.Note{{Span: tok.Span, Msg: "enclosing block closed here"}})
			p.closeBlockFrame(nil, tok.Span.Start, false)
		}
	}

	f := p.top()
	p.closeBlockFrame(&tok, tok.Span.End, false)
	if f.spec.Level == blocks.LevelFlow && !f.literal {
		p.swallow = true
	}
}

// closeBlockFrame pops the top block frame. closer is nil when the block is
// closed implicitly; end is then where its content stops.
func (p *Parser) closeBlockFrame(closer *token.Token, end uint32, unclosed bool) {
	f := p.pop()
	if f.literal {
		p.appendText(f.open.Span, f.open.Text)
		if f.raw != nil {
			p.appendText(f.raw.Span, f.raw.Text)
		}
		p.splice(f.children)
		if closer != nil {
			p.appendText(closer.Span, closer.Text)
		}
		return
	}

	n := f.node
	n.Span = p.span(f.open.Span.Start, end)
	if f.raw != nil {
		n.Text = f.raw.Text
	}
	if unclosed {
		n.Flags |= ast.FlagUnclosed
	}
	if f.spec.Level == blocks.LevelFlow && f.spec.Body == blocks.BodyElements {
		n.Children = p.groupLists(f.children)
	} else {
		n.Children = f.children
	}
	p.appendNode(n)
}
