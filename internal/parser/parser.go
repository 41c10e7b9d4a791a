package parser

import (
	"github.com/MrShwhale/ftml/internal/ast"
	"github.com/MrShwhale/ftml/internal/diag"
	"github.com/MrShwhale/ftml/internal/lexer"
	"github.com/MrShwhale/ftml/internal/source"
	"github.com/MrShwhale/ftml/internal/token"
)

type Options struct {
	// PageSyntax enables blocks that only make sense on full pages (css, module, meta, footnoteblock).
	PageSyntax bool
	// Reporter gets every warning; limits are applied when the collector is flushed.
	Reporter diag.Reporter
}

type Result struct {
	Tree *ast.Tree
}

// Parser: состояние парсера на один документ
type Parser struct {
	lx      *lexer.Lexer
	b       *ast.Builder
	file    *source.File
	opts    Options
	stack   []*frame
	swallow bool // проглотить следующий LineBreak (после маркеров блочных конструкций)
}

// Parse builds the syntax tree of file. It never fails: every malformed
// construct is reported and repaired, usually by falling back to literal text.
func Parse(file *source.File, lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:   lx,
		b:    ast.NewBuilder(file.ID, ast.Hints{Nodes: uint(len(file.Content)/4 + 8)}),
		file: file,
		opts: opts,
	}
	p.stack = append(p.stack, &frame{kind: frameRoot})
	return Result{Tree: p.run()}
}

func (p *Parser) run() *ast.Tree {
	for {
		tok := p.lx.Next()
		if p.swallow {
			p.swallow = false
			if tok.Kind == token.LineBreak {
				continue
			}
		}

		switch tok.Kind {
		case token.EOF:
			return p.finish(tok)
		case token.Text, token.Whitespace, token.Invalid:
			p.appendText(tok.Span, tok.Text)
		case token.LineBreak:
			p.lineBreak(tok)
		case token.ParagraphBreak:
			p.paragraphBreak(tok)
		case token.BlockOpen:
			p.openBlock(tok)
		case token.BlockClose:
			p.closeBlock(tok)
		case token.RawBody:
			p.rawBody(tok)
		case token.Bold, token.Italics, token.Underline, token.Strikethrough,
			token.Superscript, token.Subscript, token.MonospaceOpen, token.MonospaceClose:
			p.delimiter(tok)
		case token.EmDash:
			p.appendNode(ast.Node{Kind: ast.NodeEmDash, Span: tok.Span})
		case token.Raw:
			p.appendNode(ast.Node{Kind: ast.NodeRaw, Span: tok.Span, Text: tok.Value})
		case token.Url:
			p.appendNode(ast.Node{Kind: ast.NodeLink, Span: tok.Span, Target: tok.Name})
		case token.Link:
			p.link(tok)
		case token.Heading:
			p.openLine(tok, ast.Node{Kind: ast.NodeHeading, Depth: tok.Depth})
		case token.BulletItem, token.NumberedItem:
			p.openLine(tok, ast.Node{Kind: ast.NodeListItem, Depth: tok.Depth, Ordered: tok.Kind == token.NumberedItem})
		case token.HorizontalRule:
			p.horizontalRule(tok)
		case token.DefinitionItem:
			p.openLine(tok, ast.Node{Kind: ast.NodeDefinitionItem})
		case token.DefinitionSep:
			p.definitionSep(tok)
		default:
			p.appendText(tok.Span, tok.Text)
		}
	}
}

// finish force-closes everything still open and builds the document node.
func (p *Parser) finish(eof token.Token) *ast.Tree {
	for len(p.stack) > 1 {
		f := p.top()
		switch f.kind {
		case frameInline:
			p.unterminate(f)
		case frameLine:
			p.closeLine(eof.Span.Start)
		case frameBlock:
			p.warnf(diag.SynUnclosedBlock, f.open.Span, f.open.Text,
				"[[%s]] is not closed before the end of input", f.open.Name)
			p.closeBlockFrame(nil, eof.Span.End, true)
		}
	}
	root := p.stack[0]
	id := p.b.Add(ast.Node{
		Kind:     ast.NodeDocument,
		Span:     source.Span{File: p.file.ID, Start: 0, End: eof.Span.End},
		Children: p.groupLists(root.children),
	})
	return p.b.Finish(id)
}

// warnf репортит предупреждение с текстом токена.
func (p *Parser) warnf(code diag.Code, sp source.Span, tokText, format string, args ...any) {
	p.report(code, sp, tokText, format, args, nil)
}

func (p *Parser) report(code diag.Code, sp source.Span, tokText, format string, args []any, notes []diag.Note) {
	if p.opts.Reporter == nil {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = sprintf(format, args...)
	}
	b := diag.ReportWarning(p.opts.Reporter, code, sp, msg).WithToken(tokText)
	for _, n := range notes {
		b.WithNote(n.Span, n.Msg)
	}
	b.Emit()
}
