package parser

import (
	"fmt"

	"github.com/MrShwhale/ftml/internal/ast"
	"github.com/MrShwhale/ftml/internal/blocks"
	"github.com/MrShwhale/ftml/internal/source"
	"github.com/MrShwhale/ftml/internal/token"
)

var sprintf = fmt.Sprintf

type frameKind uint8

const (
	frameRoot   frameKind = iota
	frameBlock            // [[name]] ... [[/name]]
	frameInline           // **...**, //...// и т.п.
	frameLine             // заголовок или элемент списка до конца строки
)

// frame is an open construct. Nodes are allocated when the frame closes, so
// an abandoned frame can be spliced back into its parent as literal text.
type frame struct {
	kind     frameKind
	open     token.Token
	spec     blocks.Spec
	delim    token.Kind
	node     ast.Node // шаблон узла, заполняется при открытии
	children []ast.NodeID
	raw      *token.Token
	// literal: блок недопустим здесь и при закрытии станет текстом
	literal bool
	// sep: разделитель термина в строке определения, split: число детей до него
	sep   *token.Token
	split int
}

func (p *Parser) top() *frame {
	return p.stack[len(p.stack)-1]
}

func (p *Parser) push(f *frame) {
	p.stack = append(p.stack, f)
}

func (p *Parser) pop() *frame {
	f := p.top()
	p.stack = p.stack[:len(p.stack)-1]
	return f
}

// context returns the index of the nearest frame that is not an inline delimiter.
func (p *Parser) context() int {
	i := len(p.stack) - 1
	for i > 0 && p.stack[i].kind == frameInline {
		i--
	}
	return i
}

// isFlow reports whether block-level content may be placed into f.
func isFlow(f *frame) bool {
	switch f.kind {
	case frameRoot:
		return true
	case frameBlock:
		return !f.literal && f.spec.Level == blocks.LevelFlow && f.spec.Body == blocks.BodyElements
	}
	return false
}

// closeDelimitersAbove turns every delimiter frame above stack index i into literal text.
func (p *Parser) closeDelimitersAbove(i int) {
	for len(p.stack)-1 > i && p.top().kind == frameInline {
		p.unterminate(p.top())
	}
}

func (p *Parser) appendID(id ast.NodeID) {
	f := p.top()
	f.children = append(f.children, id)
}

func (p *Parser) appendNode(n ast.Node) {
	p.appendID(p.b.Add(n))
}

// appendText adds literal text, merging it into a directly preceding text node.
func (p *Parser) appendText(sp source.Span, text string) {
	if text == "" {
		return
	}
	f := p.top()
	if k := len(f.children); k > 0 {
		last := p.b.Get(f.children[k-1])
		if last.Kind == ast.NodeText && last.Span.End == sp.Start {
			last.Text += text
			last.Span.End = sp.End
			return
		}
	}
	p.appendID(p.b.NewText(sp, text))
}

// splice moves children into the current top frame, merging adjacent text.
func (p *Parser) splice(children []ast.NodeID) {
	for _, id := range children {
		n := p.b.Get(id)
		if n.Kind == ast.NodeText {
			p.appendText(n.Span, n.Text)
			continue
		}
		p.appendID(id)
	}
}

func (p *Parser) span(start, end uint32) source.Span {
	return source.Span{File: p.file.ID, Start: start, End: end}
}
