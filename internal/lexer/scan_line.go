package lexer

import (
	"github.com/MrShwhale/ftml/internal/token"
)

// scanLineStart recognises the constructs that only exist at the start of a
// line: horizontal rules, headings, list bullets and definition items.
func (lx *Lexer) scanLineStart() (token.Token, bool) {
	m := lx.cursor.Mark()
	off := lx.cursor.Off

	switch lx.cursor.Peek() {
	case '-':
		end := off
		for lx.cursor.PeekAt(end) == '-' {
			end++
		}
		after := lx.skipSpaces(end)
		if end-off >= 4 && (after == lx.cursor.Limit || lx.cursor.PeekAt(after) == '\n') {
			lx.cursor.Advance(end - off)
			return lx.make(token.HorizontalRule, m), true
		}
	case '+':
		end := off
		for lx.cursor.PeekAt(end) == '+' {
			end++
		}
		level := int(end - off)
		if level <= 6 && lx.cursor.PeekAt(end) == ' ' {
			lx.cursor.Advance(end - off + 1)
			tok := lx.make(token.Heading, m)
			tok.Depth = level
			return tok, true
		}
	case ':':
		if lx.cursor.PeekAt(off+1) == ' ' {
			lx.cursor.Advance(2)
			lx.defTerm = true
			return lx.make(token.DefinitionItem, m), true
		}
	}

	// маркеры списков допускают отступ пробелами
	indent := off
	for lx.cursor.PeekAt(indent) == ' ' {
		indent++
	}
	bullet := lx.cursor.PeekAt(indent)
	if (bullet == '*' || bullet == '#') && lx.cursor.PeekAt(indent+1) == ' ' {
		lx.cursor.Advance(indent - off + 2)
		kind := token.BulletItem
		if bullet == '#' {
			kind = token.NumberedItem
		}
		tok := lx.make(kind, m)
		tok.Depth = int(indent - off)
		return tok, true
	}
	return token.Token{}, false
}

// scanDefinitionSep emits the ':' that separates a definition term from its
// description. Only the first ':' preceded by whitespace on a definition line counts.
func (lx *Lexer) scanDefinitionSep() (token.Token, bool) {
	prev, ok := lx.cursor.Prev()
	if !lx.defTerm || !ok || !isSpace(prev) {
		return token.Token{}, false
	}
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.defTerm = false
	return lx.make(token.DefinitionSep, m), true
}

func (lx *Lexer) skipSpaces(off uint32) uint32 {
	for off < lx.cursor.Limit && isSpace(lx.file.Content[off]) {
		off++
	}
	return off
}

// scanNewlines: один '\n', LineBreak, два и больше (с пустыми строками между), ParagraphBreak.
func (lx *Lexer) scanNewlines() token.Token {
	lx.defTerm = false
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	count := 1
	for {
		next := lx.skipSpaces(lx.cursor.Off)
		if lx.cursor.PeekAt(next) != '\n' || next >= lx.cursor.Limit {
			break
		}
		lx.cursor.Advance(next - lx.cursor.Off + 1)
		count++
	}
	if count == 1 {
		return lx.make(token.LineBreak, m)
	}
	return lx.make(token.ParagraphBreak, m)
}

func (lx *Lexer) scanWhitespace() token.Token {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.make(token.Whitespace, m)
}
