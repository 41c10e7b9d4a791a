package lexer

import (
	"github.com/MrShwhale/ftml/internal/source"
	"github.com/MrShwhale/ftml/internal/token"
)

// Lexer turns markup into tokens on demand. It is single-pass: a new Lexer
// must be created to scan the same file again.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
	// rawEnd > 0, следующий токен является телом сырого блока до этого смещения
	rawEnd  uint32
	rawOpen bool
	// defTerm: строка начата с ": ", разделитель термина ещё не встречен
	defTerm bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.rawOpen {
		lx.rawOpen = false
		if lx.rawEnd > lx.cursor.Off {
			return lx.scanRawBody()
		}
	}

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	if lx.atLineStart() {
		if tok, ok := lx.scanLineStart(); ok {
			return tok
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '\n':
		return lx.scanNewlines()
	case isSpace(ch):
		return lx.scanWhitespace()
	case ch == '[':
		if lx.cursor.HasPrefix("[[") {
			return lx.scanBlockMarker()
		}
		if tok, ok := lx.scanLink(); ok {
			return tok
		}
	case ch == '@':
		if lx.cursor.HasPrefix("@@") {
			return lx.scanRaw()
		}
	case ch == ':':
		if tok, ok := lx.scanDefinitionSep(); ok {
			return tok
		}
	case ch == 'h':
		if tok, ok := lx.scanURL(); ok {
			return tok
		}
	case isDelimiterByte(ch):
		if tok, ok := lx.scanDelimiter(); ok {
			return tok
		}
	}
	return lx.scanText()
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// All scans the remaining input, EOF included.
func (lx *Lexer) All() []token.Token {
	out := make([]token.Token, 0, 64)
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) make(kind token.Kind, m Mark) token.Token {
	sp := lx.cursor.SpanFrom(m)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// scanText consumes ordinary characters up to the next position where another
// token may start. It always consumes at least one byte.
func (lx *Lexer) scanText() token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && !lx.startsToken() {
		lx.cursor.Bump()
	}
	return lx.make(token.Text, m)
}

// startsToken reports whether a non-text token begins at the cursor.
// It mirrors the dispatch in Next without consuming anything.
func (lx *Lexer) startsToken() bool {
	ch := lx.cursor.Peek()
	switch {
	case ch == '\n' || isSpace(ch):
		return true
	case ch == '[':
		return lx.cursor.HasPrefix("[[") || lx.matchLink(lx.cursor.Off) > 0
	case ch == '@':
		return lx.cursor.HasPrefix("@@")
	case ch == 'h':
		return lx.matchURL(lx.cursor.Off) > 0
	case isDelimiterByte(ch):
		return lx.delimiterAt(lx.cursor.Off) != token.Invalid
	}
	return false
}
