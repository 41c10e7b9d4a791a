package lexer

import (
	"strings"

	"github.com/MrShwhale/ftml/internal/diag"
	"github.com/MrShwhale/ftml/internal/token"
)

var delimiterKinds = map[byte]token.Kind{
	'*': token.Bold,
	'/': token.Italics,
	'_': token.Underline,
	'-': token.Strikethrough,
	'^': token.Superscript,
	',': token.Subscript,
	'{': token.MonospaceOpen,
	'}': token.MonospaceClose,
}

// delimiterAt returns the delimiter kind starting at off, or Invalid.
// Runs of three or more dashes are plain text; "//" right after ':' belongs to a scheme.
func (lx *Lexer) delimiterAt(off uint32) token.Kind {
	c := lx.cursor.PeekAt(off)
	kind, ok := delimiterKinds[c]
	if !ok || lx.cursor.PeekAt(off+1) != c {
		return token.Invalid
	}
	if c == '/' && off > 0 && lx.file.Content[off-1] == ':' {
		return token.Invalid
	}
	if c == '-' && (lx.cursor.PeekAt(off+2) == '-' || (off > 0 && lx.file.Content[off-1] == '-')) {
		return token.Invalid
	}
	return kind
}

// scanDelimiter scans a doubled inline delimiter and records whether it can
// open (followed by non-blank) or close (preceded by non-blank) a span.
func (lx *Lexer) scanDelimiter() (token.Token, bool) {
	off := lx.cursor.Off
	kind := lx.delimiterAt(off)
	if kind == token.Invalid {
		return token.Token{}, false
	}
	prev, hasPrev := lx.cursor.Prev()
	next := lx.cursor.PeekAt(off + 2)
	prevBlank := !hasPrev || isBlank(prev)
	nextBlank := isBlank(next)

	m := lx.cursor.Mark()
	lx.cursor.Advance(2)
	if kind == token.Strikethrough && prevBlank && nextBlank {
		return lx.make(token.EmDash, m), true
	}
	tok := lx.make(kind, m)
	if !nextBlank {
		tok.Flags |= token.FlagOpens
	}
	if !prevBlank {
		tok.Flags |= token.FlagCloses
	}
	return tok, true
}

// scanRaw scans `@@literal@@` on a single line. Without a closing `@@` the
// opening pair is reported and emitted as Invalid.
func (lx *Lexer) scanRaw() token.Token {
	start := lx.cursor.Off
	lineEnd := lx.lineEnd(start + 2)
	line := lx.file.Content[start+2 : lineEnd]
	idx := strings.Index(string(line), "@@")
	if idx < 0 {
		lx.report(diag.LexUnterminatedRaw, lx.span(start, lineEnd), "raw span is not closed before the end of the line")
		return lx.invalidBrackets()
	}
	m := lx.cursor.Mark()
	lx.cursor.Advance(uint32(idx) + 4) // #nosec G115 -- idx < len(line)
	tok := lx.make(token.Raw, m)
	tok.Value = string(line[:idx])
	tok.ValueStart = start + 2
	return tok
}

// matchURL returns the length of a bare http(s) URL at off, 0 if there is none.
func (lx *Lexer) matchURL(off uint32) uint32 {
	if off > 0 && isWordByte(lx.file.Content[off-1]) {
		return 0
	}
	var scheme uint32
	switch {
	case lx.cursor.hasPrefixAt(off, "https://"):
		scheme = 8
	case lx.cursor.hasPrefixAt(off, "http://"):
		scheme = 7
	default:
		return 0
	}
	end := off + scheme
	for end < lx.cursor.Limit && !isURLStop(lx.file.Content[end]) {
		end++
	}
	for end > off+scheme && strings.IndexByte(".,;:!?)'", lx.file.Content[end-1]) >= 0 {
		end--
	}
	if end == off+scheme {
		return 0
	}
	return end - off
}

func isURLStop(b byte) bool {
	return isBlank(b) || strings.IndexByte(`]|"<>`, b) >= 0
}

func (lx *Lexer) scanURL() (token.Token, bool) {
	n := lx.matchURL(lx.cursor.Off)
	if n == 0 {
		return token.Token{}, false
	}
	m := lx.cursor.Mark()
	lx.cursor.Advance(n)
	tok := lx.make(token.Url, m)
	tok.Name = tok.Text
	return tok, true
}

// matchLink returns the length of a `[target label]` link at off, 0 if there is none.
// The target must be an http(s) URL, a local path or an anchor.
func (lx *Lexer) matchLink(off uint32) uint32 {
	if lx.cursor.PeekAt(off) != '[' || lx.cursor.PeekAt(off+1) == '[' {
		return 0
	}
	t := off + 1
	if !(lx.cursor.hasPrefixAt(t, "http://") || lx.cursor.hasPrefixAt(t, "https://") ||
		(lx.cursor.PeekAt(t) == '/' && lx.cursor.PeekAt(t+1) != '/') || lx.cursor.PeekAt(t) == '#') {
		return 0
	}
	for t < lx.cursor.Limit && !isBlank(lx.file.Content[t]) && lx.file.Content[t] != ']' {
		t++
	}
	if lx.cursor.PeekAt(t) != ' ' {
		return 0
	}
	for end := t; end < lx.cursor.Limit; end++ {
		switch lx.file.Content[end] {
		case '\n', '[':
			return 0
		case ']':
			return end + 1 - off
		}
	}
	return 0
}

func (lx *Lexer) scanLink() (token.Token, bool) {
	off := lx.cursor.Off
	n := lx.matchLink(off)
	if n == 0 {
		return token.Token{}, false
	}
	m := lx.cursor.Mark()
	lx.cursor.Advance(n)
	tok := lx.make(token.Link, m)

	inner := tok.Text[1 : len(tok.Text)-1]
	sp := strings.IndexByte(inner, ' ')
	tok.Name = inner[:sp]
	label := strings.TrimLeft(inner[sp:], " ")
	tok.ValueStart = off + 1 + uint32(len(inner)-len(label)) // #nosec G115 -- bounded by n
	tok.Value = strings.TrimRight(label, " ")
	return tok, true
}
