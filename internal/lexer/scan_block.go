package lexer

import (
	"bytes"
	"strings"

	"github.com/MrShwhale/ftml/internal/blocks"
	"github.com/MrShwhale/ftml/internal/diag"
	"github.com/MrShwhale/ftml/internal/token"
)

// scanBlockMarker scans `[[name args]]`, `[[*name args]]` or `[[/name]]`.
// A marker that is not terminated on its line, or has no valid name, is
// reported and only its `[[` is consumed (as an Invalid token); lexing
// resumes right after it.
func (lx *Lexer) scanBlockMarker() token.Token {
	start := lx.cursor.Off
	pos := start + 2
	closing := lx.cursor.PeekAt(pos) == '/'
	star := !closing && lx.cursor.PeekAt(pos) == '*'
	if closing || star {
		pos++
	}
	nameStart := pos
	for isNameByte(lx.cursor.PeekAt(pos)) && pos < lx.cursor.Limit {
		pos++
	}
	nameEnd := pos

	end, bad, code := lx.findMarkerEnd(nameEnd)
	if code != diag.UnknownCode {
		lx.report(code, lx.span(start, bad), "block marker is not terminated before the end of the line")
		return lx.invalidBrackets()
	}

	name := string(lx.file.Content[nameStart:nameEnd])
	next := lx.cursor.PeekAt(nameEnd)
	if name == "" || !isLetter(name[0]) || (nameEnd < end && !isSpace(next)) {
		lx.report(diag.LexMalformedBlockName, lx.span(start, end+2), "block marker has no valid name")
		return lx.invalidBrackets()
	}

	m := lx.cursor.Mark()
	lx.cursor.Advance(end + 2 - start)
	tok := lx.make(token.BlockOpen, m)
	tok.Name = strings.ToLower(name)

	argStart := lx.skipSpaces(nameEnd)
	argEnd := end
	for argEnd > argStart && isSpace(lx.file.Content[argEnd-1]) {
		argEnd--
	}
	tok.Value = string(lx.file.Content[argStart:argEnd])
	tok.ValueStart = argStart
	if star {
		tok.Flags |= token.FlagStar
	}

	if closing {
		tok.Kind = token.BlockClose
		if tok.Value != "" {
			tok.Flags |= token.FlagTrailingArgs
		}
		return tok
	}

	if bodyEnd, ok := lx.rawBodyEnd(tok); ok {
		tok.Flags |= token.FlagHasBody
		lx.rawOpen = true
		lx.rawEnd = bodyEnd
	}
	return tok
}

// findMarkerEnd ищет "]]" на текущей строке, пропуская значения в кавычках после '='.
// Возвращает смещение "]]" или место ошибки и её код.
func (lx *Lexer) findMarkerEnd(from uint32) (end, bad uint32, code diag.Code) {
	var quote byte
	for i := from; i < lx.cursor.Limit; i++ {
		c := lx.file.Content[i]
		if c == '\n' {
			if quote != 0 {
				return 0, i, diag.LexUnterminatedQuote
			}
			return 0, i, diag.LexUnterminatedBlock
		}
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch {
		case (c == '"' || c == '\'') && i > from && lx.file.Content[i-1] == '=':
			quote = c
		case c == ']' && lx.cursor.PeekAt(i+1) == ']':
			return i, 0, diag.UnknownCode
		}
	}
	if quote != 0 {
		return 0, lx.cursor.Limit, diag.LexUnterminatedQuote
	}
	return 0, lx.cursor.Limit, diag.LexUnterminatedBlock
}

func (lx *Lexer) invalidBrackets() token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Advance(2)
	return lx.make(token.Invalid, m)
}

// rawBodyEnd decides whether the block opened by tok carries a raw body and
// where that body stops. Known raw blocks without a close marker run to the
// end of input; unknown modules only take a body when their close marker
// comes before the next module.
func (lx *Lexer) rawBodyEnd(tok token.Token) (uint32, bool) {
	spec, ok := blocks.Lookup(tok.Name)
	if !ok || spec.Body != blocks.BodyRaw {
		return 0, false
	}
	from := tok.Span.End
	closeAt, found := lx.findMarker(from, lx.cursor.Limit, tok.Name, true)

	if spec.ID == blocks.Module {
		mod, known := blocks.LookupModule(blocks.ModuleName(tok.Value))
		switch {
		case known && mod.Body == blocks.BodyNone:
			return 0, false
		case !known:
			if !found {
				return 0, false
			}
			if _, nested := lx.findMarker(from, closeAt, tok.Name, false); nested {
				return 0, false
			}
		}
	}
	if !found {
		return lx.cursor.Limit, true
	}
	return closeAt, true
}

// findMarker ищет маркер блока name (открывающий или закрывающий) в [from, to).
func (lx *Lexer) findMarker(from, to uint32, name string, closing bool) (uint32, bool) {
	prefix := []byte("[[")
	if closing {
		prefix = []byte("[[/")
	}
	content := lx.file.Content[:to]
	for from < to {
		idx := bytes.Index(content[from:], prefix)
		if idx < 0 {
			return 0, false
		}
		at := from + uint32(idx) // #nosec G115 -- idx < len(content)
		pos := at + uint32(len(prefix))
		nameEnd := pos
		for nameEnd < to && isNameByte(content[nameEnd]) {
			nameEnd++
		}
		if strings.EqualFold(string(content[pos:nameEnd]), name) {
			rest := lx.skipSpaces(nameEnd)
			if !closing && rest > nameEnd {
				return at, true
			}
			if rest+1 < to && content[rest] == ']' && content[rest+1] == ']' {
				return at, true
			}
		}
		from = pos
	}
	return 0, false
}

// scanRawBody emits the verbatim body of a raw block.
func (lx *Lexer) scanRawBody() token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Advance(lx.rawEnd - lx.cursor.Off)
	return lx.make(token.RawBody, m)
}
