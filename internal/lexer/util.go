package lexer

import (
	"github.com/MrShwhale/ftml/internal/source"
)

// ===== Классификаторы =====

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

// isBlank: пробел, перевод строки или конец ввода (0).
func isBlank(b byte) bool {
	return b == 0 || b == '\n' || isSpace(b)
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isNameByte(b byte) bool {
	return isLetter(b) || isDec(b) || b == '_' || b == '-'
}

func isWordByte(b byte) bool {
	return isLetter(b) || isDec(b) || b == '_' || b >= 0x80
}

// isDelimiterByte: символы, удвоение которых даёт инлайн-разметку.
func isDelimiterByte(b byte) bool {
	switch b {
	case '*', '/', '_', '-', '^', ',', '{', '}':
		return true
	}
	return false
}

// ===== Срезы исходника =====

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) span(start, end uint32) source.Span {
	return source.Span{File: lx.file.ID, Start: start, End: end}
}

func (lx *Lexer) emptySpan() source.Span {
	return lx.span(lx.cursor.Off, lx.cursor.Off)
}

// lineEnd возвращает смещение ближайшего '\n' (или Limit) начиная с off.
func (lx *Lexer) lineEnd(off uint32) uint32 {
	for off < lx.cursor.Limit && lx.file.Content[off] != '\n' {
		off++
	}
	return off
}

func (lx *Lexer) atLineStart() bool {
	prev, ok := lx.cursor.Prev()
	return !ok || prev == '\n'
}
