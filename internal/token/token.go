package token

import (
	"github.com/MrShwhale/ftml/internal/source"
)

// Flags carries lexer facts the parser needs without rescanning.
type Flags uint8

const (
	// FlagOpens: the delimiter is followed by a non-space character and may open a span.
	FlagOpens Flags = 1 << iota
	// FlagCloses: the delimiter is preceded by a non-space character and may close a span.
	FlagCloses
	// FlagHasBody: a BlockOpen whose raw body (and close marker) follows.
	FlagHasBody
	// FlagTrailingArgs: a BlockClose with text after its name.
	FlagTrailingArgs
	// FlagStar: a BlockOpen written as [[*name ...]].
	FlagStar
)

// Token represents a single markup token with its location.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string // срез исходника, совпадает со Span
	Name  string // имя блока (в нижнем регистре) или цель ссылки
	Value string // аргументы блока, подпись ссылки, содержимое @@...@@
	// ValueStart is the byte offset of Value inside the input.
	ValueStart uint32
	Depth      int // уровень заголовка или отступ элемента списка
	Flags      Flags
}

func (t Token) Has(f Flags) bool { return t.Flags&f != 0 }

// Is reports whether the token has one of the given kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// IsBreak reports whether the token ends a line.
func (t Token) IsBreak() bool {
	return t.Kind == LineBreak || t.Kind == ParagraphBreak
}
