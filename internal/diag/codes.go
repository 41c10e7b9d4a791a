package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnterminatedBlock  Code = 1001
	LexMalformedBlockName Code = 1002
	LexUnterminatedRaw    Code = 1003
	LexUnterminatedQuote  Code = 1004

	// Структурные (парсер)
	SynInfo                Code = 2000
	SynUnbalancedBlock     Code = 2001
	SynUnmatchedClose      Code = 2002
	SynUnterminatedInline  Code = 2003
	SynUnclosedBlock       Code = 2004
	SynUnknownBlock        Code = 2005
	SynInvalidNesting      Code = 2006
	SynDuplicateAttribute  Code = 2007
	SynInvalidAttribute    Code = 2008
	SynDisallowedBlock     Code = 2009
	SynCloseWithArguments  Code = 2010
	SynBodylessBlockClosed Code = 2011

	// Семантические (резолвер)
	SemaInfo          Code = 3000
	SemaUnknownModule Code = 3001
	SemaMissingModule Code = 3002
	SemaInvalidMeta   Code = 3003
	SemaInvalidStyle  Code = 3004
	SemaInvalidLink   Code = 3005
)

// Warning kinds surfaced to callers.
const (
	KindLexError           = "lex-error"
	KindUnbalancedBlock    = "unbalanced-block"
	KindUnmatchedClose     = "unmatched-close"
	KindUnterminatedInline = "unterminated-inline"
	KindUnclosedBlock      = "unclosed-block"
	KindUnknownBlock       = "unknown-block"
	KindInvalidNesting     = "invalid-nesting"
	KindDuplicateAttribute = "duplicate-attribute"
	KindInvalidAttribute   = "invalid-attribute"
	KindDisallowedBlock    = "disallowed-block"
	KindMalformedBlock     = "malformed-block"
	KindUnknownModule      = "unknown-module"
	KindInvalidMeta        = "invalid-meta"
	KindInvalidStyle       = "invalid-style"
	KindInvalidLink        = "invalid-link"
)

type codeInfo struct {
	title string
	kind  string
	rule  string
}

var codeTable = map[Code]codeInfo{
	UnknownCode: {"Unknown error", "", "unknown"},

	LexInfo:               {"Lexical information", "", "lexer"},
	LexUnterminatedBlock:  {"Unterminated block marker", KindLexError, "block-marker"},
	LexMalformedBlockName: {"Malformed block name", KindLexError, "block-name"},
	LexUnterminatedRaw:    {"Unterminated raw span", KindLexError, "raw-span"},
	LexUnterminatedQuote:  {"Unterminated quoted argument", KindLexError, "argument-quote"},

	SynInfo:                {"Syntax information", "", "parser"},
	SynUnbalancedBlock:     {"Block closed implicitly", KindUnbalancedBlock, "block-balance"},
	SynUnmatchedClose:      {"Close marker without open block", KindUnmatchedClose, "block-close"},
	SynUnterminatedInline:  {"Unterminated inline markup", KindUnterminatedInline, "inline-delimiter"},
	SynUnclosedBlock:       {"Block not closed before end of input", KindUnclosedBlock, "block-eof"},
	SynUnknownBlock:        {"Unknown block name", KindUnknownBlock, "block-catalog"},
	SynInvalidNesting:      {"Block not allowed in inline context", KindInvalidNesting, "block-nesting"},
	SynDuplicateAttribute:  {"Duplicate attribute", KindDuplicateAttribute, "attribute-unique"},
	SynInvalidAttribute:    {"Attribute not allowed", KindInvalidAttribute, "attribute-allowlist"},
	SynDisallowedBlock:     {"Block not allowed in this mode", KindDisallowedBlock, "page-syntax"},
	SynCloseWithArguments:  {"Close marker carries arguments", KindMalformedBlock, "close-arguments"},
	SynBodylessBlockClosed: {"Close marker for a block without body", KindMalformedBlock, "bodyless-close"},

	SemaInfo:          {"Semantic information", "", "resolver"},
	SemaUnknownModule: {"Unknown module", KindUnknownModule, "module-registry"},
	SemaMissingModule: {"Module name missing", KindUnknownModule, "module-name"},
	SemaInvalidMeta:   {"Invalid meta directive", KindInvalidMeta, "meta-directive"},
	SemaInvalidStyle:  {"Style fragment does not parse", KindInvalidStyle, "style-syntax"},
	SemaInvalidLink:   {"Link target not allowed", KindInvalidLink, "link-target"},
}

// Stage is the pipeline phase that owns a code range.
type Stage uint8

const (
	StageOther Stage = iota
	StageLex
	StageParse
	StageResolve
)

func (s Stage) String() string {
	switch s {
	case StageLex:
		return "lex"
	case StageParse:
		return "parse"
	case StageResolve:
		return "resolve"
	}
	return "other"
}

// Stage возвращает фазу по диапазону кода.
func (c Code) Stage() Stage {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return StageLex
	case ic >= 2000 && ic < 3000:
		return StageParse
	case ic >= 3000 && ic < 4000:
		return StageResolve
	}
	return StageOther
}

func (c Code) ID() string {
	switch c.Stage() {
	case StageLex:
		return fmt.Sprintf("LEX%04d", int(c))
	case StageParse:
		return fmt.Sprintf("SYN%04d", int(c))
	case StageResolve:
		return fmt.Sprintf("SEM%04d", int(c))
	}
	return "E0000"
}

func (c Code) Title() string {
	info, ok := codeTable[c]
	if !ok {
		return codeTable[UnknownCode].title
	}
	return info.title
}

// Kind returns the warning classification, e.g. "unclosed-block".
func (c Code) Kind() string {
	return codeTable[c].kind
}

// Rule returns the identifier of the grammar or semantic rule the code reports.
func (c Code) Rule() string {
	info, ok := codeTable[c]
	if !ok {
		return codeTable[UnknownCode].rule
	}
	return info.rule
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
