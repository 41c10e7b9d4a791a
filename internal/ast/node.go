package ast

import (
	"strings"

	"github.com/MrShwhale/ftml/internal/blocks"
	"github.com/MrShwhale/ftml/internal/source"
)

type NodeID uint32

const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }

// NodeKind is the tag of the syntax node variant.
type NodeKind uint8

const (
	NodeInvalid NodeKind = iota
	// NodeDocument is the root; its children are the page flow.
	NodeDocument
	// NodeText is a run of literal text (Text holds it, unescaped).
	NodeText
	// NodeRaw is an @@...@@ literal.
	NodeRaw
	NodeLineBreak
	NodeParagraphBreak
	NodeEmDash
	// NodeContainer is a formatting or layout block; Block says which.
	// Delimited marks containers written with inline delimiters (**bold**).
	NodeContainer
	// NodeStyle is a [[css]] block; Text holds the raw body.
	NodeStyle
	// NodeModule is a [[module Name]] invocation; Text holds the raw body.
	NodeModule
	// NodeMeta is a [[meta ...]] directive; Attrs hold its keys.
	NodeMeta
	// NodeCode is a [[code]] block; Text holds the raw body.
	NodeCode
	// NodeLink is a bare URL or a [target label] link; Children hold the label.
	NodeLink
	NodeHeading
	NodeList
	NodeListItem
	NodeHorizontalRule
	// NodeFootnote is an inline [[footnote]]; Index is its 1-based number after resolution.
	NodeFootnote
	NodeFootnoteBlock
	// NodeDefinitionList groups consecutive definition items.
	NodeDefinitionList
	// NodeDefinitionItem has exactly two children: a term and its description.
	NodeDefinitionItem
	NodeDefinitionTerm
	NodeDefinitionDesc
	// NodeUser is [[user name]]; Name holds the user name, FlagStarred asks for the avatar.
	NodeUser
	// NodeInput is [[checkbox]] or [[radio group]]; Block says which, Name holds the group.
	NodeInput
)

var nodeKindNames = [...]string{
	NodeInvalid:        "Invalid",
	NodeDocument:       "Document",
	NodeText:           "Text",
	NodeRaw:            "Raw",
	NodeLineBreak:      "LineBreak",
	NodeParagraphBreak: "ParagraphBreak",
	NodeEmDash:         "EmDash",
	NodeContainer:      "Container",
	NodeStyle:          "Style",
	NodeModule:         "Module",
	NodeMeta:           "Meta",
	NodeCode:           "Code",
	NodeLink:           "Link",
	NodeHeading:        "Heading",
	NodeList:           "List",
	NodeListItem:       "ListItem",
	NodeHorizontalRule: "HorizontalRule",
	NodeFootnote:       "Footnote",
	NodeFootnoteBlock:  "FootnoteBlock",
	NodeDefinitionList: "DefinitionList",
	NodeDefinitionItem: "DefinitionItem",
	NodeDefinitionTerm: "DefinitionTerm",
	NodeDefinitionDesc: "DefinitionDesc",
	NodeUser:           "User",
	NodeInput:          "Input",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "Invalid"
}

// IsFlow reports whether nodes of this kind end the current paragraph.
func (k NodeKind) IsFlow() bool {
	switch k {
	case NodeStyle, NodeModule, NodeMeta, NodeCode, NodeHeading, NodeList,
		NodeListItem, NodeHorizontalRule, NodeFootnoteBlock,
		NodeDefinitionList, NodeDefinitionItem:
		return true
	}
	return false
}

// NodeFlags carries facts set by the parser and resolver.
type NodeFlags uint8

const (
	// FlagUnclosed: the block was force-closed at the end of input.
	FlagUnclosed NodeFlags = 1 << iota
	// FlagRemoved: the resolver moved the node out of the body (styles, meta).
	FlagRemoved
	// FlagNeutralized: the node renders as an HTML comment (unknown module).
	FlagNeutralized
	// FlagStarred: the block was written with a star ([[*checkbox]] is checked).
	FlagStarred
)

// Attr is one key/value argument of a block marker.
type Attr struct {
	Key   string // в нижнем регистре
	Value string
	Bare  bool // слово без '=': [[module CSS]]
	Span  source.Span
}

type Node struct {
	Kind      NodeKind
	Span      source.Span
	Block     blocks.ID
	Delimited bool
	Text      string
	Target    string // ссылка: адрес
	Name      string // модуль: имя как в исходнике; пользователь; группа radio
	Module    blocks.ModuleID
	Depth     int  // уровень заголовка / вложенность списка
	Ordered   bool // список: нумерованный
	Index     int  // номер сноски или заголовка
	Attrs     []Attr
	Children  []NodeID
	Flags     NodeFlags
}

func (n *Node) Has(f NodeFlags) bool { return n.Flags&f != 0 }

// Attr returns the value of the first attribute named key.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key && !a.Bare {
			return a.Value, true
		}
	}
	return "", false
}

// TrimRawBody drops the newline after the open marker and the one before the
// close marker of a raw block body.
func TrimRawBody(body string) string {
	body = strings.TrimPrefix(body, "\n")
	return strings.TrimSuffix(body, "\n")
}
