package token

// Kind represents the category of a markup token.
type Kind uint8

const (
	// Invalid is a malformed lexeme; the parser renders it as literal text.
	Invalid Kind = iota
	// EOF marks the end of the input. Its span is empty.
	EOF

	// Text is a maximal run of ordinary characters.
	Text
	// Whitespace is a run of spaces, tabs or carriage returns.
	Whitespace
	// LineBreak is a single newline.
	LineBreak
	// ParagraphBreak is two or more newlines with only blanks between them.
	ParagraphBreak

	// BlockOpen is `[[name args]]`.
	BlockOpen
	// BlockClose is `[[/name]]`.
	BlockClose
	// RawBody is the verbatim content of a raw block, up to its close marker.
	RawBody

	Bold           // **
	Italics        // //
	Underline      // __
	Strikethrough  // --
	Superscript    // ^^
	Subscript      // ,,
	MonospaceOpen  // {{
	MonospaceClose // }}

	// EmDash is `--` with whitespace on both sides.
	EmDash
	// Raw is `@@literal@@`; Value holds the literal.
	Raw
	// Url is a bare http(s) URL.
	Url
	// Link is `[target label]`; Name holds the target, Value the label.
	Link

	// Heading is `+` repeated 1..6 times followed by a space at line start.
	Heading
	// BulletItem is `* ` at line start, possibly indented.
	BulletItem
	// NumberedItem is `# ` at line start, possibly indented.
	NumberedItem
	// HorizontalRule is a line of four or more dashes.
	HorizontalRule
	// DefinitionItem is `: ` at line start.
	DefinitionItem
	// DefinitionSep is the `:` after whitespace that ends a definition term.
	DefinitionSep
)

var kindNames = [...]string{
	Invalid:        "Invalid",
	EOF:            "EOF",
	Text:           "Text",
	Whitespace:     "Whitespace",
	LineBreak:      "LineBreak",
	ParagraphBreak: "ParagraphBreak",
	BlockOpen:      "BlockOpen",
	BlockClose:     "BlockClose",
	RawBody:        "RawBody",
	Bold:           "Bold",
	Italics:        "Italics",
	Underline:      "Underline",
	Strikethrough:  "Strikethrough",
	Superscript:    "Superscript",
	Subscript:      "Subscript",
	MonospaceOpen:  "MonospaceOpen",
	MonospaceClose: "MonospaceClose",
	EmDash:         "EmDash",
	Raw:            "Raw",
	Url:            "Url",
	Link:           "Link",
	Heading:        "Heading",
	BulletItem:     "BulletItem",
	NumberedItem:   "NumberedItem",
	HorizontalRule: "HorizontalRule",
	DefinitionItem: "DefinitionItem",
	DefinitionSep:  "DefinitionSep",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsDelimiter reports whether k is a paired inline delimiter.
func (k Kind) IsDelimiter() bool {
	switch k {
	case Bold, Italics, Underline, Strikethrough, Superscript, Subscript, MonospaceOpen, MonospaceClose:
		return true
	default:
		return false
	}
}

// IsLineStart reports whether k only occurs at the beginning of a line.
func (k Kind) IsLineStart() bool {
	switch k {
	case Heading, BulletItem, NumberedItem, HorizontalRule, DefinitionItem:
		return true
	default:
		return false
	}
}

// Closer returns the delimiter closing k. Symmetric delimiters close themselves.
func (k Kind) Closer() Kind {
	if k == MonospaceOpen {
		return MonospaceClose
	}
	return k
}
