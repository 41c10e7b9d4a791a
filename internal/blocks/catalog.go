package blocks

import (
	"slices"
	"strings"
)

// ID identifies a block kind of the markup language.
type ID uint8

const (
	Unknown ID = iota
	Div
	Span
	Bold
	Italics
	Underline
	Strikethrough
	Superscript
	Subscript
	Monospace
	Blockquote
	Anchor
	Code
	CSS
	Module
	Meta
	Footnote
	FootnoteBlock
	Ruby
	RubyText
	User
	Checkbox
	Radio
)

// Body describes what a block holds between its markers.
type Body uint8

const (
	// BodyNone: the block is a single marker without a close.
	BodyNone Body = iota
	// BodyElements: nested markup, parsed recursively.
	BodyElements
	// BodyRaw: verbatim text up to the close marker.
	BodyRaw
)

// Level tells where a block may appear.
type Level uint8

const (
	// LevelInline blocks may appear anywhere text may.
	LevelInline Level = iota
	// LevelFlow blocks end the current paragraph and cannot sit inside inline content.
	LevelFlow
)

// Flag captures special handling rules.
type Flag uint8

const (
	FlagNone Flag = 0
	// FlagPageSyntax marks blocks that only work when page syntax is enabled.
	FlagPageSyntax Flag = 1 << iota
	// FlagGlobalAttrs lets the block carry the safe HTML attribute set.
	FlagGlobalAttrs
	// FlagAnyAttrs disables attribute validation (module arguments).
	FlagAnyAttrs
	// FlagStar lets the marker carry a star: [[*user name]], [[*checkbox]].
	FlagStar
	// FlagNameArg: the whole argument string is a name, not attributes.
	FlagNameArg
)

// Spec describes one block of the catalog.
type Spec struct {
	ID      ID
	Name    string
	Aliases []string
	Body    Body
	Level   Level
	Flags   Flag
	Tag     string   // HTML element for plain containers
	Attrs   []string // block specific attribute names
}

// HasFlag reports whether the spec contains the given flag.
func (spec Spec) HasFlag(flag Flag) bool {
	return spec.Flags&flag != 0
}

// AllowsAttr reports whether key (lower case) may be set on the block.
func (spec Spec) AllowsAttr(key string) bool {
	if spec.HasFlag(FlagAnyAttrs) {
		return true
	}
	if slices.Contains(spec.Attrs, key) {
		return true
	}
	return spec.HasFlag(FlagGlobalAttrs) && IsSafeAttr(key)
}

var safeAttrs = []string{"class", "id", "style", "title", "lang", "dir"}

// IsSafeAttr reports whether key belongs to the global attribute allowlist.
func IsSafeAttr(key string) bool {
	if strings.HasPrefix(key, "data-") && len(key) > len("data-") {
		return true
	}
	return slices.Contains(safeAttrs, key)
}

var catalog = []Spec{
	{ID: Div, Name: "div", Body: BodyElements, Level: LevelFlow, Flags: FlagGlobalAttrs, Tag: "div"},
	{ID: Span, Name: "span", Body: BodyElements, Level: LevelInline, Flags: FlagGlobalAttrs, Tag: "span"},
	{ID: Bold, Name: "b", Aliases: []string{"bold", "strong"}, Body: BodyElements, Flags: FlagGlobalAttrs, Tag: "strong"},
	{ID: Italics, Name: "i", Aliases: []string{"italics", "em", "emphasis"}, Body: BodyElements, Flags: FlagGlobalAttrs, Tag: "em"},
	{ID: Underline, Name: "u", Aliases: []string{"underline"}, Body: BodyElements, Flags: FlagGlobalAttrs, Tag: "u"},
	{ID: Strikethrough, Name: "s", Aliases: []string{"strikethrough"}, Body: BodyElements, Flags: FlagGlobalAttrs, Tag: "s"},
	{ID: Superscript, Name: "sup", Aliases: []string{"super", "superscript"}, Body: BodyElements, Flags: FlagGlobalAttrs, Tag: "sup"},
	{ID: Subscript, Name: "sub", Aliases: []string{"subscript"}, Body: BodyElements, Flags: FlagGlobalAttrs, Tag: "sub"},
	{ID: Monospace, Name: "tt", Aliases: []string{"mono", "monospace"}, Body: BodyElements, Flags: FlagGlobalAttrs, Tag: "code"},
	{ID: Blockquote, Name: "blockquote", Aliases: []string{"quote"}, Body: BodyElements, Level: LevelFlow, Flags: FlagGlobalAttrs, Tag: "blockquote"},
	{ID: Anchor, Name: "a", Aliases: []string{"anchor"}, Body: BodyElements, Flags: FlagGlobalAttrs, Tag: "a", Attrs: []string{"href", "target"}},
	{ID: Code, Name: "code", Body: BodyRaw, Level: LevelFlow, Attrs: []string{"type"}},
	{ID: CSS, Name: "css", Body: BodyRaw, Level: LevelFlow, Flags: FlagPageSyntax},
	{ID: Module, Name: "module", Body: BodyRaw, Level: LevelFlow, Flags: FlagPageSyntax | FlagAnyAttrs},
	{ID: Meta, Name: "meta", Body: BodyNone, Level: LevelFlow, Flags: FlagPageSyntax, Attrs: []string{"name", "http-equiv", "property", "content"}},
	{ID: Footnote, Name: "footnote", Body: BodyElements},
	{ID: FootnoteBlock, Name: "footnoteblock", Body: BodyNone, Level: LevelFlow, Flags: FlagPageSyntax, Attrs: []string{"title", "hide"}},
	{ID: Ruby, Name: "ruby", Body: BodyElements, Flags: FlagGlobalAttrs, Tag: "ruby"},
	// rt только внутри [[ruby]]
	{ID: RubyText, Name: "rt", Aliases: []string{"rubytext"}, Body: BodyElements, Flags: FlagGlobalAttrs, Tag: "rt"},
	{ID: User, Name: "user", Body: BodyNone, Flags: FlagStar | FlagNameArg},
	{ID: Checkbox, Name: "checkbox", Body: BodyNone, Flags: FlagStar | FlagGlobalAttrs},
	{ID: Radio, Name: "radio", Aliases: []string{"radio-button"}, Body: BodyNone, Flags: FlagStar | FlagNameArg},
}

var registry = buildRegistry()

func buildRegistry() map[string]Spec {
	out := make(map[string]Spec, len(catalog)*2)
	for _, spec := range catalog {
		out[spec.Name] = spec
		for _, alias := range spec.Aliases {
			out[alias] = spec
		}
	}
	return out
}

// Lookup returns the block registered under name or one of its aliases (case-insensitive).
func Lookup(name string) (Spec, bool) {
	if name == "" {
		return Spec{}, false
	}
	spec, ok := registry[strings.ToLower(name)]
	return spec, ok
}

// ByID returns the catalog entry for id.
func ByID(id ID) (Spec, bool) {
	for _, spec := range catalog {
		if spec.ID == id {
			return spec, true
		}
	}
	return Spec{}, false
}

// Specs returns the catalog sorted by canonical name.
func Specs() []Spec {
	out := slices.Clone(catalog)
	slices.SortFunc(out, func(a, b Spec) int { return strings.Compare(a.Name, b.Name) })
	return out
}

func (id ID) String() string {
	if spec, ok := ByID(id); ok {
		return spec.Name
	}
	return "unknown"
}
