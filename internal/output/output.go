// Package output defines the result of a render call.
package output

import (
	"fmt"

	"github.com/MrShwhale/ftml/internal/diag"
	"github.com/MrShwhale/ftml/internal/source"
)

// MetaKind is the attribute a <meta> element uses to name its key.
type MetaKind uint8

const (
	MetaName MetaKind = iota
	MetaHTTPEquiv
	MetaProperty
	metaKindCount
)

var metaKindNames = [...]string{
	MetaName:      "name",
	MetaHTTPEquiv: "http-equiv",
	MetaProperty:  "property",
}

// Valid reports whether k is one of the defined kinds.
func (k MetaKind) Valid() bool {
	return k < metaKindCount
}

// String returns the HTML attribute name. It panics on an undefined kind.
func (k MetaKind) String() string {
	k.mustValid()
	return metaKindNames[k]
}

func (k MetaKind) mustValid() {
	if !k.Valid() {
		panic(fmt.Sprintf("output: invalid MetaKind %d", uint8(k)))
	}
}

// MarshalText encodes the kind by name in JSON output.
func (k MetaKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid MetaKind %d", uint8(k))
	}
	return []byte(metaKindNames[k]), nil
}

// UnmarshalText decodes a kind written by MarshalText.
func (k *MetaKind) UnmarshalText(b []byte) error {
	kind, ok := ParseMetaKind(string(b))
	if !ok {
		return fmt.Errorf("unknown meta kind %q", b)
	}
	*k = kind
	return nil
}

// ParseMetaKind maps an attribute name to its kind.
func ParseMetaKind(s string) (MetaKind, bool) {
	for i, name := range metaKindNames {
		if name == s {
			return MetaKind(i), true // #nosec G115 -- index of a three element array
		}
	}
	return 0, false
}

// MetaEntry is one <meta> element of the page head.
type MetaEntry struct {
	Kind  MetaKind `json:"kind" msgpack:"kind"`
	Name  string   `json:"name" msgpack:"name"`
	Value string   `json:"value" msgpack:"value"`
}

// NewMeta builds an entry and panics on an undefined kind.
func NewMeta(kind MetaKind, name, value string) MetaEntry {
	kind.mustValid()
	return MetaEntry{Kind: kind, Name: name, Value: value}
}

// Warning is a recoverable problem found while rendering.
type Warning struct {
	Token string      `json:"token" msgpack:"token"`
	Rule  string      `json:"rule" msgpack:"rule"`
	Span  source.Span `json:"span" msgpack:"span"`
	Kind  string      `json:"kind" msgpack:"kind"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s at %d..%d (rule %s, token %q)", w.Kind, w.Span.Start, w.Span.End, w.Rule, w.Token)
}

// FromDiagnostic converts a collected diagnostic into a Warning.
func FromDiagnostic(d diag.Diagnostic) Warning {
	return Warning{
		Token: d.Token,
		Rule:  d.Code.Rule(),
		Span:  d.Primary,
		Kind:  d.Code.Kind(),
	}
}

// FromBag converts every diagnostic of bag, keeping its order.
func FromBag(bag *diag.Bag) []Warning {
	if bag == nil {
		return nil
	}
	items := bag.Items()
	out := make([]Warning, 0, len(items))
	for _, d := range items {
		out = append(out, FromDiagnostic(d))
	}
	return out
}

// HtmlOutput is everything a render call produces.
type HtmlOutput struct {
	Body     string      `json:"body" msgpack:"body"`
	Styles   []string    `json:"styles" msgpack:"styles"`
	Meta     []MetaEntry `json:"meta" msgpack:"meta"`
	Warnings []Warning   `json:"warnings" msgpack:"warnings"`
}

// TextOutput is the plain-text rendering of a document.
type TextOutput struct {
	Text     string    `json:"text" msgpack:"text"`
	Warnings []Warning `json:"warnings" msgpack:"warnings"`
}
