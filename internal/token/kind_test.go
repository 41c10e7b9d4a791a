package token_test

import (
	"testing"

	"github.com/MrShwhale/ftml/internal/token"
)

func TestKindString(t *testing.T) {
	for k := token.Invalid; k <= token.DefinitionSep; k++ {
		if s := k.String(); s == "" || s == "Kind(?)" {
			t.Errorf("kind %d has no name", k)
		}
	}
	if got := token.Kind(200).String(); got != "Kind(?)" {
		t.Errorf("out of range kind = %q", got)
	}
}

func TestIsDelimiter(t *testing.T) {
	delims := []token.Kind{
		token.Bold, token.Italics, token.Underline, token.Strikethrough,
		token.Superscript, token.Subscript, token.MonospaceOpen, token.MonospaceClose,
	}
	for _, k := range delims {
		if !k.IsDelimiter() {
			t.Errorf("%s should be a delimiter", k)
		}
	}
	for _, k := range []token.Kind{token.Text, token.EmDash, token.BlockOpen, token.Raw} {
		if k.IsDelimiter() {
			t.Errorf("%s should not be a delimiter", k)
		}
	}
}

func TestCloser(t *testing.T) {
	if token.MonospaceOpen.Closer() != token.MonospaceClose {
		t.Error("monospace must close with }}")
	}
	if token.Bold.Closer() != token.Bold {
		t.Error("bold must close itself")
	}
}

func TestTokenFlags(t *testing.T) {
	tok := token.Token{Kind: token.Bold, Flags: token.FlagOpens}
	if !tok.Has(token.FlagOpens) || tok.Has(token.FlagCloses) {
		t.Errorf("unexpected flags %b", tok.Flags)
	}
	if !tok.Is(token.Italics, token.Bold) || tok.Is(token.Text) {
		t.Error("Is mismatch")
	}
}
