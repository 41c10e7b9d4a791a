package html

import (
	stdhtml "html"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// text writes a text run: NFC-normalized, then escaped.
func (g *generator) text(s string) {
	g.w(stdhtml.EscapeString(norm.NFC.String(s)))
}

func (g *generator) attr(s string) {
	g.w(stdhtml.EscapeString(s))
}

// commentSafe makes s safe inside an HTML comment.
func commentSafe(s string) string {
	s = stdhtml.EscapeString(s)
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.TrimSuffix(s, "-")
}
