package parser

import (
	"strings"

	"github.com/MrShwhale/ftml/internal/ast"
	"github.com/MrShwhale/ftml/internal/blocks"
	"github.com/MrShwhale/ftml/internal/diag"
	"github.com/MrShwhale/ftml/internal/token"
)

// parseAttrs splits the arguments of a block marker into attributes.
// Accepted forms: key=value, key="value", key='value' and bare words.
func (p *Parser) parseAttrs(tok token.Token, spec blocks.Spec) []ast.Attr {
	s := tok.Value
	if s == "" {
		return nil
	}
	var out []ast.Attr
	i := 0
	for i < len(s) {
		for i < len(s) && isBlank(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}
		start := i
		for i < len(s) && !isBlank(s[i]) && s[i] != '=' {
			i++
		}
		key := strings.ToLower(s[start:i])
		attr := ast.Attr{Key: key}

		if i < len(s) && s[i] == '=' {
			i++
			if i < len(s) && (s[i] == '"' || s[i] == '\'') {
				q := s[i]
				i++
				vs := i
				for i < len(s) && s[i] != q {
					i++
				}
				attr.Value = s[vs:i]
				if i < len(s) {
					i++
				}
			} else {
				vs := i
				for i < len(s) && !isBlank(s[i]) {
					i++
				}
				attr.Value = s[vs:i]
			}
		} else {
			attr.Bare = true
		}
		attr.Span = p.span(tok.ValueStart+uint32(start), tok.ValueStart+uint32(i)) // #nosec G115 -- marker is shorter than the input

		if attr.Key == "" {
			p.warnf(diag.SynInvalidAttribute, attr.Span, tok.Text, "attribute without a name in [[%s]]", tok.Name)
			continue
		}
		if attr.Bare && !spec.HasFlag(blocks.FlagAnyAttrs) {
			p.warnf(diag.SynInvalidAttribute, attr.Span, tok.Text, "stray word %q in [[%s]]", attr.Key, tok.Name)
			continue
		}
		if !attr.Bare && !spec.AllowsAttr(attr.Key) {
			p.warnf(diag.SynInvalidAttribute, attr.Span, tok.Text, "attribute %q is not allowed on [[%s]]", attr.Key, tok.Name)
			continue
		}
		if !attr.Bare && hasAttr(out, attr.Key) {
			p.warnf(diag.SynDuplicateAttribute, attr.Span, tok.Text, "duplicate attribute %q in [[%s]]", attr.Key, tok.Name)
			continue
		}
		out = append(out, attr)
	}
	return out
}

func hasAttr(attrs []ast.Attr, key string) bool {
	for _, a := range attrs {
		if a.Key == key && !a.Bare {
			return true
		}
	}
	return false
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
