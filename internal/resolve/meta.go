package resolve

import (
	"github.com/MrShwhale/ftml/internal/ast"
	"github.com/MrShwhale/ftml/internal/diag"
	"github.com/MrShwhale/ftml/internal/output"
)

var metaKeys = [...]struct {
	key  string
	kind output.MetaKind
}{
	{"name", output.MetaName},
	{"http-equiv", output.MetaHTTPEquiv},
	{"property", output.MetaProperty},
}

// meta validates a [[meta]] directive: exactly one of name, http-equiv and
// property, plus content. The directive never stays in the body.
func (r *resolver) meta(n *ast.Node) {
	n.Flags |= ast.FlagRemoved

	var (
		cand  MetaCandidate
		found int
	)
	for _, mk := range metaKeys {
		if v, ok := n.Attr(mk.key); ok {
			found++
			cand.Kind, cand.Name = mk.kind, v
		}
	}
	content, hasContent := n.Attr("content")
	switch {
	case found == 0:
		r.warnf(diag.SemaInvalidMeta, n.Span, "[[meta]] needs one of name, http-equiv or property")
		return
	case found > 1:
		r.warnf(diag.SemaInvalidMeta, n.Span, "[[meta]] mixes name, http-equiv and property")
		return
	case cand.Name == "":
		r.warnf(diag.SemaInvalidMeta, n.Span, "[[meta]] has an empty %s", cand.Kind)
		return
	case !hasContent:
		r.warnf(diag.SemaInvalidMeta, n.Span, "[[meta %s=%q]] has no content", cand.Kind, cand.Name)
		return
	}
	cand.Value = content
	cand.Span = n.Span
	r.res.Meta = append(r.res.Meta, cand)
}
