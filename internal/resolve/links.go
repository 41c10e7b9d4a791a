package resolve

import (
	"net/url"
	"strings"

	"github.com/MrShwhale/ftml/internal/ast"
	"github.com/MrShwhale/ftml/internal/diag"
)

// LinkKind classifies a link target.
type LinkKind uint8

const (
	LinkUnsafe LinkKind = iota
	LinkRemote
	LinkAnchor
	LinkLocal
)

var safeSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"ftp":    true,
}

// ClassifyLink decides what kind of target s is. Anything with a scheme
// outside http, https, mailto and ftp is unsafe.
func ClassifyLink(s string) LinkKind {
	s = strings.TrimSpace(s)
	if s == "" {
		return LinkUnsafe
	}
	if strings.HasPrefix(s, "#") {
		return LinkAnchor
	}
	u, err := url.Parse(s)
	if err != nil {
		return LinkUnsafe
	}
	if u.Scheme != "" {
		if safeSchemes[strings.ToLower(u.Scheme)] {
			return LinkRemote
		}
		return LinkUnsafe
	}
	if strings.HasPrefix(s, "//") {
		return LinkRemote
	}
	return LinkLocal
}

func (r *resolver) checkLink(n *ast.Node, target string) {
	switch ClassifyLink(target) {
	case LinkUnsafe:
		n.Flags |= ast.FlagNeutralized
		r.warnf(diag.SemaInvalidLink, n.Span, "link target %q is not allowed", target)
	case LinkLocal:
		if !r.opts.AllowLocalPaths {
			n.Flags |= ast.FlagNeutralized
			r.warnf(diag.SemaInvalidLink, n.Span, "local path %q is not allowed here", target)
		}
	}
}
