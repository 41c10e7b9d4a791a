package html

import (
	"net/url"
	"strings"

	"github.com/MrShwhale/ftml/internal/ast"
	"github.com/MrShwhale/ftml/internal/blocks"
)

// missingAvatar is shown by [[*user]]: users are not looked up at render time.
const missingAvatar = "/avatars--common/missing/small.png"

func (g *generator) user(n *ast.Node) {
	g.w(`<span class="user-info"><a href="/user:info/`)
	g.attr(url.PathEscape(UserSlug(n.Name)))
	g.w(`">`)
	if n.Has(ast.FlagStarred) {
		g.w(`<img class="small" src="` + missingAvatar + `" alt="">`)
	}
	g.text(n.Name)
	g.w("</a></span>")
}

// UserSlug turns a user name into its profile slug: lower case, every run
// of other characters collapsed into one dash.
func UserSlug(name string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			dash = false
			sb.WriteRune(r)
			continue
		}
		dash = true
	}
	return sb.String()
}

// input renders [[checkbox]] and [[radio group]]; a star checks them.
func (g *generator) input(n *ast.Node) {
	if n.Block == blocks.Radio {
		g.w(`<input type="radio" name="`)
		g.attr(n.Name)
		g.w(`"`)
	} else {
		g.w(`<input type="checkbox"`)
	}
	if n.Has(ast.FlagStarred) {
		g.w(" checked")
	}
	g.attrs(n)
	g.w(">")
}

func (g *generator) definitionList(n *ast.Node) {
	g.w("<dl>")
	for _, id := range n.Children {
		item := g.tree.Get(id)
		for _, part := range item.Children {
			p := g.tree.Get(part)
			tag := "dd"
			if p.Kind == ast.NodeDefinitionTerm {
				tag = "dt"
			}
			g.w("<" + tag + ">")
			g.inline(p.Children)
			g.w("</" + tag + ">")
		}
	}
	g.w("</dl>")
}
