package resolve

import (
	"errors"
	"io"
	"strings"

	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/MrShwhale/ftml/internal/ast"
	"github.com/MrShwhale/ftml/internal/diag"
)

type styleChecker struct {
	m *minify.M // nil: стили остаются как есть
}

func newStyleChecker(minifyStyles bool) *styleChecker {
	c := &styleChecker{}
	if minifyStyles {
		c.m = minify.New()
		c.m.AddFunc("text/css", mincss.Minify)
	}
	return c
}

// validate reports the first grammar error of a stylesheet fragment.
func (c *styleChecker) validate(src string) error {
	p := css.NewParser(parse.NewInputString(src), false)
	for {
		gt, _, _ := p.Next()
		if gt != css.ErrorGrammar {
			continue
		}
		if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}
}

func (c *styleChecker) minify(src string) (string, error) {
	if c.m == nil {
		return src, nil
	}
	return c.m.String("text/css", src)
}

func (r *resolver) style(n *ast.Node) {
	n.Flags |= ast.FlagRemoved
	body := ast.TrimRawBody(n.Text)
	if err := r.css.validate(body); err != nil {
		r.warnf(diag.SemaInvalidStyle, n.Span, "stylesheet does not parse: %v", err)
	} else if out, err := r.css.minify(body); err == nil {
		body = out
	}
	r.res.Styles = append(r.res.Styles, strings.Clone(body))
}
