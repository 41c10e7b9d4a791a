package driver

import (
	"context"
	"strings"

	"github.com/MrShwhale/ftml/internal/output"
	"github.com/MrShwhale/ftml/internal/page"
	"github.com/MrShwhale/ftml/internal/render/html"
	"github.com/MrShwhale/ftml/internal/render/text"
	"github.com/MrShwhale/ftml/internal/version"
)

// HTMLResult is the output of RenderHTML with the pipeline details.
type HTMLResult struct {
	*Result
	Output output.HtmlOutput
}

// RenderHTML compiles input to HTML. The only error is an invalid page.
func RenderHTML(ctx context.Context, input string, info page.PageInfo, opts Options) (*HTMLResult, error) {
	p, err := newPipeline(ctx, input, info, opts)
	if err != nil {
		return nil, err
	}
	tree := p.parse()
	doc := p.resolve(tree)

	done := p.phase("generate")
	ver := opts.Version
	if ver == "" {
		ver = version.Version
	}
	gen := html.Generate(doc, html.Options{Page: &p.info, Settings: opts.Settings, Version: ver})
	done("")

	res, warnings := p.finish(tree, doc)
	styles := make([]string, len(doc.Styles))
	for i, s := range doc.Styles {
		styles[i] = strings.Clone(s)
	}
	return &HTMLResult{
		Result: res,
		Output: output.HtmlOutput{
			Body:     gen.Body,
			Styles:   styles,
			Meta:     gen.Meta,
			Warnings: warnings,
		},
	}, nil
}

// TextResult is the output of RenderText with the pipeline details.
type TextResult struct {
	*Result
	Output output.TextOutput
}

// RenderText compiles input to plain text.
func RenderText(ctx context.Context, input string, info page.PageInfo, opts Options) (*TextResult, error) {
	p, err := newPipeline(ctx, input, info, opts)
	if err != nil {
		return nil, err
	}
	tree := p.parse()
	doc := p.resolve(tree)

	done := p.phase("generate")
	body := text.Render(doc, text.Options{Page: &p.info})
	done("")

	res, warnings := p.finish(tree, doc)
	return &TextResult{
		Result: res,
		Output: output.TextOutput{Text: body, Warnings: warnings},
	}, nil
}
