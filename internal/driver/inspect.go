package driver

import (
	"context"

	"github.com/MrShwhale/ftml/internal/diag"
	"github.com/MrShwhale/ftml/internal/lexer"
	"github.com/MrShwhale/ftml/internal/page"
	"github.com/MrShwhale/ftml/internal/resolve"
	"github.com/MrShwhale/ftml/internal/source"
	"github.com/MrShwhale/ftml/internal/token"
)

// TokenizeResult holds the token stream of an input.
type TokenizeResult struct {
	FileSet     *source.FileSet
	File        *source.File
	Tokens      []token.Token
	Diagnostics *diag.Bag
}

// Tokenize runs only the lexer.
func Tokenize(ctx context.Context, input string, opts Options) *TokenizeResult {
	p, err := newPipeline(ctx, input, page.Demo(), opts)
	if err != nil {
		// демо-страница всегда валидна
		panic(err)
	}
	done := p.phase("tokenize")
	toks := lexer.New(p.file, lexer.Options{Reporter: p.reporter}).All()
	done("")
	res, _ := p.finish(nil, resolve.Result{})
	return &TokenizeResult{
		FileSet:     res.FileSet,
		File:        res.File,
		Tokens:      toks,
		Diagnostics: res.Diagnostics,
	}
}

// Parse runs the lexer, parser and resolver without generating output.
func Parse(ctx context.Context, input string, opts Options) *Result {
	p, err := newPipeline(ctx, input, page.Demo(), opts)
	if err != nil {
		panic(err)
	}
	tree := p.parse()
	doc := p.resolve(tree)
	res, _ := p.finish(tree, doc)
	return res
}
