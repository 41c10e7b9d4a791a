// Package driver runs the render pipeline: lexing, parsing, resolution and
// generation, with diagnostics, tracing and timings wired through.
package driver

import (
	"context"
	"fmt"
	"time"

	"fortio.org/safecast"

	"github.com/MrShwhale/ftml/internal/ast"
	"github.com/MrShwhale/ftml/internal/diag"
	"github.com/MrShwhale/ftml/internal/lexer"
	"github.com/MrShwhale/ftml/internal/observ"
	"github.com/MrShwhale/ftml/internal/output"
	"github.com/MrShwhale/ftml/internal/page"
	"github.com/MrShwhale/ftml/internal/parser"
	"github.com/MrShwhale/ftml/internal/resolve"
	"github.com/MrShwhale/ftml/internal/source"
	"github.com/MrShwhale/ftml/internal/trace"
)

// pipeline holds the call-local state of one render.
type pipeline struct {
	ctx       context.Context
	opts      Options
	info      page.PageInfo
	fs        *source.FileSet
	file      *source.File
	collector *diag.Collector
	reporter  diag.Reporter
	timer     *observ.Timer
	tracer    trace.Tracer
	span      *trace.Span
}

// Result is everything a render call produced, for the CLI and for tests.
type Result struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *ast.Tree
	Doc     resolve.Result
	// Diagnostics is the flushed, ordered list behind Warnings.
	Diagnostics *diag.Bag
	Timings     observ.Report
}

func newPipeline(ctx context.Context, input string, info page.PageInfo, opts Options) (*pipeline, error) {
	if err := info.Validate(); err != nil {
		return nil, fmt.Errorf("render %s: %w", opts.path(), err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	p := &pipeline{
		ctx:       ctx,
		opts:      opts,
		info:      info,
		fs:        source.NewFileSet(),
		collector: diag.NewCollector(),
		timer:     observ.NewTimer(),
		tracer:    opts.tracer(),
	}
	p.span = trace.Begin(p.tracer, trace.ScopeDriver, "render", trace.CurrentSpan(ctx))
	p.reporter = tracingReporter{next: p.collector, tracer: p.tracer, parent: p.span.ID()}
	p.file = p.fs.Get(p.fs.AddVirtual(opts.path(), []byte(input)))
	return p, nil
}

// phase starts a timed and traced phase and returns the function ending it.
func (p *pipeline) phase(name string) func(note string) {
	idx := p.timer.Begin(name)
	span := trace.Begin(p.tracer, trace.ScopePass, name, p.span.ID())
	if p.opts.Observer != nil {
		p.opts.Observer(PhaseEvent{Name: name, Status: PhaseStart})
	}
	start := time.Now()
	return func(note string) {
		p.timer.End(idx, note)
		span.End(note)
		if p.opts.Observer != nil {
			p.opts.Observer(PhaseEvent{Name: name, Status: PhaseEnd, Elapsed: time.Since(start)})
		}
	}
}

// parse lexes and parses the input; the lexer is pulled by the parser.
func (p *pipeline) parse() *ast.Tree {
	done := p.phase("parse")
	lx := lexer.New(p.file, lexer.Options{Reporter: p.reporter})
	res := parser.Parse(p.file, lx, parser.Options{
		Reporter:   p.reporter,
		PageSyntax: p.opts.Settings.EnablePageSyntax,
	})
	done(fmt.Sprintf("%d nodes", res.Tree.Len()))
	return res.Tree
}

func (p *pipeline) resolve(tree *ast.Tree) resolve.Result {
	done := p.phase("resolve")
	doc := resolve.Resolve(tree, p.file, resolve.Options{
		Reporter:        p.reporter,
		AllowLocalPaths: p.opts.Settings.AllowLocalPaths,
		MinifyStyles:    p.opts.Settings.MinifyStyles,
	})
	done(fmt.Sprintf("%d styles", len(doc.Styles)))
	return doc
}

// finish flushes diagnostics and closes the driver span.
func (p *pipeline) finish(tree *ast.Tree, doc resolve.Result) (*Result, []output.Warning) {
	limit, err := safecast.Conv[int](p.opts.Settings.MaxWarnings)
	if err != nil {
		limit = 0
	}
	bag := p.collector.Flush(limit)
	p.span.WithExtra("warnings", fmt.Sprint(bag.Len())).End("")
	return &Result{
		FileSet:     p.fs,
		File:        p.file,
		Tree:        tree,
		Doc:         doc,
		Diagnostics: bag,
		Timings:     p.timer.Report(),
	}, output.FromBag(bag)
}

// tracingReporter forwards diagnostics and emits a node-level trace event for each.
type tracingReporter struct {
	next   diag.Reporter
	tracer trace.Tracer
	parent uint64
}

func (r tracingReporter) Report(d diag.Diagnostic) {
	trace.Point(r.tracer, trace.ScopeNode, "warning", d.Code.ID()+" "+d.Message, r.parent)
	r.next.Report(d)
}
