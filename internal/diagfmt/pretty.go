package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/MrShwhale/ftml/internal/diag"
	"github.com/MrShwhale/ftml/internal/source"
)

const tabWidth = 4

type palette struct {
	sev, code, loc, gutter, caret, note *color.Color
}

func newPalette(enabled bool, sev diag.Severity) palette {
	p := palette{
		sev:    color.New(color.Bold),
		code:   color.New(color.Bold),
		loc:    color.New(color.FgCyan),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.Bold),
		note:   color.New(color.FgCyan),
	}
	switch sev {
	case diag.SevError:
		p.sev.Add(color.FgRed)
		p.caret.Add(color.FgRed)
	case diag.SevWarning:
		p.sev.Add(color.FgYellow)
		p.caret.Add(color.FgYellow)
	default:
		p.sev.Add(color.FgBlue)
		p.caret.Add(color.FgBlue)
	}
	for _, c := range []*color.Color{p.sev, p.code, p.loc, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() в текущем порядке (Collector.Flush уже отсортировал).
// Для каждой диагностики печатает
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строки контекста с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color, d.Severity)
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	fmt.Fprintf(w, "%s: %s %s: %s\n",
		pal.loc.Sprintf("%s:%d:%d", formatPath(file.Path, opts.PathMode, opts.BaseDir), start.Line, start.Col),
		pal.sev.Sprint(d.Severity.String()),
		pal.code.Sprint(d.Code.ID()),
		d.Message,
	)
	snippet(w, file, start, end, pal, opts)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		ns, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"),
			formatPath(fs.Get(n.Span.File).Path, opts.PathMode, opts.BaseDir), ns.Line, ns.Col, n.Msg)
	}
}

// snippet печатает строки вокруг span и подчёркивание.
func snippet(w io.Writer, f *source.File, start, end source.LineCol, pal palette, opts PrettyOpts) {
	if start.Line == 0 {
		return
	}
	ctx := uint32(max(opts.Context, 0))
	first := start.Line - min(ctx, start.Line-1)
	last := min(start.Line+ctx, uint32(len(f.LineIdx))+1) // #nosec G115 -- bounded by file size
	gw := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		line := expandTabs(f.GetLine(ln))
		if opts.Width > 0 {
			line = runewidth.Truncate(line, int(opts.Width), "…")
		}
		fmt.Fprintf(w, " %s %s\n", pal.gutter.Sprintf("%*d |", gw, ln), line)
		if ln != start.Line {
			continue
		}
		raw := f.GetLine(ln)
		pad := displayWidth(raw, start.Col-1)
		width := 1
		if end.Line == start.Line && end.Col > start.Col {
			width = max(displayWidth(raw, end.Col-1)-pad, 1)
		} else if end.Line > start.Line {
			width = max(runewidth.StringWidth(line)-pad, 1)
		}
		fmt.Fprintf(w, " %s %s%s\n", pal.gutter.Sprintf("%*s |", gw, ""),
			strings.Repeat(" ", pad), pal.caret.Sprint("^"+strings.Repeat("~", width-1)))
	}
}

// displayWidth returns the terminal width of the first n bytes of line.
func displayWidth(line string, n uint32) int {
	if int(n) > len(line) {
		n = uint32(len(line)) // #nosec G115 -- line is a single source line
	}
	return runewidth.StringWidth(expandTabs(line[:n]))
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}

// Short prints one line per diagnostic: "path:line:col: SEV CODE message".
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, mode PathMode, base string) {
	if bag == nil || fs == nil {
		return
	}
	for _, d := range bag.Items() {
		pos, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s %s %s\n",
			formatPath(fs.Get(d.Primary.File).Path, mode, base), pos.Line, pos.Col,
			d.Severity, d.Code.ID(), d.Message)
	}
}
