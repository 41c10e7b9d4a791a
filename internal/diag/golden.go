package diag

import (
	"fmt"
	"strings"

	"github.com/MrShwhale/ftml/internal/source"
)

// FormatGoldenDiagnostics renders diagnostics into a stable, single-line-per-entry
// representation suitable for golden files and CLI short output. The input order
// is kept; callers flush through a Collector to get the canonical order.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	line := func(sev, code string, span source.Span, msg string) {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		path := "?"
		var pos source.LineCol
		if int(span.File) < fs.Len() {
			path = fs.Get(span.File).Path
			pos, _ = fs.Resolve(span)
		}
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", sev, code, path, pos.Line, pos.Col, sanitizeMessage(msg))
	}

	for i := range diags {
		d := &diags[i]
		line(severityLabel(d.Severity), d.Code.ID(), d.Primary, d.Message)
		if !includeNotes {
			continue
		}
		for _, note := range d.Notes {
			line("note", d.Code.ID(), note.Span, note.Msg)
		}
	}
	return b.String()
}

func severityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
