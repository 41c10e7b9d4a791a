package html

import (
	stdhtml "html"
	"strings"

	"github.com/MrShwhale/ftml/internal/output"
	"github.com/MrShwhale/ftml/internal/page"
)

// Document wraps a render into a complete HTML page: meta entries and
// collected styles go to the head, the body as is.
func Document(out output.HtmlOutput, info *page.PageInfo) string {
	var b strings.Builder
	b.Grow(len(out.Body) + 512)
	b.WriteString("<!DOCTYPE html>\n<html")
	if info != nil && info.Language != "" {
		b.WriteString(` lang="` + stdhtml.EscapeString(CanonicalLocale(info.Language)) + `"`)
	}
	b.WriteString(">\n<head>\n<meta charset=\"utf-8\">\n")
	if info != nil {
		b.WriteString("<title>" + stdhtml.EscapeString(info.Title) + "</title>\n")
	}
	for _, m := range out.Meta {
		b.WriteString("<meta " + m.Kind.String() + `="` + stdhtml.EscapeString(m.Name) +
			`" content="` + stdhtml.EscapeString(m.Value) + "\">\n")
	}
	for _, s := range out.Styles {
		b.WriteString("<style>\n" + styleSafe(s) + "\n</style>\n")
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString(out.Body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// styleSafe keeps a stylesheet from closing its <style> element early.
func styleSafe(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
