package testkit

import (
	"fmt"

	"github.com/MrShwhale/ftml/internal/output"
)

// CheckOutput validates a full render of an input of inputLen bytes: the body
// passes CheckHTML, warning spans lie inside the input
// and meta entries are named.
func CheckOutput(out output.HtmlOutput, inputLen int) error {
	if err := CheckHTML(out.Body); err != nil {
		return err
	}
	for i, w := range out.Warnings {
		if w.Span.Start > w.Span.End || int(w.Span.End) > inputLen {
			return fmt.Errorf("warning %d (%s): span %d..%d outside input of %d bytes", i, w.Kind, w.Span.Start, w.Span.End, inputLen)
		}
		if w.Rule == "" {
			return fmt.Errorf("warning %d: empty rule", i)
		}
	}
	for i, m := range out.Meta {
		if m.Name == "" {
			return fmt.Errorf("meta %d: empty name", i)
		}
	}
	return nil
}
