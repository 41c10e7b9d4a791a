package fuzztests

import (
	"context"
	"testing"
	"time"

	"github.com/MrShwhale/ftml/internal/driver"
	"github.com/MrShwhale/ftml/internal/output"
	"github.com/MrShwhale/ftml/internal/page"
	"github.com/MrShwhale/ftml/internal/settings"
	"github.com/MrShwhale/ftml/internal/testkit"
)

// renderTimeout is the maximum time allowed for rendering a single input.
// If rendering takes longer, it indicates a potential infinite loop.
const renderTimeout = 5 * time.Second

func FuzzParserSpans(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		res := driver.Parse(context.Background(), string(input), driver.Options{Settings: settings.Default()})
		if err := testkit.CheckSpanInvariants(res.Tree, res.File); err != nil {
			t.Fatalf("span invariant: %v\ninput: %q", err, truncateForLog(input, 200))
		}
	})
}

// FuzzRenderNoHang renders in every mode and checks the output stays safe.
func FuzzRenderNoHang(f *testing.F) {
	addCorpusSeeds(f)
	modes := []settings.Mode{settings.ModePage, settings.ModeDraft, settings.ModeForumPost}

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		ctx, cancel := context.WithTimeout(context.Background(), renderTimeout)
		defer cancel()

		type outcome struct {
			out output.HtmlOutput
			err error
		}
		done := make(chan []outcome, 1)
		go func() {
			out := make([]outcome, 0, len(modes))
			for _, m := range modes {
				if ctx.Err() != nil {
					break
				}
				res, err := driver.RenderHTML(ctx, string(input), page.Demo(), driver.Options{Settings: settings.FromMode(m)})
				if err != nil {
					out = append(out, outcome{err: err})
					continue
				}
				out = append(out, outcome{out: res.Output})
				_, _ = driver.RenderText(ctx, string(input), page.Demo(), driver.Options{Settings: settings.FromMode(m)})
			}
			done <- out
		}()

		select {
		case outs := <-done:
			for i, o := range outs {
				if o.err != nil {
					t.Fatalf("mode %s: %v", modes[i], o.err)
				}
				if err := testkit.CheckOutput(o.out, len(input)); err != nil {
					t.Fatalf("mode %s: bad output %q: %v", modes[i], o.out.Body, err)
				}
			}
		case <-ctx.Done():
			t.Fatalf("render hang detected: took longer than %v\ninput (%d bytes): %q",
				renderTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
