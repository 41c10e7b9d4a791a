package fuzztests

import (
	"testing"

	"github.com/MrShwhale/ftml/internal/diag"
	"github.com/MrShwhale/ftml/internal/lexer"
	"github.com/MrShwhale/ftml/internal/source"
	"github.com/MrShwhale/ftml/internal/token"
)

// FuzzLexerCoversInput: токены идут подряд и склеиваются обратно во вход.
func FuzzLexerCoversInput(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.ftml", input))

		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: diag.NewBag(64)}})
		var prevEnd uint32
		for {
			tok := lx.Next()
			if tok.Span.Start != prevEnd {
				t.Fatalf("gap or overlap before %s at %v", tok.Kind, tok.Span)
			}
			prevEnd = tok.Span.End
			if tok.Kind == token.EOF {
				break
			}
			if tok.Span.Empty() {
				t.Fatalf("empty %s token at %d would loop forever", tok.Kind, tok.Span.Start)
			}
		}
		if int(prevEnd) != len(file.Content) {
			t.Fatalf("tokens end at %d, input has %d bytes", prevEnd, len(file.Content))
		}
	})
}
