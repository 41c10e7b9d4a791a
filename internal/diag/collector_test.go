package diag

import (
	"testing"

	"github.com/MrShwhale/ftml/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{Start: start, End: end}
}

func TestCollectorFlushOrdersByStageThenPosition(t *testing.T) {
	c := NewCollector()
	ReportWarning(c, SemaUnknownModule, span(1, 2), "resolve").Emit()
	ReportWarning(c, SynUnclosedBlock, span(9, 10), "parse late").Emit()
	ReportWarning(c, SynUnmatchedClose, span(3, 4), "parse early").Emit()
	ReportWarning(c, LexUnterminatedBlock, span(20, 22), "lex").Emit()

	got := c.Flush(0).Items()
	want := []string{"lex", "parse early", "parse late", "resolve"}
	if len(got) != len(want) {
		t.Fatalf("got %d diagnostics, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Message != want[i] {
			t.Errorf("item %d: got %q, want %q", i, got[i].Message, want[i])
		}
	}
}

func TestCollectorKeepsDuplicatesInRaiseOrder(t *testing.T) {
	c := NewCollector()
	ReportWarning(c, SynUnbalancedBlock, span(5, 12), "first").Emit()
	ReportWarning(c, SynUnbalancedBlock, span(5, 12), "second").Emit()

	got := c.Flush(0).Items()
	if len(got) != 2 {
		t.Fatalf("expected duplicates to survive, got %d", len(got))
	}
	if got[0].Message != "first" || got[1].Message != "second" {
		t.Errorf("stable order broken: %q, %q", got[0].Message, got[1].Message)
	}
}

func TestCollectorFlushLimit(t *testing.T) {
	c := NewCollector()
	for i := uint32(0); i < 5; i++ {
		ReportWarning(c, SynUnknownBlock, span(i, i+1), "x").Emit()
	}
	if got := c.Flush(3).Len(); got != 3 {
		t.Fatalf("limit not applied: %d", got)
	}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(1)
	if !b.Add(NewWarning(SynUnknownBlock, span(0, 1), "a")) {
		t.Fatal("first add must succeed")
	}
	if b.Add(NewWarning(SynUnknownBlock, span(0, 1), "b")) {
		t.Fatal("second add must hit the limit")
	}
	if !b.HasWarnings() || b.HasErrors() {
		t.Fatal("severity predicates are wrong")
	}
}

func TestCodeMetadata(t *testing.T) {
	cases := []struct {
		code Code
		id   string
		kind string
		rule string
	}{
		{LexUnterminatedBlock, "LEX1001", KindLexError, "block-marker"},
		{SynUnclosedBlock, "SYN2004", KindUnclosedBlock, "block-eof"},
		{SynCloseWithArguments, "SYN2010", KindMalformedBlock, "close-arguments"},
		{SemaUnknownModule, "SEM3001", KindUnknownModule, "module-registry"},
	}
	for _, c := range cases {
		if c.code.ID() != c.id || c.code.Kind() != c.kind || c.code.Rule() != c.rule {
			t.Errorf("%d: got (%s, %s, %s)", c.code, c.code.ID(), c.code.Kind(), c.code.Rule())
		}
	}
	if UnknownCode.Stage() != StageOther || UnknownCode.ID() != "E0000" {
		t.Errorf("unknown code metadata is wrong")
	}
}

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("sample.ftml", []byte("a\nb\n"))

	diags := []Diagnostic{
		NewWarning(SynUnmatchedClose, source.Span{File: id, Start: 0, End: 1}, "first line\nsecond").
			WithNote(source.Span{File: id, Start: 2, End: 3}, "note line"),
		NewWarning(SemaUnknownModule, source.Span{File: id, Start: 2, End: 3}, "another"),
	}

	expected := "warning SYN2002 sample.ftml:1:1 first line second\n" +
		"note SYN2002 sample.ftml:2:1 note line\n" +
		"warning SEM3001 sample.ftml:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}
