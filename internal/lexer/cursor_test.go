package lexer

import (
	"testing"

	"github.com/MrShwhale/ftml/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ftml", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("Expected zero bytes at EOF")
	}
}

func TestPeek2AndPrev(t *testing.T) {
	cursor := NewCursor(createFile("abc"))

	if _, ok := cursor.Prev(); ok {
		t.Error("Prev at start must fail")
	}
	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Errorf("Peek2 = (%q, %q, %v)", b0, b1, ok)
	}
	cursor.Bump()
	cursor.Bump()
	if prev, ok := cursor.Prev(); !ok || prev != 'b' {
		t.Errorf("Prev = (%q, %v)", prev, ok)
	}
	if _, _, ok := cursor.Peek2(); ok {
		t.Error("Peek2 at last byte must fail")
	}
	if cursor.PeekAt(10) != 0 {
		t.Error("PeekAt past the end must return 0")
	}
}

// TestSpanFromResolve проверяет SpanFrom и Reset с UTF-8
func TestSpanFromResolve(t *testing.T) {
	cursor := NewCursor(createFile("α\nβ"))
	mark := cursor.Mark()
	cursor.Advance(2)

	span := cursor.SpanFrom(mark)
	if span.Start != 0 || span.End != 2 {
		t.Errorf("span = %v, want 0..2", span)
	}
	cursor.Reset(mark)
	if cursor.Off != 0 {
		t.Errorf("Reset left cursor at %d", cursor.Off)
	}
	cursor.Advance(100)
	if cursor.Off != cursor.Limit {
		t.Errorf("Advance must clamp to Limit, got %d", cursor.Off)
	}
}

func TestEatAndHasPrefix(t *testing.T) {
	cursor := NewCursor(createFile("[[x"))
	if !cursor.HasPrefix("[[") || cursor.HasPrefix("[[x]]") {
		t.Error("HasPrefix mismatch")
	}
	if !cursor.Eat('[') || cursor.Eat('x') {
		t.Error("Eat mismatch")
	}
}
