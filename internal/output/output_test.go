package output_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/MrShwhale/ftml/internal/diag"
	"github.com/MrShwhale/ftml/internal/output"
	"github.com/MrShwhale/ftml/internal/source"
)

func TestMetaKindNames(t *testing.T) {
	for _, name := range []string{"name", "http-equiv", "property"} {
		k, ok := output.ParseMetaKind(name)
		if !ok || k.String() != name {
			t.Errorf("ParseMetaKind(%q) = %v, %v", name, k, ok)
		}
	}
	if _, ok := output.ParseMetaKind("charset"); ok {
		t.Error("charset is not a meta kind")
	}
}

func TestInvalidMetaKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	output.NewMeta(output.MetaKind(7), "x", "y")
}

func TestMetaEntryJSON(t *testing.T) {
	data, err := json.Marshal(output.NewMeta(output.MetaHTTPEquiv, "Content-Language", "en"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"kind":"http-equiv"`) {
		t.Errorf("json = %s", data)
	}
}

func TestFromBag(t *testing.T) {
	bag := diag.NewBag(0)
	sp := source.Span{Start: 3, End: 5}
	bag.Add(diag.NewWarning(diag.SynUnmatchedClose, sp, "x").WithToken("[[/b]]"))
	ws := output.FromBag(bag)
	if len(ws) != 1 {
		t.Fatalf("warnings = %v", ws)
	}
	w := ws[0]
	if w.Kind != "unmatched-close" || w.Token != "[[/b]]" || w.Span != sp || w.Rule == "" {
		t.Errorf("warning = %+v", w)
	}
}
