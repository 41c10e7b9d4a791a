package trace_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/MrShwhale/ftml/internal/trace"
)

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelPhase, trace.FormatText)
	span := trace.Begin(tr, trace.ScopePass, "parse", 0)
	span.WithExtra("nodes", "12").End("ok")
	trace.Point(tr, trace.ScopeNode, "warning", "hidden at phase level", span.ID())

	out := buf.String()
	if !strings.Contains(out, "→ parse") || !strings.Contains(out, "← parse (ok) {nodes=12}") {
		t.Fatalf("unexpected trace output:\n%s", out)
	}
	if strings.Contains(out, "warning") {
		t.Fatalf("node events must be filtered at phase level:\n%s", out)
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDebug, trace.FormatNDJSON)
	trace.Point(tr, trace.ScopeNode, "warning", "unclosed-block", 0)

	var ev map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("invalid ndjson %q: %v", buf.String(), err)
	}
	if ev["kind"] != "point" || ev["scope"] != "node" || ev["detail"] != "unclosed-block" {
		t.Errorf("event = %v", ev)
	}
}

func TestRingTracerWraps(t *testing.T) {
	ring := trace.NewRingTracer(2, trace.LevelDebug)
	for _, name := range []string{"a", "b", "c"} {
		trace.Point(ring, trace.ScopeDriver, name, "", 0)
	}
	got := ring.Snapshot()
	if len(got) != 2 || got[0].Name != "b" || got[1].Name != "c" {
		t.Fatalf("snapshot = %+v", got)
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := trace.New(trace.Config{Level: trace.LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("New(off) = %v, %v", tr, err)
	}
	if span := trace.Begin(tr, trace.ScopeDriver, "x", 0); span.End("") != 0 {
		t.Error("nop spans have no duration")
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "ERROR", "Phase", "detail", "debug"} {
		if _, err := trace.ParseLevel(s); err != nil {
			t.Errorf("ParseLevel(%q): %v", s, err)
		}
	}
	if _, err := trace.ParseLevel("verbose"); err == nil {
		t.Error("expected an error")
	}
}

func TestContext(t *testing.T) {
	ring := trace.NewRingTracer(4, trace.LevelPhase)
	ctx := trace.WithSpan(trace.WithTracer(context.Background(), ring), 42)
	if trace.FromContext(ctx) != ring || trace.CurrentSpan(ctx) != 42 {
		t.Fatal("context round trip failed")
	}
	if trace.FromContext(context.Background()) != trace.Nop {
		t.Fatal("missing tracer must be Nop")
	}
}
