package observ_test

import (
	"strings"
	"testing"

	"github.com/MrShwhale/ftml/internal/observ"
)

func TestTimerReport(t *testing.T) {
	tm := observ.NewTimer()
	done := tm.Track("parse")
	done("3 warnings")
	idx := tm.Begin("generate")
	tm.End(idx, "")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != "parse" || r.Phases[0].Note != "3 warnings" {
		t.Fatalf("report = %+v", r)
	}
	if r.TotalMS < 0 {
		t.Errorf("total = %v", r.TotalMS)
	}
	s := tm.Summary()
	if !strings.Contains(s, "parse") || !strings.Contains(s, "// 3 warnings") || !strings.Contains(s, "total") {
		t.Errorf("summary:\n%s", s)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *observ.Timer
	tm.Track("x")("")
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Fatalf("nil timer report = %+v", r)
	}
}

func TestReportMerge(t *testing.T) {
	a := observ.Report{TotalMS: 1, Phases: []observ.PhaseReport{{Name: "lex", DurationMS: 1}}}
	a.Merge(observ.Report{TotalMS: 3, Phases: []observ.PhaseReport{{Name: "lex", DurationMS: 2}, {Name: "parse", DurationMS: 1}}})
	if a.TotalMS != 4 || len(a.Phases) != 2 || a.Phases[0].DurationMS != 3 || a.Phases[1].Name != "parse" {
		t.Fatalf("merged = %+v", a)
	}
}
