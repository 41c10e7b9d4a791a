package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/MrShwhale/ftml/internal/driver"
)

func TestProgressModelApply(t *testing.T) {
	m := NewProgressModel("render", []string{"a.ftml", "b.ftml"}, nil).(*progressModel)

	m.Update(eventMsg{File: "a.ftml", Stage: driver.StageParse, Status: driver.StatusWorking})
	if m.items[0].status != "parsing" {
		t.Fatalf("status = %q, want parsing", m.items[0].status)
	}
	m.Update(eventMsg{File: "a.ftml", Stage: driver.StageGenerate, Status: driver.StatusDone})
	m.Update(eventMsg{File: "b.ftml", Status: driver.StatusError, Err: errors.New("boom")})
	m.Update(eventMsg{File: "unknown.ftml", Status: driver.StatusDone})

	if got := m.percent(); got != 1 {
		t.Errorf("percent = %v, want 1", got)
	}
	if m.failed != 1 {
		t.Errorf("failed = %d, want 1", m.failed)
	}
	view := m.View()
	for _, want := range []string{"a.ftml", "b.ftml", "boom", "1 failed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m.Update(doneMsg{})
	if !m.done || !strings.Contains(m.View(), "done:") {
		t.Errorf("model not finished")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"a-very-long-name.ftml", 10, "a-very-..."},
		{"abcdef", 3, "abc"},
		{"страница", 0, "страница"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
