package prof_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MrShwhale/ftml/internal/prof"
)

func TestSessionWritesProfiles(t *testing.T) {
	dir := t.TempDir()
	opts := prof.Options{
		CPU:   filepath.Join(dir, "cpu.pprof"),
		Mem:   filepath.Join(dir, "mem.pprof"),
		Trace: filepath.Join(dir, "run.trace"),
	}
	s, err := prof.Start(opts)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	_ = strings.Repeat("x", 1<<16)
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
	for _, path := range []string{opts.CPU, opts.Mem, opts.Trace} {
		st, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", path, err)
		}
		if st.Size() == 0 {
			t.Errorf("%s is empty", path)
		}
	}
}

func TestOptionsEnabled(t *testing.T) {
	if (prof.Options{}).Enabled() {
		t.Errorf("zero options should be disabled")
	}
	if !(prof.Options{Mem: "m"}).Enabled() {
		t.Errorf("mem profile should enable")
	}
}

func TestNilSessionStop(t *testing.T) {
	var s *prof.Session
	if err := s.Stop(); err != nil {
		t.Fatalf("nil Stop: %v", err)
	}
}
