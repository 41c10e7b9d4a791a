package driver

import (
	"time"

	"github.com/MrShwhale/ftml/internal/settings"
	"github.com/MrShwhale/ftml/internal/trace"
)

// Options control one render call.
type Options struct {
	Settings settings.Settings
	// Path names the input in diagnostics; defaults to "<input>".
	Path   string
	Tracer trace.Tracer
	// Version goes into the generator meta entry; empty means version.Version.
	Version  string
	Observer PhaseObserver
	// Progress receives per-file events from RenderFiles.
	Progress ProgressSink
	// Cache, when set, lets RenderFiles skip files rendered before.
	Cache *RenderCache
	// Preprocess normalizes the files RenderFiles reads before rendering them.
	// RenderHTML and RenderText never rewrite their input.
	Preprocess bool
}

func (o Options) path() string {
	if o.Path == "" {
		return "<input>"
	}
	return o.Path
}

func (o Options) tracer() trace.Tracer {
	if o.Tracer == nil {
		return trace.Nop
	}
	return o.Tracer
}

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// PhaseEvent describes a render phase boundary.
type PhaseEvent struct {
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
}

// PhaseObserver receives phase events of a render call.
type PhaseObserver func(PhaseEvent)
