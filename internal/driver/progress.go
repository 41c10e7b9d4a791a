package driver

import "time"

// Stage is the pipeline phase a progress event refers to.
type Stage string

const (
	StageRead     Stage = "read"
	StageParse    Stage = "parse"
	StageResolve  Stage = "resolve"
	StageGenerate Stage = "generate"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for a file of a batch (or for the whole batch when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events of RenderFiles. Implementations must
// be safe for concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}

// fileObserver turns phase events of one file into progress events,
// chaining to the caller's observer.
func fileObserver(sink ProgressSink, path string, next PhaseObserver) PhaseObserver {
	if sink == nil {
		return next
	}
	return func(ev PhaseEvent) {
		if ev.Status == PhaseStart {
			emit(sink, Event{File: path, Stage: Stage(ev.Name), Status: StatusWorking})
		}
		if next != nil {
			next(ev)
		}
	}
}
