package driver

import "time"

// Stage is the step a file is in.
type Stage string

const (
	StageParse Stage = "parse"
	StageRemap Stage = "remap"
	StageWrite Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for a file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// Label is the word shown next to the file: queued, parsing, remapping,
// writing, done or error.
func (ev Event) Label() string {
	switch ev.Status {
	case StatusQueued, StatusDone, StatusError:
		return string(ev.Status)
	case StatusWorking:
		switch ev.Stage {
		case StageParse:
			return "parsing"
		case StageRemap:
			return "remapping"
		case StageWrite:
			return "writing"
		}
	}
	return ""
}

// ProgressSink consumes progress events. OnEvent is called from worker
// goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(Event)

func (f SinkFunc) OnEvent(ev Event) { f(ev) }

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}

// ChannelSink forwards events to Ch. The caller closes Ch after the run.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(ev Event) {
	if s.Ch != nil {
		s.Ch <- ev
	}
}
