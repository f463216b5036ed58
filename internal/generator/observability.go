package generator

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/ltmgen/internal/tmsh"
)

// Observer receives structured events while a script is generated.
type Observer interface {
	Event(event Event)
}

// Event represents a structured generation event.
type Event struct {
	Type     EventType
	Phase    string
	Kind     tmsh.Kind
	Resource string
	Message  string
	Duration time.Duration
}

// EventType represents the type of generation event.
type EventType string

const (
	// EventPhaseStarted indicates a phase has started.
	EventPhaseStarted EventType = "phase.started"
	// EventPhaseCompleted indicates a phase completed.
	EventPhaseCompleted EventType = "phase.completed"
	// EventCommandEmitted indicates a tmsh command was appended.
	EventCommandEmitted EventType = "command.emitted"
	// EventWarning indicates a non-fatal problem.
	EventWarning EventType = "warning"
)

// LogObserver implements Observer on top of a logr.Logger.
// Phase boundaries and per-command events log at V(1); warnings at V(0).
type LogObserver struct {
	log logr.Logger
}

// NewLogObserver creates an observer logging to log.
func NewLogObserver(log logr.Logger) *LogObserver {
	return &LogObserver{log: log}
}

// Event implements Observer.
func (o *LogObserver) Event(event Event) {
	switch event.Type {
	case EventWarning:
		o.log.Info(event.Message, "event", event.Type, "phase", event.Phase, "kind", event.Kind, "resource", event.Resource)
	case EventPhaseCompleted:
		o.log.V(1).Info("phase completed", "phase", event.Phase, "duration", event.Duration.Round(time.Microsecond).String())
	case EventCommandEmitted:
		o.log.V(1).Info("command emitted", "phase", event.Phase, "kind", event.Kind, "resource", event.Resource)
	default:
		o.log.V(1).Info(string(event.Type), "phase", event.Phase)
	}
}

// RecordingObserver keeps every event in memory.
type RecordingObserver struct {
	Events []Event
}

// Event implements Observer.
func (o *RecordingObserver) Event(event Event) {
	o.Events = append(o.Events, event)
}

// OfType returns the recorded events of type t.
func (o *RecordingObserver) OfType(t EventType) []Event {
	var out []Event
	for _, e := range o.Events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
