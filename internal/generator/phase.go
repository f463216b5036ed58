package generator

import (
	"fmt"
	"time"

	"github.com/imamik/ltmgen/internal/config"
	"github.com/imamik/ltmgen/internal/resolver"
	"github.com/imamik/ltmgen/internal/tmsh"
)

// Phase appends one block of the script.
type Phase interface {
	Name() string
	Emit(ctx *Context) error
}

// Context carries the model and the sequence under construction.
// It is confined to a single Generate call.
type Context struct {
	Config   *config.Config
	Nodes    *resolver.NodeResolver
	Sequence *tmsh.Sequence
	Observer Observer
	Now      time.Time

	phase       string
	diagnostics []Diagnostic
}

// Partition is a shorthand for the configuration's partition.
func (c *Context) Partition() string {
	return c.Config.Metadata.Partition
}

// Append adds records to the sequence, reporting tmsh commands to the observer.
func (c *Context) Append(records ...tmsh.Record) {
	for _, r := range records {
		if r.Op == tmsh.OpTmsh {
			c.Observer.Event(Event{
				Type:     EventCommandEmitted,
				Phase:    c.phase,
				Kind:     r.Kind,
				Resource: r.Target,
			})
		}
	}
	c.Sequence.Append(records...)
}

// Warn records a diagnostic and writes a warning line in its place.
func (c *Context) Warn(d Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
	c.Observer.Event(Event{
		Type:     EventWarning,
		Phase:    c.phase,
		Kind:     d.Kind,
		Resource: d.Entity,
		Message:  d.Message,
	})
	c.Sequence.Append(tmsh.Warning(d.Message), tmsh.Blank())
}

// Diagnostics returns the problems recorded so far.
func (c *Context) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.diagnostics))
	copy(out, c.diagnostics)
	return out
}

// RunPhases executes the phases sequentially, stopping at the first error.
func RunPhases(ctx *Context, phases []Phase) error {
	for _, phase := range phases {
		start := time.Now()
		ctx.phase = phase.Name()
		ctx.Observer.Event(Event{Type: EventPhaseStarted, Phase: ctx.phase})

		if err := phase.Emit(ctx); err != nil {
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		ctx.Observer.Event(Event{Type: EventPhaseCompleted, Phase: ctx.phase, Duration: time.Since(start)})
	}
	ctx.phase = ""
	return nil
}
