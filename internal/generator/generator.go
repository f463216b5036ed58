package generator

import (
	"errors"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/ltmgen/internal/config"
	"github.com/imamik/ltmgen/internal/resolver"
	"github.com/imamik/ltmgen/internal/tmsh"
)

// TimestampLayout formats the generation time in the script header.
const TimestampLayout = "2006-01-02 15:04:05"

// ErrNilConfig is returned when Generate is called without a configuration.
var ErrNilConfig = errors.New("configuration is required")

// Result is the outcome of a generation run.
type Result struct {
	Sequence    *tmsh.Sequence
	Diagnostics []Diagnostic
	GeneratedAt time.Time
}

// Count returns the number of tmsh commands of the given kind.
func (r *Result) Count(kind tmsh.Kind) int {
	return r.Sequence.Count(kind)
}

// Counts returns command counts for every entity kind, including zeros.
func (r *Result) Counts() map[tmsh.Kind]int {
	counts := make(map[tmsh.Kind]int, len(CommandKinds()))
	for _, k := range CommandKinds() {
		counts[k] = r.Sequence.Count(k)
	}
	return counts
}

// CommandKinds lists the kinds of tmsh commands a script may contain,
// in emission order.
func CommandKinds() []tmsh.Kind {
	return []tmsh.Kind{
		tmsh.KindPartition,
		tmsh.KindMonitor,
		tmsh.KindProfile,
		tmsh.KindNode,
		tmsh.KindPool,
		tmsh.KindPoolMember,
		tmsh.KindVirtualServer,
		tmsh.KindSave,
	}
}

type options struct {
	clock    func() time.Time
	observer Observer
}

// Option configures Generate.
type Option func(*options)

// WithClock sets the time source for the header timestamp.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithObserver sets the event observer.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithLogger is shorthand for WithObserver(NewLogObserver(log)).
func WithLogger(log logr.Logger) Option {
	return WithObserver(NewLogObserver(log))
}

// Generate builds the command sequence for cfg.
//
// Output is deterministic for a given configuration apart from the
// timestamp line in the header.
func Generate(cfg *config.Config, opts ...Option) (*Result, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	o := &options{
		clock:    time.Now,
		observer: NewLogObserver(logr.Discard()),
	}
	for _, opt := range opts {
		opt(o)
	}

	ctx := &Context{
		Config:   cfg,
		Nodes:    resolver.New(cfg.Nodes),
		Sequence: tmsh.NewSequence(),
		Observer: o.observer,
		Now:      o.clock(),
	}

	if err := RunPhases(ctx, DefaultPhases()); err != nil {
		return nil, err
	}

	return &Result{
		Sequence:    ctx.Sequence,
		Diagnostics: ctx.Diagnostics(),
		GeneratedAt: ctx.Now,
	}, nil
}
