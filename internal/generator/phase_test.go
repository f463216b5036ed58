package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/ltmgen/internal/config"
	"github.com/imamik/ltmgen/internal/resolver"
	"github.com/imamik/ltmgen/internal/tmsh"
)

type stubPhase struct {
	name string
	err  error
	ran  *[]string
}

func (s stubPhase) Name() string { return s.name }

func (s stubPhase) Emit(_ *Context) error {
	*s.ran = append(*s.ran, s.name)
	return s.err
}

func newTestContext(obs Observer) *Context {
	cfg := &config.Config{Metadata: config.Metadata{Partition: "Common", Name: "t"}}
	return &Context{
		Config:   cfg,
		Nodes:    resolver.New(nil),
		Sequence: tmsh.NewSequence(),
		Observer: obs,
		Now:      fixedTime,
	}
}

func TestRunPhases_Order(t *testing.T) {
	t.Parallel()

	var ran []string
	obs := &RecordingObserver{}
	ctx := newTestContext(obs)

	err := RunPhases(ctx, []Phase{
		stubPhase{name: "a", ran: &ran},
		stubPhase{name: "b", ran: &ran},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, ran)
	assert.Len(t, obs.OfType(EventPhaseStarted), 2)
	assert.Len(t, obs.OfType(EventPhaseCompleted), 2)
}

func TestRunPhases_StopsOnError(t *testing.T) {
	t.Parallel()

	var ran []string
	boom := errors.New("boom")
	ctx := newTestContext(&RecordingObserver{})

	err := RunPhases(ctx, []Phase{
		stubPhase{name: "a", ran: &ran, err: boom},
		stubPhase{name: "b", ran: &ran},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "a phase failed")
	assert.Equal(t, []string{"a"}, ran)
}

func TestDefaultPhases_Names(t *testing.T) {
	t.Parallel()

	var names []string
	for _, p := range DefaultPhases() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{
		"header", "partition", "monitors", "profiles", "nodes",
		"pools", "virtual-servers", "save", "trailer",
	}, names)
}

func TestContext_AppendReportsCommands(t *testing.T) {
	t.Parallel()

	obs := &RecordingObserver{}
	ctx := newTestContext(obs)
	ctx.phase = "nodes"

	ctx.Append(tmsh.Comment("x"), tmsh.Command(tmsh.KindNode, "create", "ltm node", "/Common/n1"))

	events := obs.OfType(EventCommandEmitted)
	require.Len(t, events, 1)
	assert.Equal(t, "nodes", events[0].Phase)
	assert.Equal(t, tmsh.KindNode, events[0].Kind)
	assert.Equal(t, "/Common/n1", events[0].Resource)
	assert.Equal(t, 2, ctx.Sequence.Len())
}

func TestContext_Warn(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(&RecordingObserver{})
	d := Diagnostic{Reason: ReasonUnresolvedMember, Kind: tmsh.KindPoolMember, Entity: "p1", Message: "Node x not found for pool p1"}
	ctx.Warn(d)

	assert.Equal(t, []Diagnostic{d}, ctx.Diagnostics())
	assert.Equal(t, []string{`echo "WARNING: Node x not found for pool p1"`, ""}, ctx.Sequence.Lines())
}

func TestDiagnostic_String(t *testing.T) {
	t.Parallel()

	d := Diagnostic{Kind: tmsh.KindMonitor, Entity: "m", Message: "skipped"}
	assert.Equal(t, "monitor m: skipped", d.String())
}
