package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/matzehuels/graphedit/pkg/errors"
	"github.com/matzehuels/graphedit/pkg/graph"
	"github.com/matzehuels/graphedit/pkg/observability"
)

type recordingHistoryHooks struct {
	observability.NoopHistoryHooks
	events []string
}

func (h *recordingHistoryHooks) OnRecord(desc string, depth int) {
	h.events = append(h.events, "record "+desc)
}

func (h *recordingHistoryHooks) OnUndo(desc string, err error) {
	h.events = append(h.events, "undo "+desc)
}

func TestHistoryUndoRedo(t *testing.T) {
	g, a, _ := newScenario(t)
	h := NewHistory(0)
	assert.Equal(t, DefaultLimit, h.Limit())

	grp, err := Move(g, []*graph.Vertex{a}, 40, 40)
	require.NoError(t, err)
	h.Record(grp)

	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Equal(t, "Vertex moved", h.UndoDescription())

	require.NoError(t, h.Undo())
	assert.Equal(t, graph.Pt(10, 10), a.Position)
	assert.Equal(t, "Vertex moved", h.RedoDescription())
	assert.Equal(t, "", h.UndoDescription())

	require.NoError(t, h.Redo())
	assert.Equal(t, graph.Pt(50, 50), a.Position)
	assert.Equal(t, 1, h.Len())
}

func TestHistoryEmptyStacks(t *testing.T) {
	h := NewHistory(10)
	assert.True(t, gerrors.Is(h.Undo(), gerrors.ErrCodeInvalidState))
	assert.True(t, gerrors.Is(h.Redo(), gerrors.ErrCodeInvalidState))
}

func TestHistoryRecordClearsRedo(t *testing.T) {
	var journal []string
	h := NewHistory(10)
	h.Record(&recordingEdit{name: "a", journal: &journal})
	require.NoError(t, h.Undo())
	require.True(t, h.CanRedo())

	h.Record(&recordingEdit{name: "b", journal: &journal})
	assert.False(t, h.CanRedo())
	assert.Equal(t, "b", h.UndoDescription())
}

func TestHistoryLimitDropsOldest(t *testing.T) {
	var journal []string
	h := NewHistory(2)
	for _, name := range []string{"a", "b", "c"} {
		h.Record(&recordingEdit{name: name, journal: &journal})
	}
	assert.Equal(t, 2, h.Len())

	require.NoError(t, h.Undo())
	require.NoError(t, h.Undo())
	assert.False(t, h.CanUndo())
	assert.Equal(t, []string{"undo c", "undo b"}, journal)
}

func TestHistoryDiscardsFailingEdit(t *testing.T) {
	var journal []string
	h := NewHistory(10)
	h.Record(&recordingEdit{name: "ok", journal: &journal})
	h.Record(&recordingEdit{name: "bad", journal: &journal, fail: true})

	err := h.Undo()
	assert.Error(t, err)
	assert.False(t, h.CanRedo(), "failed edit is not redoable")
	assert.Equal(t, "ok", h.UndoDescription())

	h.Clear()
	assert.False(t, h.CanUndo())
	assert.Equal(t, 0, h.Len())
}

func TestHistoryHooks(t *testing.T) {
	hooks := &recordingHistoryHooks{}
	observability.SetHistoryHooks(hooks)
	t.Cleanup(observability.Reset)

	var journal []string
	h := NewHistory(10)
	h.Record(&recordingEdit{name: "a", journal: &journal})
	require.NoError(t, h.Undo())
	require.NoError(t, h.Redo())

	assert.Equal(t, []string{"record a", "undo a"}, hooks.events)
}
