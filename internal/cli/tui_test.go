package cli

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	gerrors "github.com/matzehuels/graphedit/pkg/errors"
	"github.com/matzehuels/graphedit/pkg/graph"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (*EditModel, *graph.Graph) {
	t.Helper()
	g := load(t, writeFixture(t))
	m := NewEditModel(g, filepath.Join(t.TempDir(), "out.json"), 0)
	t.Cleanup(m.Close)
	return m, g
}

func press(m *EditModel, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func TestEditModelNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runes("k"))
	if m.Cursor != 0 {
		t.Errorf("cursor moved above the first row: %d", m.Cursor)
	}
	press(m, runes("j"), tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor != 1 {
		t.Errorf("cursor = %d, want 1 (clamped to last row)", m.Cursor)
	}
	press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}
}

func TestEditModelMoveUndoRedo(t *testing.T) {
	m, g := newTestModel(t)
	a := g.Vertices()[0]

	press(m, runes("L"), runes("J"))
	if a.Position != graph.Pt(defaultMoveStep, defaultMoveStep) {
		t.Fatalf("position = %s after moving right and down", a.Position)
	}
	if !m.Dirty {
		t.Error("model should be dirty after a move")
	}
	if m.History.Len() != 2 {
		t.Errorf("history len = %d, want 2", m.History.Len())
	}

	press(m, runes("u"))
	if a.Position != graph.Pt(defaultMoveStep, 0) {
		t.Errorf("position = %s after one undo", a.Position)
	}
	if !strings.Contains(m.Status, "Vertex moved") {
		t.Errorf("status = %q", m.Status)
	}

	press(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if a.Position != graph.Pt(defaultMoveStep, defaultMoveStep) {
		t.Errorf("position = %s after redo", a.Position)
	}
}

func TestEditModelSelectionMove(t *testing.T) {
	m, g := newTestModel(t)
	a, b := g.Vertices()[0], g.Vertices()[1]

	press(m, runes("a"))
	if m.Selection.Len() != 2 {
		t.Fatalf("selection len = %d, want 2", m.Selection.Len())
	}

	press(m, runes("H"))
	if a.Position != graph.Pt(-defaultMoveStep, 0) || b.Position != graph.Pt(100-defaultMoveStep, 0) {
		t.Errorf("positions = %s, %s", a.Position, b.Position)
	}

	// One key press is one undo step.
	press(m, runes("u"))
	if a.Position != graph.Pt(0, 0) || b.Position != graph.Pt(100, 0) {
		t.Errorf("positions after undo = %s, %s", a.Position, b.Position)
	}

	press(m, runes("a"))
	if m.Selection.Len() != 0 {
		t.Errorf("second a should clear the selection, len = %d", m.Selection.Len())
	}

	press(m, runes("j"), runes(" "))
	if !m.Selection.Contains(b) || m.Selection.Contains(a) {
		t.Error("space should toggle the vertex under the cursor")
	}
}

func TestEditModelModify(t *testing.T) {
	m, g := newTestModel(t)
	a := g.Vertices()[0]

	press(m, runes("s"))
	if a.Shape != graph.ShapeSquare.Next() {
		t.Errorf("shape = %s, want %s", a.Shape, graph.ShapeSquare.Next())
	}

	press(m, runes("+"), runes("+"), runes("-"))
	if a.Size != 11 {
		t.Errorf("size = %d, want 11", a.Size)
	}

	press(m, runes("u"), runes("u"), runes("u"), runes("u"))
	if a.Shape != graph.ShapeSquare || a.Size != 10 {
		t.Errorf("after undoing everything: shape %s size %d", a.Shape, a.Size)
	}

	press(m, runes("u"))
	if !gerrors.Is(m.Err, gerrors.ErrCodeInvalidState) {
		t.Errorf("undo on empty history: err = %v, want INVALID_STATE", m.Err)
	}
	if !strings.Contains(m.View(), m.Err.Error()) {
		t.Error("view should show the error")
	}
}

func TestEditModelSaveAndQuit(t *testing.T) {
	m, g := newTestModel(t)

	press(m, runes("L"))
	if cmd := press(m, runes("q")); cmd != nil {
		t.Fatal("first q with unsaved changes should not quit")
	}
	if !strings.Contains(m.Status, "Unsaved") {
		t.Errorf("status = %q", m.Status)
	}

	press(m, runes("w"))
	if m.Dirty || !m.Saved {
		t.Errorf("dirty = %v saved = %v after save", m.Dirty, m.Saved)
	}
	saved := load(t, m.Path)
	if saved.Vertices()[0].Position != g.Vertices()[0].Position {
		t.Errorf("saved position = %s", saved.Vertices()[0].Position)
	}

	cmd := press(m, runes("q"))
	if cmd == nil {
		t.Fatal("q on a clean model should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestEditModelView(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	for _, want := range []string{"demo", "Label", "A", "B", "[0 selected]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
