package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/graphedit/pkg/edit"
	"github.com/matzehuels/graphedit/pkg/graph"
	gio "github.com/matzehuels/graphedit/pkg/io"
)

var (
	editHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	editStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
)

const editHelp = "j/k: navigate  space: select  a: all  H/J/K/L: move  s: shape  +/-: size  u: undo  ctrl+r: redo  w: save  q: quit"

// =============================================================================
// EditModel - Interactive vertex editing session
// =============================================================================

// EditModel is the bubbletea model for an interactive edit session. Every
// change goes through an edit.History so it can be undone.
type EditModel struct {
	Graph     *graph.Graph
	Path      string
	History   *edit.History
	Selection *graph.Selection
	Cursor    int
	Status    string
	Err       error
	Dirty     bool
	Saved     bool

	confirmQuit bool
	unsubscribe func()
}

// NewEditModel creates an edit session over g. Saving writes JSON to path.
func NewEditModel(g *graph.Graph, path string, historyLimit int) *EditModel {
	m := &EditModel{
		Graph:     g,
		Path:      path,
		History:   edit.NewHistory(historyLimit),
		Selection: graph.NewSelection(g),
	}
	m.unsubscribe = g.Subscribe(func([]graph.Element) { m.Dirty = true })
	return m
}

// Close detaches the model from its graph.
func (m *EditModel) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *EditModel) Init() tea.Cmd {
	return nil
}

func (m *EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if k := key.String(); k != "q" && k != "esc" {
		m.confirmQuit = false
	}

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		if m.Dirty && !m.confirmQuit {
			m.confirmQuit = true
			m.setStatus("Unsaved changes, press q again to quit")
			return m, nil
		}
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < m.Graph.VertexCount()-1 {
			m.Cursor++
		}
	case " ":
		if v := m.current(); v != nil {
			m.fail(m.Selection.Toggle(v))
		}
	case "a":
		m.toggleAll()
	case "H":
		m.move(-defaultMoveStep, 0)
	case "L":
		m.move(defaultMoveStep, 0)
	case "K":
		m.move(0, -defaultMoveStep)
	case "J":
		m.move(0, defaultMoveStep)
	case "s":
		if v := m.current(); v != nil {
			m.modify(edit.Change().WithShape(v.Shape.Next()))
		}
	case "+", "=":
		if v := m.current(); v != nil {
			m.modify(edit.Change().WithSize(v.Size + 1))
		}
	case "-":
		if v := m.current(); v != nil && v.Size > 1 {
			m.modify(edit.Change().WithSize(v.Size - 1))
		}
	case "u":
		desc := m.History.UndoDescription()
		if m.fail(m.History.Undo()) {
			m.setStatus("Undid: " + desc)
		}
	case "ctrl+r":
		desc := m.History.RedoDescription()
		if m.fail(m.History.Redo()) {
			m.setStatus("Redid: " + desc)
		}
	case "w":
		m.save()
	}
	return m, nil
}

func (m *EditModel) View() string {
	var b strings.Builder

	title := appName + " · " + m.Graph.Name()
	if m.Dirty {
		title += " *"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(editHelpStyle.Render(editHelp))
	b.WriteString("\n\n")

	if m.Graph.VertexCount() == 0 {
		b.WriteString(StyleDim.Render("  (no vertices)"))
	} else {
		b.WriteString(vertexTable(m.Graph, m.Selection, m.Cursor))
	}
	b.WriteString("\n\n")

	b.WriteString(editHelpStyle.Render(fmt.Sprintf("  [%d selected] [undo %d/%d]",
		m.Selection.Len(), m.History.Len(), m.History.Limit())))
	b.WriteString("\n")
	switch {
	case m.Err != nil:
		b.WriteString(StyleError.Render("  " + m.Err.Error()))
	case m.Status != "":
		b.WriteString(editStatusStyle.Render("  " + m.Status))
	}
	b.WriteString("\n")

	return b.String()
}

// =============================================================================
// Actions
// =============================================================================

// current returns the vertex under the cursor.
func (m *EditModel) current() *graph.Vertex {
	vertices := m.Graph.Vertices()
	if m.Cursor < 0 || m.Cursor >= len(vertices) {
		return nil
	}
	return vertices[m.Cursor]
}

// targets returns the selected vertices, or the vertex under the cursor
// when nothing is selected.
func (m *EditModel) targets() []*graph.Vertex {
	if vs := m.Selection.Vertices(); len(vs) > 0 {
		return vs
	}
	if v := m.current(); v != nil {
		return []*graph.Vertex{v}
	}
	return nil
}

func (m *EditModel) toggleAll() {
	if m.Selection.Len() > 0 {
		m.Selection.Clear()
		return
	}
	for _, v := range m.Graph.Vertices() {
		if !m.fail(m.Selection.Select(v)) {
			return
		}
	}
}

func (m *EditModel) move(dx, dy int) {
	targets := m.targets()
	if len(targets) == 0 {
		return
	}
	group, err := edit.Move(m.Graph, targets, dx, dy)
	if m.fail(err) {
		m.record(group)
	}
}

func (m *EditModel) modify(after edit.Snapshot) {
	targets := m.targets()
	if len(targets) == 0 {
		return
	}
	e, err := edit.Modify(m.Graph, targets, after)
	if m.fail(err) {
		m.record(e)
	}
}

func (m *EditModel) record(e edit.Edit) {
	m.History.Record(e)
	m.setStatus(e.Description())
}

func (m *EditModel) save() {
	if m.fail(gio.ExportJSON(m.Graph, m.Path)) {
		m.Dirty = false
		m.Saved = true
		m.setStatus("Saved " + m.Path)
	}
}

func (m *EditModel) setStatus(s string) {
	m.Status = s
	m.Err = nil
}

// fail records err for display and reports whether the action succeeded.
func (m *EditModel) fail(err error) bool {
	if err != nil {
		m.Err = err
		return false
	}
	return true
}
