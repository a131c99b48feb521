package edit

import (
	"slices"

	gerrors "github.com/matzehuels/graphedit/pkg/errors"
	"github.com/matzehuels/graphedit/pkg/graph"
)

// stage is an edit whose targets are resolved but not yet written. The
// closures write without notifying observers.
type stage struct {
	g       *graph.Graph
	undo    func()
	redo    func()
	restore func() // back to the state at staging time
}

// stager is implemented by edits that can be checked before they run.
type stager interface {
	stage() (*stage, error)
}

// Group is a compound edit. Undo runs the parts in reverse order, Redo in
// recording order. A call either applies every part or leaves the graph as
// it was: parts that can be staged are all resolved first, and when a later
// part fails the parts already applied are rolled back. Staged parts notify
// their graph once per call.
type Group struct {
	description string
	edits       []Edit
}

// NewGroup returns a group of edits. Nil edits are skipped.
func NewGroup(description string, edits ...Edit) *Group {
	g := &Group{description: description}
	for _, e := range edits {
		if e != nil {
			g.edits = append(g.edits, e)
		}
	}
	return g
}

func (g *Group) Undo() error { return g.run(true) }

func (g *Group) Redo() error { return g.run(false) }

func (g *Group) run(undo bool) error {
	stages := make([]*stage, len(g.edits))
	for i, e := range g.edits {
		s, ok := e.(stager)
		if !ok {
			continue
		}
		st, err := s.stage()
		if err != nil {
			return err
		}
		stages[i] = st
	}

	order := make([]int, len(g.edits))
	for i := range order {
		order[i] = i
	}
	if undo {
		slices.Reverse(order)
	}

	done := make([]int, 0, len(order))
	for _, i := range order {
		if st := stages[i]; st != nil {
			if undo {
				st.undo()
			} else {
				st.redo()
			}
			done = append(done, i)
			continue
		}
		if err := step(g.edits[i], undo); err != nil {
			g.rollback(stages, done, undo)
			return err
		}
		done = append(done, i)
	}

	var notified []*graph.Graph
	for _, st := range stages {
		if st != nil && !slices.Contains(notified, st.g) {
			notified = append(notified, st.g)
			st.g.MarkChanged()
		}
	}
	return nil
}

// rollback reverts the parts in done, newest first.
func (g *Group) rollback(stages []*stage, done []int, undo bool) {
	for _, i := range slices.Backward(done) {
		if st := stages[i]; st != nil {
			st.restore()
			continue
		}
		_ = step(g.edits[i], !undo)
	}
}

func step(e Edit, undo bool) error {
	if undo {
		return e.Undo()
	}
	return e.Redo()
}

func (g *Group) CanUndo() bool {
	for _, e := range g.edits {
		if !e.CanUndo() {
			return false
		}
	}
	return true
}

func (g *Group) CanRedo() bool {
	for _, e := range g.edits {
		if !e.CanRedo() {
			return false
		}
	}
	return true
}

func (g *Group) Description() string { return g.description }

// Len returns the number of parts.
func (g *Group) Len() int { return len(g.edits) }

// Move translates the distinct vertices by (dx, dy) with one notification
// and returns a group holding one position edit per vertex.
func Move(g *graph.Graph, vertices []*graph.Vertex, dx, dy int) (*Group, error) {
	var distinct []*graph.Vertex
	seen := make(map[graph.ID]bool, len(vertices))
	for _, v := range vertices {
		if v == nil || !g.Contains(v) {
			return nil, gerrors.New(gerrors.ErrCodeNotFound, "vertex is not in graph")
		}
		if !seen[v.ID()] {
			seen[v.ID()] = true
			distinct = append(distinct, v)
		}
	}

	edits := make([]Edit, 0, len(distinct))
	delta := graph.Pt(dx, dy)
	for _, v := range distinct {
		e, err := NewVertexEdit(g, []Snapshot{Capture(g, v)}, Change().WithPosition(v.Position.Add(delta)))
		if err != nil {
			return nil, err
		}
		edits = append(edits, e)
	}
	if err := g.MoveVertices(distinct, dx, dy); err != nil {
		return nil, err
	}

	description := "Vertices moved"
	if len(distinct) == 1 {
		description = "Vertex moved"
	}
	return NewGroup(description, edits...), nil
}
