package edit

import (
	"slices"

	gerrors "github.com/matzehuels/graphedit/pkg/errors"
	"github.com/matzehuels/graphedit/pkg/graph"
)

// Edit is a reversible change recorded in a [History].
type Edit interface {
	Undo() error
	Redo() error
	CanUndo() bool
	CanRedo() bool
	Description() string
}

const vertexEditDescription = "Vertex edited"

// VertexEdit restores or reapplies attributes of a set of vertices.
type VertexEdit struct {
	g      *graph.Graph
	before []Snapshot
	after  Snapshot
}

// NewVertexEdit builds an edit from full before snapshots, typically taken
// with [Capture], and a partial after snapshot. It returns INVALID_INPUT if a
// before snapshot is partial or the after snapshot holds an invalid size or
// label, and INVALID_SHAPE for an unknown shape.
func NewVertexEdit(g *graph.Graph, before []Snapshot, after Snapshot) (*VertexEdit, error) {
	for i, s := range before {
		if !s.Full() {
			return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "before snapshot %d is partial (%s)", i, s.Fields())
		}
	}
	if err := validateAfter(after); err != nil {
		return nil, err
	}
	return &VertexEdit{g: g, before: slices.Clone(before), after: after}, nil
}

func validateAfter(s Snapshot) error {
	if s.Has(FieldSize) && s.Size <= 0 {
		return gerrors.New(gerrors.ErrCodeInvalidInput, "vertex size must be positive, got %d", s.Size)
	}
	if s.Has(FieldShape) && !s.Shape.Valid() {
		return gerrors.New(gerrors.ErrCodeInvalidShape, "unknown shape %d", int(s.Shape))
	}
	if s.Has(FieldLabel) {
		return gerrors.ValidateLabel(s.Label)
	}
	return nil
}

// Undo writes every captured field back onto its vertex.
func (e *VertexEdit) Undo() error {
	st, err := e.stage()
	if err != nil {
		return err
	}
	st.undo()
	e.g.MarkChanged()
	return nil
}

// Redo writes the fields present in the after snapshot onto every vertex.
func (e *VertexEdit) Redo() error {
	st, err := e.stage()
	if err != nil {
		return err
	}
	st.redo()
	e.g.MarkChanged()
	return nil
}

func (e *VertexEdit) CanUndo() bool       { return true }
func (e *VertexEdit) CanRedo() bool       { return true }
func (e *VertexEdit) Description() string { return vertexEditDescription }

// Before returns a copy of the before snapshots.
func (e *VertexEdit) Before() []Snapshot { return slices.Clone(e.before) }

// After returns the after snapshot.
func (e *VertexEdit) After() Snapshot { return e.after }

// stage resolves every target and captures its current state. Nothing is
// written until one of the returned closures runs.
func (e *VertexEdit) stage() (*stage, error) {
	targets, err := e.resolve()
	if err != nil {
		return nil, err
	}
	current := make([]Snapshot, len(targets))
	for i, v := range targets {
		current[i] = Capture(e.g, v)
	}
	return &stage{
		g: e.g,
		undo: func() {
			for i, v := range targets {
				e.before[i].applyTo(v, FieldAll)
			}
		},
		redo: func() {
			for _, v := range targets {
				e.after.applyTo(v, FieldAll)
			}
		},
		restore: func() {
			for i, v := range targets {
				current[i].applyTo(v, FieldAll)
			}
		},
	}, nil
}

// resolve looks up every target before anything is written.
func (e *VertexEdit) resolve() ([]*graph.Vertex, error) {
	targets := make([]*graph.Vertex, len(e.before))
	for i, s := range e.before {
		v, ok := e.g.Vertex(s.ID)
		if !ok {
			return nil, gerrors.New(gerrors.ErrCodeNotFound, "vertex %d is no longer in the graph", s.ID)
		}
		targets[i] = v
	}
	return targets, nil
}

// Modify captures vertices, applies after to them and returns the edit that
// reverses it. Every vertex must be a member of g (NOT_FOUND otherwise).
func Modify(g *graph.Graph, vertices []*graph.Vertex, after Snapshot) (*VertexEdit, error) {
	if err := validateAfter(after); err != nil {
		return nil, err
	}
	before := make([]Snapshot, 0, len(vertices))
	for _, v := range vertices {
		if v == nil || !g.Contains(v) {
			return nil, gerrors.New(gerrors.ErrCodeNotFound, "vertex is not in graph")
		}
		before = append(before, Capture(g, v))
	}
	e := &VertexEdit{g: g, before: before, after: after}
	if err := e.Redo(); err != nil {
		return nil, err
	}
	return e, nil
}
