package graph

import (
	"slices"

	gerrors "github.com/matzehuels/graphedit/pkg/errors"
)

// Selection is an ordered set of selected elements of one graph.
// Entries for elements removed from the graph are pruned on the next read.
type Selection struct {
	g   *Graph
	ids []ID
}

// NewSelection returns an empty selection over g.
func NewSelection(g *Graph) *Selection {
	return &Selection{g: g}
}

// Select adds e to the selection. Selecting an already selected element is a
// no-op. Returns a NOT_FOUND error if e is not a member of the graph.
func (s *Selection) Select(e Element) error {
	if !s.g.has(e) {
		return notMember(e)
	}
	if !slices.Contains(s.ids, e.ID()) {
		s.ids = append(s.ids, e.ID())
	}
	return nil
}

// Unselect removes e from the selection if present.
func (s *Selection) Unselect(e Element) {
	if isNil(e) {
		return
	}
	s.ids = slices.DeleteFunc(s.ids, func(id ID) bool { return id == e.ID() })
}

// Toggle selects e if it is not selected and unselects it otherwise.
func (s *Selection) Toggle(e Element) error {
	if s.Contains(e) {
		s.Unselect(e)
		return nil
	}
	return s.Select(e)
}

// Clear empties the selection.
func (s *Selection) Clear() { s.ids = nil }

// Contains reports whether e is selected.
func (s *Selection) Contains(e Element) bool {
	return s.g.has(e) && slices.Contains(s.ids, e.ID())
}

// Len returns the number of selected elements still in the graph.
func (s *Selection) Len() int { return len(s.Elements()) }

// Elements returns the selected elements in selection order.
func (s *Selection) Elements() []Element {
	s.prune()
	out := make([]Element, 0, len(s.ids))
	for _, id := range s.ids {
		e, _ := s.g.Lookup(id)
		out = append(out, e)
	}
	return out
}

// Vertices returns the selected vertices in selection order.
func (s *Selection) Vertices() []*Vertex {
	s.prune()
	var out []*Vertex
	for _, id := range s.ids {
		if v, ok := s.g.Vertex(id); ok {
			out = append(out, v)
		}
	}
	return out
}

// Edges returns the selected edges in selection order.
func (s *Selection) Edges() []*Edge {
	s.prune()
	var out []*Edge
	for _, id := range s.ids {
		if e, ok := s.g.Edge(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// MoveSelected translates the selected vertices by (dx, dy).
func (s *Selection) MoveSelected(dx, dy int) error {
	return s.g.MoveVertices(s.Vertices(), dx, dy)
}

// RemoveSelected removes the selected elements (cascading to incident edges)
// and clears the selection. It returns the number of elements removed from
// the graph, cascaded edges included.
func (s *Selection) RemoveSelected() (int, error) {
	elems := s.Elements()
	if len(elems) == 0 {
		return 0, nil
	}
	before := s.g.Len()
	if err := s.g.RemoveElements(elems); err != nil {
		return 0, err
	}
	s.Clear()
	return before - s.g.Len(), nil
}

// CopySelected copies the selection centered on center. Selected edges whose
// endpoints are not both selected are left out of the copy.
func (s *Selection) CopySelected(center Point) ([]Element, error) {
	return s.CopySelectedInto(s.g, center)
}

// CopySelectedInto is like [Selection.CopySelected] but allocates the copies
// in dst, so they can be pasted into dst with [Graph.AddElements].
func (s *Selection) CopySelectedInto(dst *Graph, center Point) ([]Element, error) {
	elems := s.Elements()
	if len(elems) == 0 {
		return nil, gerrors.New(gerrors.ErrCodeInvalidState, "selection is empty")
	}
	selected := make(map[ID]bool, len(elems))
	for _, e := range elems {
		selected[e.ID()] = true
	}
	closed := slices.DeleteFunc(elems, func(e Element) bool {
		ed, ok := e.(*Edge)
		return ok && !(selected[ed.origin] && selected[ed.destination])
	})
	return dst.CopyCentered(closed, center)
}

func (s *Selection) prune() {
	s.ids = slices.DeleteFunc(s.ids, func(id ID) bool {
		_, ok := s.g.Lookup(id)
		return !ok
	})
}
