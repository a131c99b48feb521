package graph

import (
	gerrors "github.com/matzehuels/graphedit/pkg/errors"
)

// Copy duplicates elements into fresh entities with new ids allocated by g.
// The copies are not inserted; pass them to [Graph.AddElements] to paste.
//
// The result has the same length and order as elements. Vertices are copied
// first, then each edge is rebuilt between the copies of its endpoints,
// which are found by their position in elements. Every copied edge therefore
// connects copied vertices, never the originals. An edge whose endpoint is
// missing from elements yields an INVALID_INPUT error and nothing is
// allocated.
//
// The source elements need not belong to g, so a selection can be pasted
// into another graph. The copies can only be inserted into g, and only once.
func (g *Graph) Copy(elements []Element) ([]Element, error) {
	return g.copyElements(elements, Point{})
}

// CopyCentered is like [Graph.Copy] but translates the copied vertices so the
// center of their bounding box lands on center. The bounding box spans the
// positions of the vertices in elements, or the origin when there are none.
// The new top-left corner is center - (max-min)/2 using integer division.
func (g *Graph) CopyCentered(elements []Element, center Point) ([]Element, error) {
	lo, hi, _ := Bounds(elements)
	newMin := center.Sub(Pt((hi.X-lo.X)/2, (hi.Y-lo.Y)/2))
	return g.copyElements(elements, newMin.Sub(lo))
}

// Bounds returns the smallest and largest vertex positions among elements.
// ok is false, and both points are the origin, when elements has no vertex.
func Bounds(elements []Element) (lo, hi Point, ok bool) {
	for _, e := range elements {
		v, isVertex := e.(*Vertex)
		if !isVertex || v == nil {
			continue
		}
		p := v.Position
		if !ok {
			lo, hi, ok = p, p, true
			continue
		}
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return lo, hi, ok
}

func (g *Graph) copyElements(elements []Element, offset Point) ([]Element, error) {
	// Position of each vertex in the input; the first occurrence wins.
	index := make(map[ID]int, len(elements))
	for i, e := range elements {
		if isNil(e) {
			return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "nil element at position %d", i)
		}
		if v, ok := e.(*Vertex); ok {
			if _, seen := index[v.id]; !seen {
				index[v.id] = i
			}
		}
	}
	for _, e := range elements {
		if ed, ok := e.(*Edge); ok {
			if _, found := index[ed.origin]; !found {
				return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "edge %d: origin %d not in copied elements", ed.id, ed.origin)
			}
			if _, found := index[ed.destination]; !found {
				return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "edge %d: destination %d not in copied elements", ed.id, ed.destination)
			}
		}
	}

	out := make([]Element, len(elements))
	for i, e := range elements {
		if v, ok := e.(*Vertex); ok {
			out[i] = &Vertex{
				Attrs:    v.Attrs,
				Position: v.Position.Add(offset),
				Size:     v.Size,
				Shape:    v.Shape,
				Value:    v.Value,
				id:       g.allocPendingID(),
			}
		}
	}
	for i, e := range elements {
		if ed, ok := e.(*Edge); ok {
			o := out[index[ed.origin]].(*Vertex)
			d := out[index[ed.destination]].(*Vertex)
			c := &Edge{
				Attrs:       ed.Attrs,
				Thickness:   ed.Thickness,
				id:          g.allocPendingID(),
				origin:      o.id,
				destination: d.id,
			}
			o.attach(c.id)
			d.attach(c.id)
			out[i] = c
		}
	}
	return out, nil
}
