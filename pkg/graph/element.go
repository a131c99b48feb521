package graph

import "slices"

// Element is either a *Vertex or an *Edge. The interface is sealed: only this
// package implements it. Use a type switch to reach the concrete type.
type Element interface {
	// ID returns the element's graph-unique identifier.
	ID() ID
	// Kind reports whether the element is a vertex or an edge.
	Kind() Kind
	// IsVertex is shorthand for Kind() == KindVertex.
	IsVertex() bool
	// Attributes returns the display attributes shared by both kinds.
	Attributes() *Attrs

	sealed()
}

// Attrs holds the display attributes common to vertices and edges.
type Attrs struct {
	Label string // Optional display label
	Color Color
}

// Vertex is a drawable node with a position on the canvas.
//
// Exported fields may be written directly by edits and algorithms, which must
// call [Graph.MarkChanged] afterwards. The incident edge list is owned by the
// Graph and is read through [Vertex.Edges].
type Vertex struct {
	Attrs
	Position Point // Top-left corner of the vertex's bounding square
	Size     int   // Side length, always positive
	Shape    Shape
	Value    int // Derived attribute written by algorithm passes

	id    ID
	edges []ID // incident edge ids, in attachment order
}

func (v *Vertex) ID() ID             { return v.id }
func (v *Vertex) Kind() Kind         { return KindVertex }
func (v *Vertex) IsVertex() bool     { return true }
func (v *Vertex) Attributes() *Attrs { return &v.Attrs }
func (*Vertex) sealed()              {}

// Edges returns the ids of the edges incident to v, in attachment order.
// The returned slice is a copy.
func (v *Vertex) Edges() []ID { return slices.Clone(v.edges) }

// Degree returns the number of incident edges. A self-loop counts twice.
func (v *Vertex) Degree() int { return len(v.edges) }

// Center returns the center of the vertex's bounding square.
func (v *Vertex) Center() Point {
	return Point{X: v.Position.X + v.Size/2, Y: v.Position.Y + v.Size/2}
}

// Contains reports whether p lies inside the vertex's bounding square grown
// by margin on every side.
func (v *Vertex) Contains(p Point, margin int) bool {
	minX, minY := v.Position.X-margin, v.Position.Y-margin
	maxX, maxY := v.Position.X+v.Size+margin, v.Position.Y+v.Size+margin
	return p.X >= minX && p.X < maxX && p.Y >= minY && p.Y < maxY
}

func (v *Vertex) attach(e ID) { v.edges = append(v.edges, e) }

// detach removes one occurrence of e from the incident list.
func (v *Vertex) detach(e ID) {
	if i := slices.Index(v.edges, e); i >= 0 {
		v.edges = slices.Delete(v.edges, i, i+1)
	}
}

// Edge connects an origin vertex to a destination vertex of the same graph.
// An edge refers to its endpoints by id and does not own them.
type Edge struct {
	Attrs
	Thickness int // Stroke width, always positive

	id          ID
	origin      ID
	destination ID
}

func (e *Edge) ID() ID             { return e.id }
func (e *Edge) Kind() Kind         { return KindEdge }
func (e *Edge) IsVertex() bool     { return false }
func (e *Edge) Attributes() *Attrs { return &e.Attrs }
func (*Edge) sealed()              {}

// Origin returns the id of the edge's origin vertex.
func (e *Edge) Origin() ID { return e.origin }

// Destination returns the id of the edge's destination vertex.
func (e *Edge) Destination() ID { return e.destination }

// Touches reports whether v is one of the edge's endpoints.
func (e *Edge) Touches(v ID) bool { return e.origin == v || e.destination == v }

// IsLoop reports whether the edge starts and ends on the same vertex.
func (e *Edge) IsLoop() bool { return e.origin == e.destination }
