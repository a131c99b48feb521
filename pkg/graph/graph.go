package graph

import (
	"slices"

	"github.com/google/uuid"

	gerrors "github.com/matzehuels/graphedit/pkg/errors"
	"github.com/matzehuels/graphedit/pkg/observability"
)

// Defaults holds the attributes applied to elements created without explicit
// styling, and the highlight attributes used for selected elements.
type Defaults struct {
	Color             Color
	SelectedColor     Color
	Size              int
	Thickness         int
	SelectedThickness int
	Shape             Shape
}

// StandardDefaults returns black circles of size 10 joined by 1px edges,
// highlighted in blue at 2px when selected.
func StandardDefaults() Defaults {
	return Defaults{
		Color:             Black,
		SelectedColor:     Blue,
		Size:              10,
		Thickness:         1,
		SelectedThickness: 2,
		Shape:             ShapeCircle,
	}
}

// Validate checks that sizes and thicknesses are positive and the shape is known.
func (d Defaults) Validate() error {
	if d.Size <= 0 {
		return gerrors.New(gerrors.ErrCodeInvalidInput, "default size must be positive, got %d", d.Size)
	}
	if d.Thickness <= 0 || d.SelectedThickness <= 0 {
		return gerrors.New(gerrors.ErrCodeInvalidInput, "default thicknesses must be positive, got %d/%d", d.Thickness, d.SelectedThickness)
	}
	if !d.Shape.Valid() {
		return gerrors.New(gerrors.ErrCodeInvalidShape, "unknown default shape %d", int(d.Shape))
	}
	return nil
}

// Observer receives the full element list after every graph mutation.
// The slice is shared between observers of one notification and must not be
// modified.
type Observer func(elements []Element)

// Option configures a Graph at construction.
type Option func(*Graph)

// WithName sets the graph's display name.
func WithName(name string) Option {
	return func(g *Graph) { g.name = name }
}

// WithDefaults replaces [StandardDefaults]. Invalid defaults are ignored.
func WithDefaults(d Defaults) Option {
	return func(g *Graph) {
		if d.Validate() == nil {
			g.defaults = d
		}
	}
}

// WithDocumentID sets the document identifier instead of generating one.
// Importers use it to keep a document's identity across save and load.
func WithDocumentID(id uuid.UUID) Option {
	return func(g *Graph) { g.docID = id }
}

type subscription struct {
	fn Observer
}

// Graph owns an ordered collection of vertices and edges.
//
// The zero value is not usable - use New to create a Graph.
// A Graph is not safe for concurrent use.
type Graph struct {
	name     string
	docID    uuid.UUID
	defaults Defaults

	lastID   ID
	pending  map[ID]struct{} // allocated by Copy, not yet inserted
	elements map[ID]Element
	order    []ID // insertion order

	subs   []*subscription
	closed bool
}

// New creates an empty graph with a fresh document id and standard defaults.
func New(opts ...Option) *Graph {
	g := &Graph{
		docID:    uuid.New(),
		defaults: StandardDefaults(),
		elements: make(map[ID]Element),
		pending:  make(map[ID]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the graph's display name.
func (g *Graph) Name() string { return g.name }

// SetName changes the display name. Renaming does not notify observers.
func (g *Graph) SetName(name string) { g.name = name }

// DocumentID returns the identifier used by exporters for this graph.
func (g *Graph) DocumentID() uuid.UUID { return g.docID }

// Defaults returns the attributes used by [Graph.PlaceVertex] and exporters.
func (g *Graph) Defaults() Defaults { return g.defaults }

// SetDefaults replaces the graph defaults after validating them.
func (g *Graph) SetDefaults(d Defaults) error {
	if err := d.Validate(); err != nil {
		return err
	}
	g.defaults = d
	return nil
}

// =============================================================================
// Creation
// =============================================================================

// CreateVertex adds a vertex and returns it.
// Returns an INVALID_INPUT error if size is not positive, or INVALID_SHAPE
// if shape is unknown.
func (g *Graph) CreateVertex(color Color, position Point, size int, shape Shape) (*Vertex, error) {
	if size <= 0 {
		return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "vertex size must be positive, got %d", size)
	}
	if !shape.Valid() {
		return nil, gerrors.New(gerrors.ErrCodeInvalidShape, "unknown shape %d", int(shape))
	}

	v := &Vertex{
		Attrs:    Attrs{Color: color},
		Position: position,
		Size:     size,
		Shape:    shape,
		id:       g.allocID(),
	}
	g.insert(v)
	observability.Graph().OnElementCreated(KindVertex.String(), uint64(v.id))
	g.MarkChanged()
	return v, nil
}

// PlaceVertex creates a vertex with the graph defaults, centered on p.
// Returns a CONFLICT error when the new vertex would overlap an existing one.
func (g *Graph) PlaceVertex(p Point) (*Vertex, error) {
	d := g.defaults
	margin := d.Size / 2
	for _, v := range g.Vertices() {
		if v.Contains(p, margin) {
			return nil, gerrors.New(gerrors.ErrCodeConflict, "position %s overlaps vertex %d", p, v.id)
		}
	}
	return g.CreateVertex(d.Color, p.Sub(Pt(margin, margin)), d.Size, d.Shape)
}

// CreateEdge connects origin to destination and returns the new edge.
// Both endpoints must be vertices of this graph (NOT_FOUND otherwise) and
// thickness must be positive (INVALID_INPUT otherwise). The edge is
// registered on both endpoints' incident lists.
func (g *Graph) CreateEdge(color Color, origin, destination *Vertex, thickness int) (*Edge, error) {
	if thickness <= 0 {
		return nil, gerrors.New(gerrors.ErrCodeInvalidInput, "edge thickness must be positive, got %d", thickness)
	}
	if !g.hasVertex(origin) {
		return nil, gerrors.New(gerrors.ErrCodeNotFound, "origin vertex is not in graph")
	}
	if !g.hasVertex(destination) {
		return nil, gerrors.New(gerrors.ErrCodeNotFound, "destination vertex is not in graph")
	}

	e := &Edge{
		Attrs:       Attrs{Color: color},
		Thickness:   thickness,
		id:          g.allocID(),
		origin:      origin.id,
		destination: destination.id,
	}
	origin.attach(e.id)
	destination.attach(e.id)
	g.insert(e)
	observability.Graph().OnElementCreated(KindEdge.String(), uint64(e.id))
	g.MarkChanged()
	return e, nil
}

// AddElements inserts elements built outside the graph, typically the result
// of [Graph.Copy]. Every element must carry an id handed out by this
// graph's Copy and not yet inserted; anything else, including copies made by
// another graph, is an INVALID_INPUT error. Every edge endpoint must be a
// vertex of the graph or of the batch. The whole batch is checked before
// anything is inserted, and observers are notified once.
func (g *Graph) AddElements(elements []Element) error {
	batch := make(map[ID]Element, len(elements))
	for _, e := range elements {
		if isNil(e) {
			return gerrors.New(gerrors.ErrCodeInvalidInput, "nil element in batch")
		}
		if e.ID() == 0 {
			return gerrors.New(gerrors.ErrCodeInvalidInput, "element has no id")
		}
		if _, dup := batch[e.ID()]; dup {
			return gerrors.New(gerrors.ErrCodeConflict, "element %d appears twice in batch", e.ID())
		}
		if _, exists := g.elements[e.ID()]; exists {
			return gerrors.New(gerrors.ErrCodeConflict, "element %d already in graph", e.ID())
		}
		if _, ok := g.pending[e.ID()]; !ok {
			return gerrors.New(gerrors.ErrCodeInvalidInput, "element %d was not copied by this graph", e.ID())
		}
		batch[e.ID()] = e
	}

	resolve := func(id ID) (*Vertex, bool) {
		if v, ok := batch[id].(*Vertex); ok {
			return v, true
		}
		return g.Vertex(id)
	}
	for _, e := range elements {
		switch el := e.(type) {
		case *Edge:
			if _, ok := resolve(el.origin); !ok {
				return gerrors.New(gerrors.ErrCodeNotFound, "edge %d: origin %d not found", el.id, el.origin)
			}
			if _, ok := resolve(el.destination); !ok {
				return gerrors.New(gerrors.ErrCodeNotFound, "edge %d: destination %d not found", el.id, el.destination)
			}
		case *Vertex:
			for _, eid := range el.edges {
				if ed, ok := batch[eid].(*Edge); !ok || !ed.Touches(el.id) {
					return gerrors.New(gerrors.ErrCodeInvalidInput, "vertex %d references edge %d outside batch", el.id, eid)
				}
			}
		}
	}

	for _, e := range elements {
		if ed, ok := e.(*Edge); ok {
			o, _ := resolve(ed.origin)
			d, _ := resolve(ed.destination)
			ensureAttached(o, ed)
			ensureAttached(d, ed)
		}
		delete(g.pending, e.ID())
		g.insert(e)
		observability.Graph().OnElementCreated(e.Kind().String(), uint64(e.ID()))
	}
	g.MarkChanged()
	return nil
}

// ensureAttached makes v's incident list hold e once, or twice for a loop.
func ensureAttached(v *Vertex, e *Edge) {
	want := 1
	if e.IsLoop() {
		want = 2
	}
	have := 0
	for _, id := range v.edges {
		if id == e.id {
			have++
		}
	}
	for ; have < want; have++ {
		v.attach(e.id)
	}
}

// =============================================================================
// Removal
// =============================================================================

// RemoveElement removes e from the graph. Removing a vertex first removes
// every edge incident to it; removing an edge detaches it from both
// endpoints. Returns a NOT_FOUND error if e is not a member of this graph.
func (g *Graph) RemoveElement(e Element) error {
	if !g.has(e) {
		return notMember(e)
	}
	g.remove(e)
	g.MarkChanged()
	return nil
}

// RemoveElements removes a batch of elements with a single notification.
// Every element must be a member when the call starts; edges already removed
// by the cascade of an earlier vertex in the batch are skipped.
func (g *Graph) RemoveElements(elements []Element) error {
	for _, e := range elements {
		if !g.has(e) {
			return notMember(e)
		}
	}
	for _, e := range elements {
		if g.has(e) {
			g.remove(e)
		}
	}
	g.MarkChanged()
	return nil
}

func (g *Graph) remove(e Element) {
	switch el := e.(type) {
	case *Vertex:
		incident := slices.Compact(slices.Sorted(slices.Values(el.edges)))
		for _, eid := range incident {
			if ed, ok := g.Edge(eid); ok {
				g.removeEdge(ed)
			}
		}
		g.drop(el.id)
		observability.Graph().OnElementRemoved(KindVertex.String(), uint64(el.id), len(incident))
	case *Edge:
		g.removeEdge(el)
		observability.Graph().OnElementRemoved(KindEdge.String(), uint64(el.id), 0)
	}
}

// removeEdge detaches ed from its endpoints and drops it from the arena.
func (g *Graph) removeEdge(ed *Edge) {
	if o, ok := g.Vertex(ed.origin); ok {
		o.detach(ed.id)
	}
	if d, ok := g.Vertex(ed.destination); ok {
		d.detach(ed.id)
	}
	g.drop(ed.id)
}

func (g *Graph) drop(id ID) {
	delete(g.elements, id)
	if i := slices.Index(g.order, id); i >= 0 {
		g.order = slices.Delete(g.order, i, i+1)
	}
}

// =============================================================================
// Movement
// =============================================================================

// MoveVertex sets v's position to destination.
// Returns a NOT_FOUND error if v is not a member of this graph.
func (g *Graph) MoveVertex(v *Vertex, destination Point) error {
	if !g.hasVertex(v) {
		return notMember(v)
	}
	v.Position = destination
	g.MarkChanged()
	return nil
}

// MoveVertices translates every distinct vertex in vertices by (dx, dy).
// Membership is checked for the whole list before any vertex moves.
func (g *Graph) MoveVertices(vertices []*Vertex, dx, dy int) error {
	for _, v := range vertices {
		if !g.hasVertex(v) {
			return notMember(v)
		}
	}
	delta := Pt(dx, dy)
	moved := make(map[ID]bool, len(vertices))
	for _, v := range vertices {
		if moved[v.id] {
			continue
		}
		moved[v.id] = true
		v.Position = v.Position.Add(delta)
	}
	g.MarkChanged()
	return nil
}

// =============================================================================
// Queries
// =============================================================================

// Lookup returns the element with the given id, or false when absent.
func (g *Graph) Lookup(id ID) (Element, bool) {
	e, ok := g.elements[id]
	return e, ok
}

// Vertex returns the vertex with the given id, or false when absent or when
// the id names an edge.
func (g *Graph) Vertex(id ID) (*Vertex, bool) {
	v, ok := g.elements[id].(*Vertex)
	return v, ok
}

// Edge returns the edge with the given id, or false when absent or when the
// id names a vertex.
func (g *Graph) Edge(id ID) (*Edge, bool) {
	e, ok := g.elements[id].(*Edge)
	return e, ok
}

// Contains reports whether e is a member of this graph.
func (g *Graph) Contains(e Element) bool { return g.has(e) }

// Elements returns all elements in insertion order. The slice is a copy; the
// elements are the live instances.
func (g *Graph) Elements() []Element {
	out := make([]Element, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.elements[id])
	}
	return out
}

// Vertices returns all vertices in insertion order.
func (g *Graph) Vertices() []*Vertex {
	var out []*Vertex
	for _, id := range g.order {
		if v, ok := g.elements[id].(*Vertex); ok {
			out = append(out, v)
		}
	}
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	var out []*Edge
	for _, id := range g.order {
		if e, ok := g.elements[id].(*Edge); ok {
			out = append(out, e)
		}
	}
	return out
}

// IncidentEdges returns the distinct edges touching v, in attachment order.
func (g *Graph) IncidentEdges(v *Vertex) []*Edge {
	var out []*Edge
	seen := make(map[ID]bool, len(v.edges))
	for _, eid := range v.edges {
		if seen[eid] {
			continue
		}
		seen[eid] = true
		if e, ok := g.Edge(eid); ok {
			out = append(out, e)
		}
	}
	return out
}

// IndexOf returns v's position in [Graph.Vertices], or -1 if absent.
func (g *Graph) IndexOf(v *Vertex) int {
	i := 0
	for _, id := range g.order {
		if cur, ok := g.elements[id].(*Vertex); ok {
			if cur == v {
				return i
			}
			i++
		}
	}
	return -1
}

// Len returns the number of elements.
func (g *Graph) Len() int { return len(g.order) }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.Vertices()) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.Edges()) }

// Validate checks referential integrity: every edge endpoint is a vertex of
// the graph and lists the edge as incident, and every incident id names an
// edge touching its vertex. Returns an INTERNAL_ERROR describing the first
// violation found.
func (g *Graph) Validate() error {
	for _, e := range g.Edges() {
		for _, end := range []ID{e.origin, e.destination} {
			v, ok := g.Vertex(end)
			if !ok {
				return gerrors.New(gerrors.ErrCodeInternal, "edge %d references missing vertex %d", e.id, end)
			}
			if !slices.Contains(v.edges, e.id) {
				return gerrors.New(gerrors.ErrCodeInternal, "vertex %d does not list incident edge %d", end, e.id)
			}
		}
	}
	for _, v := range g.Vertices() {
		for _, eid := range v.edges {
			e, ok := g.Edge(eid)
			if !ok || !e.Touches(v.id) {
				return gerrors.New(gerrors.ErrCodeInternal, "vertex %d lists foreign edge %d", v.id, eid)
			}
		}
	}
	return nil
}

// =============================================================================
// Notification
// =============================================================================

// MarkChanged notifies every subscriber with the current element list.
// Graph methods call it once per mutation; code that writes vertex fields
// directly calls it when done.
func (g *Graph) MarkChanged() {
	observability.Graph().OnChanged(len(g.order))
	if len(g.subs) == 0 {
		return
	}
	snapshot := g.Elements()
	for _, s := range slices.Clone(g.subs) {
		s.fn(snapshot)
	}
}

// Subscribe registers fn to be called after every mutation and returns a
// function that cancels the subscription. Subscribing to a closed graph is a
// no-op.
func (g *Graph) Subscribe(fn Observer) (cancel func()) {
	if fn == nil || g.closed {
		return func() {}
	}
	s := &subscription{fn: fn}
	g.subs = append(g.subs, s)
	return func() {
		g.subs = slices.DeleteFunc(g.subs, func(o *subscription) bool { return o == s })
	}
}

// Close drops every subscriber. The graph remains usable but no longer
// publishes notifications.
func (g *Graph) Close() {
	g.subs = nil
	g.closed = true
}

// =============================================================================
// Internals
// =============================================================================

func (g *Graph) allocID() ID {
	g.lastID++
	return g.lastID
}

// allocPendingID allocates an id for an element that is inserted later by
// AddElements.
func (g *Graph) allocPendingID() ID {
	id := g.allocID()
	g.pending[id] = struct{}{}
	return id
}

func (g *Graph) insert(e Element) {
	g.elements[e.ID()] = e
	g.order = append(g.order, e.ID())
}

// has reports whether e is the instance stored under its id. Instances with a
// colliding id from another graph or an unregistered copy are not members.
func (g *Graph) has(e Element) bool {
	if isNil(e) {
		return false
	}
	return g.elements[e.ID()] == e
}

func (g *Graph) hasVertex(v *Vertex) bool {
	return v != nil && g.has(v)
}

func isNil(e Element) bool {
	switch el := e.(type) {
	case nil:
		return true
	case *Vertex:
		return el == nil
	case *Edge:
		return el == nil
	}
	return false
}

func notMember(e Element) error {
	if isNil(e) {
		return gerrors.New(gerrors.ErrCodeNotFound, "element is nil")
	}
	return gerrors.New(gerrors.ErrCodeNotFound, "%s %d is not in graph", e.Kind(), e.ID())
}
