package graph

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/matzehuels/graphedit/pkg/errors"
)

func mustVertex(t *testing.T, g *Graph, x, y int) *Vertex {
	t.Helper()
	v, err := g.CreateVertex(Black, Pt(x, y), 20, ShapeSquare)
	require.NoError(t, err)
	return v
}

func mustEdge(t *testing.T, g *Graph, a, b *Vertex) *Edge {
	t.Helper()
	e, err := g.CreateEdge(Black, a, b, 1)
	require.NoError(t, err)
	return e
}

func TestCreateVertex(t *testing.T) {
	g := New()
	v, err := g.CreateVertex(Red, Pt(10, 20), 15, ShapeTriangle)
	require.NoError(t, err)

	assert.Equal(t, ID(1), v.ID())
	assert.Equal(t, Red, v.Color)
	assert.Equal(t, Pt(10, 20), v.Position)
	assert.Equal(t, 15, v.Size)
	assert.Equal(t, ShapeTriangle, v.Shape)
	assert.True(t, v.IsVertex())
	assert.Equal(t, KindVertex, v.Kind())
	assert.Equal(t, 1, g.VertexCount())
}

func TestCreateVertexInvalid(t *testing.T) {
	g := New()

	_, err := g.CreateVertex(Black, Pt(0, 0), 0, ShapeSquare)
	assert.True(t, gerrors.Is(err, gerrors.ErrCodeInvalidInput), "size 0: %v", err)

	_, err = g.CreateVertex(Black, Pt(0, 0), 10, Shape(42))
	assert.True(t, gerrors.Is(err, gerrors.ErrCodeInvalidShape), "bad shape: %v", err)

	assert.Equal(t, 0, g.Len())
}

func TestIDsAreMonotonicAndNeverReused(t *testing.T) {
	g := New()
	a := mustVertex(t, g, 0, 0)
	b := mustVertex(t, g, 50, 0)
	require.NoError(t, g.RemoveElement(b))
	c := mustVertex(t, g, 100, 0)

	assert.Equal(t, ID(1), a.ID())
	assert.Equal(t, ID(2), b.ID())
	assert.Equal(t, ID(3), c.ID(), "removed id must not be reused")
}

func TestCreateEdgeRegistersBackReferences(t *testing.T) {
	g := New()
	a := mustVertex(t, g, 0, 0)
	b := mustVertex(t, g, 100, 0)
	e := mustEdge(t, g, a, b)

	assert.Equal(t, a.ID(), e.Origin())
	assert.Equal(t, b.ID(), e.Destination())
	assert.Equal(t, []ID{e.ID()}, a.Edges())
	assert.Equal(t, []ID{e.ID()}, b.Edges())
	assert.False(t, e.IsVertex())
	require.NoError(t, g.Validate())
}

func TestCreateEdgeRequiresMembers(t *testing.T) {
	g := New()
	other := New()
	a := mustVertex(t, g, 0, 0)
	stranger := mustVertex(t, other, 0, 0)

	_, err := g.CreateEdge(Black, a, stranger, 1)
	assert.True(t, gerrors.Is(err, gerrors.ErrCodeNotFound), "foreign destination: %v", err)

	_, err = g.CreateEdge(Black, nil, a, 1)
	assert.True(t, gerrors.Is(err, gerrors.ErrCodeNotFound), "nil origin: %v", err)

	_, err = g.CreateEdge(Black, a, a, 0)
	assert.True(t, gerrors.Is(err, gerrors.ErrCodeInvalidInput), "zero thickness: %v", err)

	assert.Empty(t, a.Edges())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestElementsKeepInsertionOrder(t *testing.T) {
	g := New()
	a := mustVertex(t, g, 0, 0)
	b := mustVertex(t, g, 50, 0)
	e := mustEdge(t, g, a, b)
	c := mustVertex(t, g, 100, 0)

	var ids []ID
	for _, el := range g.Elements() {
		ids = append(ids, el.ID())
	}
	assert.Equal(t, []ID{a.ID(), b.ID(), e.ID(), c.ID()}, ids)
	assert.Equal(t, []*Vertex{a, b, c}, g.Vertices())
	assert.Equal(t, []*Edge{e}, g.Edges())
	assert.Equal(t, 2, g.IndexOf(c))
	assert.Equal(t, -1, g.IndexOf(&Vertex{}))
}

func TestRemoveVertexCascades(t *testing.T) {
	g := New()
	a := mustVertex(t, g, 0, 0)
	b := mustVertex(t, g, 50, 0)
	c := mustVertex(t, g, 100, 0)
	ab := mustEdge(t, g, a, b)
	bc := mustEdge(t, g, b, c)
	ca := mustEdge(t, g, c, a)

	edgesBefore := g.EdgeCount()
	degree := len(g.IncidentEdges(b))
	require.NoError(t, g.RemoveElement(b))

	assert.Equal(t, edgesBefore-degree, g.EdgeCount())
	_, ok := g.Lookup(ab.ID())
	assert.False(t, ok, "edge a-b should be gone")
	_, ok = g.Lookup(bc.ID())
	assert.False(t, ok, "edge b-c should be gone")
	_, ok = g.Lookup(ca.ID())
	assert.True(t, ok, "edge c-a is not incident to b")

	assert.Equal(t, []ID{ca.ID()}, a.Edges())
	assert.Equal(t, []ID{ca.ID()}, c.Edges())
	require.NoError(t, g.Validate())
}

func TestRemoveEdgeCleansEndpoints(t *testing.T) {
	g := New()
	a := mustVertex(t, g, 0, 0)
	b := mustVertex(t, g, 50, 0)
	e := mustEdge(t, g, a, b)

	require.NoError(t, g.RemoveElement(e))
	assert.Empty(t, a.Edges())
	assert.Empty(t, b.Edges())
	assert.Equal(t, 2, g.VertexCount())
}

func TestRemoveSelfLoop(t *testing.T) {
	g := New()
	a := mustVertex(t, g, 0, 0)
	loop := mustEdge(t, g, a, a)

	assert.True(t, loop.IsLoop())
	assert.Equal(t, 2, a.Degree())
	assert.Len(t, g.IncidentEdges(a), 1)

	require.NoError(t, g.RemoveElement(a))
	assert.Equal(t, 0, g.Len())
}

func TestRemoveNonMemberIsNotFound(t *testing.T) {
	g := New()
	a := mustVertex(t, g, 0, 0)
	require.NoError(t, g.RemoveElement(a))

	err := g.RemoveElement(a)
	assert.True(t, gerrors.Is(err, gerrors.ErrCodeNotFound), "second removal: %v", err)

	err = g.RemoveElement(nil)
	assert.True(t, gerrors.Is(err, gerrors.ErrCodeNotFound), "nil: %v", err)

	var nilVertex *Vertex
	err = g.RemoveElement(nilVertex)
	assert.True(t, gerrors.Is(err, gerrors.ErrCodeNotFound), "typed nil: %v", err)
}

func TestRemoveElementsBatch(t *testing.T) {
	g := New()
	a := mustVertex(t, g, 0, 0)
	b := mustVertex(t, g, 50, 0)
	c := mustVertex(t, g, 100, 0)
	ab := mustEdge(t, g, a, b)
	mustEdge(t, g, b, c)

	notified := 0
	g.Subscribe(func([]Element) { notified++ })

	// ab is cascaded by a before its own turn comes.
	require.NoError(t, g.RemoveElements([]Element{a, ab}))
	assert.Equal(t, 1, notified)
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	require.NoError(t, g.Validate())

	err := g.RemoveElements([]Element{c, a})
	assert.True(t, gerrors.Is(err, gerrors.ErrCodeNotFound))
	assert.Equal(t, 2, g.VertexCount(), "failed batch must not remove anything")
}

func TestMoveVertex(t *testing.T) {
	g := New()
	a := mustVertex(t, g, 10, 10)

	require.NoError(t, g.MoveVertex(a, Pt(50, 60)))
	assert.Equal(t, Pt(50, 60), a.Position)

	stranger := &Vertex{}
	err := g.MoveVertex(stranger, Pt(1, 1))
	assert.True(t, gerrors.Is(err, gerrors.ErrCodeNotFound))
}

func TestMoveVerticesTranslates(t *testing.T) {
	g := New()
	a := mustVertex(t, g, 10, 10)
	b := mustVertex(t, g, -5, 40)

	require.NoError(t, g.MoveVertices([]*Vertex{a, b, a}, 3, -4))
	assert.Equal(t, Pt(13, 6), a.Position, "duplicates move once")
	assert.Equal(t, Pt(-2, 36), b.Position)

	err := g.MoveVertices([]*Vertex{a, {}}, 1, 1)
	assert.True(t, gerrors.Is(err, gerrors.ErrCodeNotFound))
	assert.Equal(t, Pt(13, 6), a.Position, "failed move must not translate members")
}

func TestLookup(t *testing.T) {
	g := New()
	a := mustVertex(t, g, 0, 0)
	b := mustVertex(t, g, 50, 0)
	e := mustEdge(t, g, a, b)

	got, ok := g.Lookup(a.ID())
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = g.Lookup(999)
	assert.False(t, ok)

	_, ok = g.Vertex(e.ID())
	assert.False(t, ok, "edge id is not a vertex")
	gotEdge, ok := g.Edge(e.ID())
	require.True(t, ok)
	assert.Same(t, e, gotEdge)
}

func TestPlaceVertex(t *testing.T) {
	g := New(WithDefaults(Defaults{
		Color: Green, SelectedColor: Blue, Size: 10, Thickness: 1, SelectedThickness: 2, Shape: ShapeCross,
	}))

	v, err := g.PlaceVertex(Pt(100, 100))
	require.NoError(t, err)
	assert.Equal(t, Pt(95, 95), v.Position)
	assert.Equal(t, Green, v.Color)
	assert.Equal(t, ShapeCross, v.Shape)

	_, err = g.PlaceVertex(Pt(102, 98))
	assert.True(t, gerrors.Is(err, gerrors.ErrCodeConflict), "overlapping placement: %v", err)

	_, err = g.PlaceVertex(Pt(200, 200))
	assert.NoError(t, err)
}

func TestDefaults(t *testing.T) {
	g := New(WithDefaults(Defaults{Size: -1}))
	assert.Equal(t, StandardDefaults(), g.Defaults(), "invalid defaults are ignored")

	err := g.SetDefaults(Defaults{Size: 4, Thickness: 0, SelectedThickness: 1})
	assert.True(t, gerrors.Is(err, gerrors.ErrCodeInvalidInput))
}

func TestObserversNotifiedOncePerMutation(t *testing.T) {
	g := New()
	var calls []int
	cancel := g.Subscribe(func(elements []Element) { calls = append(calls, len(elements)) })

	a := mustVertex(t, g, 0, 0)
	b := mustVertex(t, g, 50, 0)
	e := mustEdge(t, g, a, b)
	require.NoError(t, g.MoveVertex(a, Pt(5, 5)))
	require.NoError(t, g.MoveVertices([]*Vertex{a, b}, 1, 1))
	require.NoError(t, g.RemoveElement(e))
	g.MarkChanged()

	assert.Equal(t, []int{1, 2, 3, 3, 3, 2, 2}, calls)

	cancel()
	mustVertex(t, g, 100, 0)
	assert.Len(t, calls, 7, "cancelled observer must not be called")
}

func TestFailedMutationDoesNotNotify(t *testing.T) {
	g := New()
	calls := 0
	g.Subscribe(func([]Element) { calls++ })

	_, _ = g.CreateVertex(Black, Pt(0, 0), -1, ShapeSquare)
	_ = g.RemoveElement(&Vertex{})
	assert.Equal(t, 0, calls)
}

func TestCloseTearsDownObservers(t *testing.T) {
	g := New()
	calls := 0
	g.Subscribe(func([]Element) { calls++ })
	g.Close()

	mustVertex(t, g, 0, 0)
	g.Subscribe(func([]Element) { calls++ })
	mustVertex(t, g, 50, 0)
	assert.Equal(t, 0, calls)
}

func TestReferentialIntegrityUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	g := New()

	for step := 0; step < 500; step++ {
		vertices := g.Vertices()
		switch op := rng.IntN(4); {
		case op == 0 || len(vertices) < 2:
			mustVertex(t, g, rng.IntN(500), rng.IntN(500))
		case op == 1:
			a := vertices[rng.IntN(len(vertices))]
			b := vertices[rng.IntN(len(vertices))]
			mustEdge(t, g, a, b)
		case op == 2:
			victim := vertices[rng.IntN(len(vertices))]
			edges, degree := g.EdgeCount(), len(g.IncidentEdges(victim))
			require.NoError(t, g.RemoveElement(victim))
			require.Equal(t, edges-degree, g.EdgeCount(), "step %d", step)
		default:
			if edges := g.Edges(); len(edges) > 0 {
				require.NoError(t, g.RemoveElement(edges[rng.IntN(len(edges))]))
			}
		}

		require.NoError(t, g.Validate(), "step %d", step)
		for _, e := range g.Edges() {
			_, okO := g.Vertex(e.Origin())
			_, okD := g.Vertex(e.Destination())
			require.True(t, okO && okD, "step %d: edge %d has a missing endpoint", step, e.ID())
		}
	}
}
