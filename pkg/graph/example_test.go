package graph_test

import (
	"fmt"

	"github.com/matzehuels/graphedit/pkg/graph"
)

func Example() {
	g := graph.New(graph.WithName("demo"))

	a, _ := g.CreateVertex(graph.Black, graph.Pt(10, 10), 20, graph.ShapeSquare)
	b, _ := g.CreateVertex(graph.Black, graph.Pt(100, 10), 20, graph.ShapeCircle)
	_, _ = g.CreateEdge(graph.Black, a, b, 1)

	fmt.Println(g.VertexCount(), "vertices,", g.EdgeCount(), "edge")

	_ = g.RemoveElement(b)
	fmt.Println(g.VertexCount(), "vertex,", g.EdgeCount(), "edges")
	// Output:
	// 2 vertices, 1 edge
	// 1 vertex, 0 edges
}

func ExampleGraph_CopyCentered() {
	g := graph.New()
	a, _ := g.CreateVertex(graph.Black, graph.Pt(0, 0), 10, graph.ShapeSquare)
	b, _ := g.CreateVertex(graph.Black, graph.Pt(40, 20), 10, graph.ShapeSquare)
	e, _ := g.CreateEdge(graph.Black, a, b, 1)

	copies, _ := g.CopyCentered([]graph.Element{a, b, e}, graph.Pt(100, 100))
	_ = g.AddElements(copies)

	for _, el := range copies {
		switch el := el.(type) {
		case *graph.Vertex:
			fmt.Println("vertex", el.ID(), "at", el.Position)
		case *graph.Edge:
			fmt.Println("edge", el.ID(), el.Origin(), "->", el.Destination())
		}
	}
	// Output:
	// vertex 4 at (80,90)
	// vertex 5 at (120,110)
	// edge 6 4 -> 5
}

func ExampleGraph_Subscribe() {
	g := graph.New()
	cancel := g.Subscribe(func(elements []graph.Element) {
		fmt.Println("changed:", len(elements), "elements")
	})
	defer cancel()

	v, _ := g.CreateVertex(graph.Red, graph.Pt(0, 0), 10, graph.ShapeCross)
	_ = g.MoveVertex(v, graph.Pt(5, 5))
	// Output:
	// changed: 1 elements
	// changed: 1 elements
}
