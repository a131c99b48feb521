// Package graph provides the element model of the graph editor: vertices,
// edges, and the Graph that owns them.
//
// # Overview
//
// A [Graph] is the single owner and mutation authority for its elements. It
// stores vertices and edges in one arena keyed by [ID], plus an insertion-order
// list. Vertices and edges refer to each other only by id: an [Edge] holds the
// ids of its endpoints and a [Vertex] holds the ids of its incident edges. Only
// the Graph mutates those back-references, so cascading deletes stay
// consistent.
//
// # Basic Usage
//
//	g := graph.New(graph.WithName("demo"))
//	a, _ := g.CreateVertex(graph.Black, graph.Pt(10, 10), 20, graph.ShapeSquare)
//	b, _ := g.CreateVertex(graph.Black, graph.Pt(100, 10), 20, graph.ShapeCircle)
//	e, _ := g.CreateEdge(graph.Black, a, b, 1)
//
//	g.RemoveElement(a) // also removes e
//
// # Identity and Ordering
//
// Ids are allocated by the Graph from a monotonic counter starting at 1 and
// are never reused, even after removal. Element order is insertion order.
// [Graph.Vertices] returns vertices in that order, and no edit operation
// reorders elements, so the vertex list is stable across edit, undo and redo.
//
// # Change Notification
//
// Every mutating Graph method triggers exactly one notification after the
// mutation is fully applied. Subscribers registered with [Graph.Subscribe]
// receive a snapshot of the full element list. Code that mutates exported
// vertex fields directly (algorithms, edits) calls [Graph.MarkChanged]
// afterwards. [Graph.Close] drops every subscriber.
//
// # Copy and Paste
//
// [Graph.Copy] and [Graph.CopyCentered] duplicate a list of elements into
// fresh, unregistered entities with ids from this graph, re-wiring copied
// edges to the copied vertices. [Graph.AddElements] inserts the result.
//
// # Concurrency
//
// A Graph is not safe for concurrent use. The editor drives it from a single
// goroutine.
package graph
