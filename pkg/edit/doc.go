// Package edit records reversible changes to vertices of a [graph.Graph].
//
// # Snapshots
//
// A [Snapshot] holds the editable attributes of one vertex: color, label,
// size, shape and position. [Capture] records all five fields of a live
// vertex. [Change] starts an empty snapshot that names only the fields an
// edit sets:
//
//	after := edit.Change().WithPosition(graph.Pt(50, 50))
//
// Snapshots address vertices by [graph.ID], so an edit stays valid when
// other elements are inserted or removed between capture and replay.
//
// # Vertex Edits
//
// A [VertexEdit] pairs full before snapshots of one or more vertices with a
// single partial after snapshot:
//
//	before := []edit.Snapshot{edit.Capture(g, v)}
//	_ = g.MoveVertex(v, graph.Pt(50, 50))
//	e, _ := edit.NewVertexEdit(g, before, edit.Change().WithPosition(v.Position))
//
//	_ = e.Undo() // v back at its captured position
//	_ = e.Redo() // v at (50, 50) again
//
// Undo restores every captured field. Redo applies only the fields present
// in the after snapshot, so attributes changed after capture by other means
// survive a redo but not an undo. Each call notifies graph observers once.
//
// [Modify] captures, applies and returns an edit in one step. [Move] builds a
// [Group] of per-vertex position edits for a relative translation.
//
// # History
//
// [History] is a bounded undo/redo stack:
//
//	h := edit.NewHistory(100)
//	h.Record(e)
//	if h.CanUndo() {
//	    _ = h.Undo()
//	}
//
// Recording clears the redo stack. When the limit is reached the oldest edit
// is dropped.
//
// [graph.Graph]: github.com/matzehuels/graphedit/pkg/graph
package edit
