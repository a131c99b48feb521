// Package pkg provides the core libraries of graphedit, a vertex/edge
// drawing editor with undoable edits.
//
// # Overview
//
// A drawing is a [graph] of positioned, styled vertices joined by edges.
// The pkg directory is organized into four main areas:
//
//  1. [graph] - Element model: vertices, edges, selection, copy/paste
//  2. [edit] - Undoable vertex edits and the undo/redo history
//  3. [algorithm] - Passes that derive vertex values and colors
//  4. [io] - JSON import/export plus XML, DOT and SVG export
//
// Supporting packages:
//
//   - [config]: TOML configuration for defaults, history depth and export format
//   - [errors]: Coded errors shared by every package
//   - [observability]: Hooks for element, history and export events
//   - [buildinfo]: Version stamps
//
// # Architecture
//
// The typical data flow through graphedit:
//
//	JSON document
//	     ↓
//	[io] package (import)
//	     ↓
//	[graph] package (mutate, select, paste)  ←  [edit] package (undo/redo)
//	     ↓                                    ←  [algorithm] package (value, color)
//	[io] package (export)
//	     ↓
//	XML/JSON/DOT/SVG output
//
// # Quick Start
//
// Load a drawing, move a vertex with undo support and export it:
//
//	g, _ := io.ImportJSON("drawing.json")
//	h := edit.NewHistory(0)
//
//	move, _ := edit.Move(g, g.Vertices()[:1], 10, 0)
//	h.Record(move)
//	_ = h.Undo()
//
//	_ = algorithm.Run(g,
//	    algorithm.ValuePass{Property: algorithm.PropertyDegree},
//	    algorithm.Coloring{Property: algorithm.PropertyValue, Min: graph.Blue, Max: graph.RGB(255, 0, 0)},
//	)
//	_ = io.Export(ctx, g, io.FormatSVG, "drawing.svg", io.DOTOptions{})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/edit/...     # Specific package
//	go test -run Example ./... # Examples only
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/graphedit/pkg/graph
// [edit]: https://pkg.go.dev/github.com/matzehuels/graphedit/pkg/edit
// [algorithm]: https://pkg.go.dev/github.com/matzehuels/graphedit/pkg/algorithm
// [io]: https://pkg.go.dev/github.com/matzehuels/graphedit/pkg/io
// [config]: https://pkg.go.dev/github.com/matzehuels/graphedit/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/graphedit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/graphedit/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/graphedit/pkg/buildinfo
package pkg
