// Package io reads and writes graphs in JSON, and exports them as XML, DOT
// and SVG.
//
// # JSON Format
//
// JSON is the editable document format. It round-trips every vertex and edge
// attribute:
//
//	{
//	  "name": "demo",
//	  "id": "6f1c2a9e-0d6b-4a8e-9c55-3b1f0e7d2a41",
//	  "vertices": [
//	    {"id": 1, "label": "A", "color": "#000000", "x": 10, "y": 10, "size": 20, "shape": "square"},
//	    {"id": 2, "color": "#000000", "x": 100, "y": 10, "size": 20, "shape": "circle"}
//	  ],
//	  "edges": [
//	    {"id": 3, "from": 1, "to": 2, "color": "#000000", "thickness": 1}
//	  ]
//	}
//
// Vertex and edge ids only link edges to vertices inside one document. On
// import every element gets a fresh id from the new graph, and edges are
// rebuilt through [graph.Graph.CreateEdge] so referential integrity holds.
// The document "id" becomes the graph's [graph.Graph.DocumentID]; a new one
// is generated when it is missing.
//
// # XML Export
//
// [WriteXML] emits one <vertex> element per vertex under a <Vertexes> root,
// with the labels of its incident edges:
//
//	<Vertexes>
//	  <vertex>
//	    <name>A</name>
//	    <color>#000000</color>
//	    <thickness>20</thickness>
//	    <positionX>10</positionX>
//	    <positionY>10</positionY>
//	    <shape>square</shape>
//	    <edges>
//	      <edge>a-b</edge>
//	    </edges>
//	  </vertex>
//	</Vertexes>
//
// The thickness element carries the vertex size. There is no XML import.
//
// # DOT and SVG
//
// [ToDOT] converts a graph to Graphviz DOT with every vertex pinned at its
// canvas position, and [RenderSVG] renders DOT to SVG through Graphviz.
//
// # Errors
//
// Decoding failures are INVALID_FORMAT errors, invalid attribute values keep
// their validation code (INVALID_COLOR, INVALID_SHAPE, INVALID_INPUT), and
// write or render failures are IO_ERROR errors. Every export attempt is
// reported to [observability.Export].
//
// [graph.Graph.CreateEdge]: github.com/matzehuels/graphedit/pkg/graph#Graph.CreateEdge
// [graph.Graph.DocumentID]: github.com/matzehuels/graphedit/pkg/graph#Graph.DocumentID
// [observability.Export]: github.com/matzehuels/graphedit/pkg/observability#Export
package io
