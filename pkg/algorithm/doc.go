// Package algorithm provides whole-graph passes that derive vertex attributes.
//
// Every pass implements [Algorithm]. [ValuePass] writes [graph.Vertex.Value]
// from a random draw, the vertex degree or the vertex size. [Coloring] maps a
// vertex metric onto a linear color ramp:
//
//	_ = algorithm.ValuePass{Property: algorithm.PropertyDegree}.Apply(g)
//	_ = algorithm.Coloring{
//	    Property: algorithm.PropertyValue,
//	    Min:      graph.Blue,
//	    Max:      graph.Red,
//	}.Apply(g)
//
// A pass notifies the graph's observers once, after all vertices are updated.
//
// [graph.Vertex.Value]: github.com/matzehuels/graphedit/pkg/graph#Vertex
package algorithm
