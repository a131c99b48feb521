package io

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-graphviz"

	gerrors "github.com/matzehuels/graphedit/pkg/errors"
	"github.com/matzehuels/graphedit/pkg/graph"
)

// DOTOptions configures DOT and SVG output.
type DOTOptions struct {
	// Selection, when set, draws selected elements with the graph's selected
	// color and thickness.
	Selection *graph.Selection
}

var dotShapes = map[graph.Shape]string{
	graph.ShapeSquare:   "square",
	graph.ShapeCircle:   "circle",
	graph.ShapeTriangle: "triangle",
	graph.ShapeCross:    "Msquare",
}

// ToDOT converts g to Graphviz DOT. Vertices are pinned at their canvas
// centers (y pointing down, as on the canvas) and drawn at their size in
// points, so neato reproduces the canvas layout.
func ToDOT(g *graph.Graph, opts DOTOptions) string {
	d := g.Defaults()
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=filled, fixedsize=true, fontsize=10];\n")
	if name := g.Name(); name != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", name)
	}
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		c := v.Center()
		outline, pen := v.Color, 1
		if selected(opts, v) {
			outline, pen = d.SelectedColor, d.SelectedThickness
		}
		attrs := []string{
			fmt.Sprintf("label=%q", v.Label),
			fmt.Sprintf("shape=%s", dotShapes[v.Shape]),
			fmt.Sprintf("width=%.3f", float64(v.Size)/72),
			fmt.Sprintf("pos=\"%d,%d!\"", c.X, -c.Y),
			fmt.Sprintf("fillcolor=%q", v.Color.Hex()),
			fmt.Sprintf("color=%q", outline.Hex()),
			fmt.Sprintf("penwidth=%d", pen),
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(v.ID()), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		color, pen := e.Color, e.Thickness
		if selected(opts, e) {
			color, pen = d.SelectedColor, d.SelectedThickness
		}
		attrs := []string{
			fmt.Sprintf("color=%q", color.Hex()),
			fmt.Sprintf("penwidth=%d", pen),
		}
		if e.Label != "" {
			attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
		}
		fmt.Fprintf(&buf, "  %s -> %s [%s];\n", nodeID(e.Origin()), nodeID(e.Destination()), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(id graph.ID) string { return fmt.Sprintf("v%d", id) }

func selected(opts DOTOptions, e graph.Element) bool {
	return opts.Selection != nil && opts.Selection.Contains(e)
}

// WriteDOT writes the DOT source for g to w.
func WriteDOT(g *graph.Graph, w io.Writer, opts DOTOptions) error {
	return emit(FormatDOT, w, func(buf *bytes.Buffer) error {
		buf.WriteString(ToDOT(g, opts))
		return nil
	})
}

// RenderSVG renders a DOT graph to SVG using the Graphviz neato engine, which
// keeps pinned node positions.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, gerrors.Wrap(gerrors.ErrCodeIO, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, gerrors.Wrap(gerrors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, gerrors.Wrap(gerrors.ErrCodeIO, err, "render")
	}
	return buf.Bytes(), nil
}

// WriteSVG renders g through [ToDOT] and [RenderSVG] and writes the SVG to w.
func WriteSVG(ctx context.Context, g *graph.Graph, w io.Writer, opts DOTOptions) error {
	return emit(FormatSVG, w, func(buf *bytes.Buffer) error {
		svg, err := RenderSVG(ctx, ToDOT(g, opts))
		if err != nil {
			return err
		}
		buf.Write(svg)
		return nil
	})
}
