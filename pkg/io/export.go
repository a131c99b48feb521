package io

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	gerrors "github.com/matzehuels/graphedit/pkg/errors"
	"github.com/matzehuels/graphedit/pkg/graph"
	"github.com/matzehuels/graphedit/pkg/observability"
)

// Export formats.
const (
	FormatXML  = "xml"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// Formats lists every format accepted by [Write] and [Export].
var Formats = []string{FormatXML, FormatJSON, FormatDOT, FormatSVG}

type document struct {
	Name     string       `json:"name,omitempty"`
	ID       string       `json:"id,omitempty"`
	Vertices []vertexJSON `json:"vertices"`
	Edges    []edgeJSON   `json:"edges"`
}

type vertexJSON struct {
	ID    graph.ID `json:"id"`
	Label string   `json:"label,omitempty"`
	Color string   `json:"color"`
	X     int      `json:"x"`
	Y     int      `json:"y"`
	Size  int      `json:"size"`
	Shape string   `json:"shape"`
	Value int      `json:"value,omitempty"`
}

type edgeJSON struct {
	ID        graph.ID `json:"id"`
	From      graph.ID `json:"from"`
	To        graph.ID `json:"to"`
	Label     string   `json:"label,omitempty"`
	Color     string   `json:"color"`
	Thickness int      `json:"thickness"`
}

// WriteJSON encodes g as an indented JSON document and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(g *graph.Graph, w io.Writer) error {
	return emit(FormatJSON, w, func(buf *bytes.Buffer) error {
		return encodeJSON(g, buf)
	})
}

// ExportJSON writes g as JSON to the file at path.
func ExportJSON(g *graph.Graph, path string) error {
	return writeFile(path, func(w io.Writer) error { return WriteJSON(g, w) })
}

func encodeJSON(g *graph.Graph, w io.Writer) error {
	out := document{
		Name:     g.Name(),
		ID:       g.DocumentID().String(),
		Vertices: make([]vertexJSON, 0, g.VertexCount()),
		Edges:    make([]edgeJSON, 0, g.EdgeCount()),
	}
	for _, v := range g.Vertices() {
		out.Vertices = append(out.Vertices, vertexJSON{
			ID:    v.ID(),
			Label: v.Label,
			Color: v.Color.Hex(),
			X:     v.Position.X,
			Y:     v.Position.Y,
			Size:  v.Size,
			Shape: v.Shape.String(),
			Value: v.Value,
		})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edgeJSON{
			ID:        e.ID(),
			From:      e.Origin(),
			To:        e.Destination(),
			Label:     e.Label,
			Color:     e.Color.Hex(),
			Thickness: e.Thickness,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return gerrors.Wrap(gerrors.ErrCodeIO, err, "encode")
	}
	return nil
}

// Write encodes g in format and writes it to w. Options apply to the DOT
// and SVG formats only.
func Write(ctx context.Context, g *graph.Graph, format string, w io.Writer, opts DOTOptions) error {
	format = strings.ToLower(format)
	if err := gerrors.ValidateFormat(format, Formats); err != nil {
		return err
	}
	switch format {
	case FormatXML:
		return WriteXML(g, w)
	case FormatJSON:
		return WriteJSON(g, w)
	case FormatDOT:
		return WriteDOT(g, w, opts)
	default:
		return WriteSVG(ctx, g, w, opts)
	}
}

// Export writes g in format to the file at path.
func Export(ctx context.Context, g *graph.Graph, format, path string, opts DOTOptions) error {
	if err := gerrors.ValidateFormat(strings.ToLower(format), Formats); err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error { return Write(ctx, g, format, w, opts) })
}

// emit encodes into a buffer, copies it to w and reports the attempt.
// Nothing reaches w when encoding fails.
func emit(format string, w io.Writer, encode func(*bytes.Buffer) error) error {
	start := time.Now()
	var buf bytes.Buffer
	err := encode(&buf)
	n := 0
	if err == nil {
		n, err = w.Write(buf.Bytes())
		if err != nil {
			err = gerrors.Wrap(gerrors.ErrCodeIO, err, "write %s", format)
		}
	}
	observability.Export().OnExport(format, n, time.Since(start), err)
	return err
}

// writeFile runs write against a temporary file next to path and renames
// it over path once everything is written. A failed write leaves any
// existing file at path untouched.
func writeFile(path string, write func(io.Writer) error) error {
	if err := gerrors.ValidateOutputPath(path); err != nil {
		return err
	}
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return gerrors.Wrap(gerrors.ErrCodeIO, err, "create %s", path)
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op after a successful rename

	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		f.Close()
		return gerrors.Wrap(gerrors.ErrCodeIO, err, "chmod %s", path)
	}
	if err := f.Close(); err != nil {
		return gerrors.Wrap(gerrors.ErrCodeIO, err, "close %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		return gerrors.Wrap(gerrors.ErrCodeIO, err, "replace %s", path)
	}
	return nil
}
