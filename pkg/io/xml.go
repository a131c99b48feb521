package io

import (
	"bytes"
	"encoding/xml"
	"io"

	gerrors "github.com/matzehuels/graphedit/pkg/errors"
	"github.com/matzehuels/graphedit/pkg/graph"
)

type xmlDocument struct {
	XMLName  xml.Name    `xml:"Vertexes"`
	Vertices []xmlVertex `xml:"vertex"`
}

type xmlVertex struct {
	Name      string   `xml:"name"`
	Color     string   `xml:"color"`
	Thickness int      `xml:"thickness"`
	PositionX int      `xml:"positionX"`
	PositionY int      `xml:"positionY"`
	Shape     string   `xml:"shape"`
	Edges     []string `xml:"edges>edge"`
}

// WriteXML writes the <Vertexes> document for g to w.
func WriteXML(g *graph.Graph, w io.Writer) error {
	return emit(FormatXML, w, func(buf *bytes.Buffer) error {
		doc := xmlDocument{Vertices: make([]xmlVertex, 0, g.VertexCount())}
		for _, v := range g.Vertices() {
			xv := xmlVertex{
				Name:      v.Label,
				Color:     v.Color.Hex(),
				Thickness: v.Size,
				PositionX: v.Position.X,
				PositionY: v.Position.Y,
				Shape:     v.Shape.String(),
			}
			for _, e := range g.IncidentEdges(v) {
				xv.Edges = append(xv.Edges, e.Label)
			}
			doc.Vertices = append(doc.Vertices, xv)
		}

		buf.WriteString(xml.Header)
		enc := xml.NewEncoder(buf)
		enc.Indent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return gerrors.Wrap(gerrors.ErrCodeIO, err, "encode xml")
		}
		buf.WriteByte('\n')
		return nil
	})
}

// ExportXML writes g as XML to the file at path.
func ExportXML(g *graph.Graph, path string) error {
	return writeFile(path, func(w io.Writer) error { return WriteXML(g, w) })
}
