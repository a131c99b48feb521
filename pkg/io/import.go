package io

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/google/uuid"

	gerrors "github.com/matzehuels/graphedit/pkg/errors"
	"github.com/matzehuels/graphedit/pkg/graph"
)

// ReadJSON decodes a JSON document from r into a new graph.
//
// ReadJSON returns an error if:
//   - The JSON is malformed (INVALID_FORMAT)
//   - The document id is not a UUID (INVALID_FORMAT)
//   - Two vertices share an id (CONFLICT)
//   - An edge references an unknown vertex id (NOT_FOUND)
//   - A color, shape, size, thickness or label is invalid
//
// Vertices without color, shape or size and edges without color or thickness
// take the graph defaults.
//
// Opts are applied before the document's name and id, so they only supply
// values the document leaves out, such as defaults. ReadJSON does not close r.
func ReadJSON(r io.Reader, opts ...graph.Option) (*graph.Graph, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, gerrors.Wrap(gerrors.ErrCodeInvalidFormat, err, "decode")
	}

	docID := uuid.New()
	if doc.ID != "" {
		parsed, err := uuid.Parse(doc.ID)
		if err != nil {
			return nil, gerrors.Wrap(gerrors.ErrCodeInvalidFormat, err, "document id %q", doc.ID)
		}
		docID = parsed
	}
	opts = append(opts, graph.WithName(doc.Name), graph.WithDocumentID(docID))
	g := graph.New(opts...)

	byID := make(map[graph.ID]*graph.Vertex, len(doc.Vertices))
	for _, jv := range doc.Vertices {
		if _, dup := byID[jv.ID]; dup {
			return nil, gerrors.New(gerrors.ErrCodeConflict, "vertex %d appears twice", jv.ID)
		}
		v, err := jv.create(g)
		if err != nil {
			return nil, gerrors.Wrap(gerrors.GetCode(err), err, "vertex %d", jv.ID)
		}
		byID[jv.ID] = v
	}

	for _, je := range doc.Edges {
		from, ok := byID[je.From]
		if !ok {
			return nil, gerrors.New(gerrors.ErrCodeNotFound, "edge %d: unknown origin %d", je.ID, je.From)
		}
		to, ok := byID[je.To]
		if !ok {
			return nil, gerrors.New(gerrors.ErrCodeNotFound, "edge %d: unknown destination %d", je.ID, je.To)
		}
		if err := je.create(g, from, to); err != nil {
			return nil, gerrors.Wrap(gerrors.GetCode(err), err, "edge %d", je.ID)
		}
	}

	return g, nil
}

// ImportJSON reads the JSON document at path. A missing file is a
// FILE_NOT_FOUND error; other open failures are IO_ERROR errors.
func ImportJSON(path string, opts ...graph.Option) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, gerrors.Wrap(gerrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, gerrors.Wrap(gerrors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f, opts...)
}

// create adds the vertex to g. Missing color, shape and size fall back to
// the graph defaults.
func (jv vertexJSON) create(g *graph.Graph) (*graph.Vertex, error) {
	d := g.Defaults()
	color, shape, size := d.Color, d.Shape, d.Size
	var err error
	if jv.Color != "" {
		if color, err = graph.ParseColor(jv.Color); err != nil {
			return nil, err
		}
	}
	if jv.Shape != "" {
		if shape, err = graph.ParseShape(jv.Shape); err != nil {
			return nil, err
		}
	}
	if jv.Size != 0 {
		size = jv.Size
	}
	if err := gerrors.ValidateLabel(jv.Label); err != nil {
		return nil, err
	}
	v, err := g.CreateVertex(color, graph.Pt(jv.X, jv.Y), size, shape)
	if err != nil {
		return nil, err
	}
	v.Label = jv.Label
	v.Value = jv.Value
	return v, nil
}

func (je edgeJSON) create(g *graph.Graph, from, to *graph.Vertex) error {
	d := g.Defaults()
	color, thickness := d.Color, d.Thickness
	var err error
	if je.Color != "" {
		if color, err = graph.ParseColor(je.Color); err != nil {
			return err
		}
	}
	if je.Thickness != 0 {
		thickness = je.Thickness
	}
	if err := gerrors.ValidateLabel(je.Label); err != nil {
		return err
	}
	e, err := g.CreateEdge(color, from, to, thickness)
	if err != nil {
		return err
	}
	e.Label = je.Label
	return nil
}
