package edit

import (
	"strings"

	"github.com/matzehuels/graphedit/pkg/graph"
)

// Field identifies one editable vertex attribute.
type Field uint8

const (
	FieldColor Field = 1 << iota
	FieldLabel
	FieldSize
	FieldShape
	FieldPosition

	// FieldAll is the mask of a full capture.
	FieldAll = FieldColor | FieldLabel | FieldSize | FieldShape | FieldPosition
)

var fieldNames = []struct {
	f    Field
	name string
}{
	{FieldColor, "color"},
	{FieldLabel, "label"},
	{FieldSize, "size"},
	{FieldShape, "shape"},
	{FieldPosition, "position"},
}

// String lists the set fields joined by "|", or "none".
func (f Field) String() string {
	var parts []string
	for _, fn := range fieldNames {
		if f&fn.f != 0 {
			parts = append(parts, fn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Snapshot is a record of vertex attributes. Only the fields reported by
// [Snapshot.Has] carry meaning, so zero values such as an empty label or the
// origin position can be set explicitly.
type Snapshot struct {
	ID    graph.ID // Target vertex; zero for an after snapshot built with Change
	Index int      // Vertex index at capture time, -1 if unknown

	Color    graph.Color
	Label    string
	Size     int
	Shape    graph.Shape
	Position graph.Point

	fields Field
}

// Capture records every editable field of v.
func Capture(g *graph.Graph, v *graph.Vertex) Snapshot {
	return Snapshot{
		ID:       v.ID(),
		Index:    g.IndexOf(v),
		Color:    v.Color,
		Label:    v.Label,
		Size:     v.Size,
		Shape:    v.Shape,
		Position: v.Position,
		fields:   FieldAll,
	}
}

// Change returns an empty snapshot for use as the after state of an edit.
func Change() Snapshot { return Snapshot{Index: -1} }

func (s Snapshot) WithColor(c graph.Color) Snapshot {
	s.Color = c
	s.fields |= FieldColor
	return s
}

func (s Snapshot) WithLabel(label string) Snapshot {
	s.Label = label
	s.fields |= FieldLabel
	return s
}

func (s Snapshot) WithSize(size int) Snapshot {
	s.Size = size
	s.fields |= FieldSize
	return s
}

func (s Snapshot) WithShape(shape graph.Shape) Snapshot {
	s.Shape = shape
	s.fields |= FieldShape
	return s
}

func (s Snapshot) WithPosition(p graph.Point) Snapshot {
	s.Position = p
	s.fields |= FieldPosition
	return s
}

// Has reports whether every field in f is present.
func (s Snapshot) Has(f Field) bool { return s.fields&f == f }

// Fields returns the presence mask.
func (s Snapshot) Fields() Field { return s.fields }

// Full reports whether s was produced by Capture.
func (s Snapshot) Full() bool { return s.Has(FieldAll) }

// applyTo writes the present fields of s that are also in mask onto v.
func (s Snapshot) applyTo(v *graph.Vertex, mask Field) {
	f := s.fields & mask
	if f&FieldColor != 0 {
		v.Color = s.Color
	}
	if f&FieldLabel != 0 {
		v.Label = s.Label
	}
	if f&FieldSize != 0 {
		v.Size = s.Size
	}
	if f&FieldShape != 0 {
		v.Shape = s.Shape
	}
	if f&FieldPosition != 0 {
		v.Position = s.Position
	}
}
