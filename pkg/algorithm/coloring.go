package algorithm

import (
	gerrors "github.com/matzehuels/graphedit/pkg/errors"
	"github.com/matzehuels/graphedit/pkg/graph"
)

// Coloring colors every vertex by linear interpolation between Min and Max
// over the range of Property, which must be PropertySize, PropertyDegree or
// PropertyValue. Vertices holding the largest metric get exactly Max and
// those holding the smallest get exactly Min; Max wins when all are equal.
type Coloring struct {
	Property Property
	Min, Max graph.Color
}

func (c Coloring) Name() string { return "color:" + c.Property.String() }

func (c Coloring) Apply(g *graph.Graph) error {
	switch c.Property {
	case PropertySize, PropertyDegree, PropertyValue:
	default:
		return gerrors.New(gerrors.ErrCodeInvalidInput, "coloring cannot use property %s", c.Property)
	}

	vertices := g.Vertices()
	if len(vertices) == 0 {
		g.MarkChanged()
		return nil
	}

	lo, hi := metric(vertices[0], c.Property), metric(vertices[0], c.Property)
	for _, v := range vertices[1:] {
		m := metric(v, c.Property)
		lo, hi = min(lo, m), max(hi, m)
	}

	for _, v := range vertices {
		v.Color = c.at(metric(v, c.Property), lo, hi)
	}
	g.MarkChanged()
	return nil
}

// at returns the ramp color for metric m within [lo, hi].
func (c Coloring) at(m, lo, hi int) graph.Color {
	switch m {
	case hi:
		return c.Max
	case lo:
		return c.Min
	}
	coef := max(hi-lo, 1)
	return graph.RGB(
		channel(c.Min.R, c.Max.R, m-lo, coef),
		channel(c.Min.G, c.Max.G, m-lo, coef),
		channel(c.Min.B, c.Max.B, m-lo, coef),
	)
}

func channel(from, to uint8, step, coef int) uint8 {
	v := int(from) + (int(to)-int(from))*step/coef
	return uint8(max(0, min(v, 255)))
}
