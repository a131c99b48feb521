package algorithm

import (
	"math/rand/v2"

	gerrors "github.com/matzehuels/graphedit/pkg/errors"
	"github.com/matzehuels/graphedit/pkg/graph"
)

// MaxRandomValue bounds values drawn by PropertyRandom: [0, MaxRandomValue).
const MaxRandomValue = 100

// ValuePass sets every vertex's Value from Property, which must be
// PropertyRandom, PropertyDegree or PropertySize.
type ValuePass struct {
	Property Property
	Rand     *rand.Rand // Source for PropertyRandom; nil uses the global source
}

func (p ValuePass) Name() string { return "value:" + p.Property.String() }

func (p ValuePass) Apply(g *graph.Graph) error {
	switch p.Property {
	case PropertyRandom, PropertyDegree, PropertySize:
	default:
		return gerrors.New(gerrors.ErrCodeInvalidInput, "value pass cannot use property %s", p.Property)
	}

	for _, v := range g.Vertices() {
		if p.Property == PropertyRandom {
			v.Value = p.intN(MaxRandomValue)
		} else {
			v.Value = metric(v, p.Property)
		}
	}
	g.MarkChanged()
	return nil
}

func (p ValuePass) intN(n int) int {
	if p.Rand != nil {
		return p.Rand.IntN(n)
	}
	return rand.IntN(n)
}
