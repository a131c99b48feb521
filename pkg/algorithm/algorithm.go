package algorithm

import (
	"fmt"
	"strings"

	gerrors "github.com/matzehuels/graphedit/pkg/errors"
	"github.com/matzehuels/graphedit/pkg/graph"
)

// Algorithm is a pass over every vertex of a graph.
type Algorithm interface {
	Name() string
	Apply(g *graph.Graph) error
}

// Property selects the vertex metric a pass reads.
type Property int

const (
	PropertyRandom Property = iota
	PropertyDegree
	PropertySize
	PropertyValue
)

var propertyNames = [...]string{"random", "degree", "size", "value"}

func (p Property) String() string {
	if p < PropertyRandom || p > PropertyValue {
		return "unknown"
	}
	return propertyNames[p]
}

// ParseProperty parses a property name case-insensitively.
func ParseProperty(name string) (Property, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range propertyNames {
		if s == n {
			return Property(i), nil
		}
	}
	return 0, gerrors.New(gerrors.ErrCodeInvalidInput, "unknown property %q (must be random, degree, size or value)", name)
}

// metric reads a deterministic vertex property.
func metric(v *graph.Vertex, p Property) int {
	switch p {
	case PropertyDegree:
		return v.Degree()
	case PropertySize:
		return v.Size
	default:
		return v.Value
	}
}

// Run applies passes in order and stops at the first error.
func Run(g *graph.Graph, passes ...Algorithm) error {
	for _, a := range passes {
		if err := a.Apply(g); err != nil {
			return fmt.Errorf("%s: %w", a.Name(), err)
		}
	}
	return nil
}
