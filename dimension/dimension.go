package dimension

import (
	"strconv"

	"github.com/arthur-debert/nanounits/types"
)

// Dimension is implemented by *Base, *Derived and *Named.
// The interface is sealed; other packages cannot add implementations.
type Dimension interface {
	// Kind reports whether this is a base, anonymous derived or named dimension
	Kind() types.DimensionKind

	// Terms returns a copy of the canonical term list
	Terms() []Term

	// String returns the name, or the formula for anonymous dimensions
	String() string

	canonical() []Term
	identity() string
}

// Derived is an anonymous product of base dimensions in canonical form.
// Values are only produced by the algebra; there is no public constructor.
type Derived struct {
	terms []Term
	key   string
}

// One is the dimensionless dimension, the identity of Multiply
var One = &Derived{}

// Kind returns types.Derived
func (d *Derived) Kind() types.DimensionKind { return types.Derived }

// Terms returns a copy of the canonical term list
func (d *Derived) Terms() []Term { return cloneTerms(d.terms) }

// String returns the formula in the default style, "1" for One
func (d *Derived) String() string {
	if len(d.terms) == 0 {
		return "1"
	}
	s, _ := Symbol(d, DefaultStyle)
	return s
}

func (d *Derived) canonical() []Term { return d.terms }

func (d *Derived) identity() string { return "d[" + d.key + "]" }

// Named is a dimension declared under its own name as a specialization of
// another dimension. It has the same formula as its parent but is a distinct
// dimension: frequency and action are both named over 1/T and are not
// interchangeable.
type Named struct {
	name   string
	parent Dimension
	terms  []Term
	seq    uint64
}

// NewNamed declares a named dimension specializing of.
// A nil of declares a named dimensionless dimension.
func NewNamed(name string, of Dimension) *Named {
	if of == nil {
		of = One
	}
	return &Named{
		name:   name,
		parent: of,
		terms:  of.canonical(),
		seq:    nextSeq(),
	}
}

// Name returns the declared name
func (n *Named) Name() string { return n.name }

// Parent returns the dimension this one specializes
func (n *Named) Parent() Dimension { return n.parent }

// Kind returns types.Named
func (n *Named) Kind() types.DimensionKind { return types.Named }

// Terms returns a copy of the flattened canonical term list
func (n *Named) Terms() []Term { return cloneTerms(n.terms) }

// String returns the declared name
func (n *Named) String() string { return n.name }

func (n *Named) canonical() []Term { return n.terms }

func (n *Named) identity() string { return "n" + strconv.FormatUint(n.seq, 10) }
