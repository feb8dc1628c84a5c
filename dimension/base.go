package dimension

import (
	"strconv"
	"sync/atomic"

	"github.com/arthur-debert/nanounits/types"
)

// declarationSeq hands out declaration numbers to bases and named dimensions.
// It is the secondary sort key for bases that share a label.
var declarationSeq atomic.Uint64

func nextSeq() uint64 {
	return declarationSeq.Add(1)
}

// Base is an atomic physical dimension such as length or time
type Base struct {
	name   string
	label  types.Label
	system string
	seq    uint64
	terms  []Term
}

// BaseOption configures a Base at declaration
type BaseOption func(*Base)

// WithSystem attaches an opaque system marker (e.g., "si") to the base
func WithSystem(system string) BaseOption {
	return func(b *Base) {
		b.system = system
	}
}

// NewBase declares a new base dimension.
// Every call returns a distinct dimension, even for identical arguments.
// When name is empty the label text is used as the name.
func NewBase(name string, label types.Label, opts ...BaseOption) *Base {
	if name == "" {
		name = label.String()
	}
	b := &Base{
		name:  name,
		label: label,
		seq:   nextSeq(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.terms = []Term{{Base: b, Exp: 1}}
	return b
}

// Name returns the declared name
func (b *Base) Name() string { return b.name }

// Label returns the symbol used in formulas
func (b *Base) Label() types.Label { return b.label }

// System returns the system marker, empty when none was given
func (b *Base) System() string { return b.system }

// Kind returns types.Base
func (b *Base) Kind() types.DimensionKind { return types.Base }

// Terms returns the single term b^1
func (b *Base) Terms() []Term { return cloneTerms(b.terms) }

// String returns the declared name
func (b *Base) String() string { return b.name }

func (b *Base) canonical() []Term { return b.terms }

func (b *Base) identity() string { return "b" + strconv.FormatUint(b.seq, 10) }
