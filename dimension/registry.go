package dimension

import (
	"fmt"

	"github.com/arthur-debert/nanounits/types"
)

// Registry holds the dimensions declared for a system, by name and by symbol.
// Dimensions are declared once and never removed; declaration order is kept.
// A Registry is safe for concurrent use.
type Registry struct {
	locks    *lockManager
	byName   map[string]Dimension
	bySymbol map[string][]*Base
	order    []Dimension
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		locks:    newLockManager(),
		byName:   make(map[string]Dimension),
		bySymbol: make(map[string][]*Base),
	}
}

// DeclareBase creates a base dimension and registers it under name.
// The symbol becomes the base's label.
func (r *Registry) DeclareBase(name, symbol string, opts ...BaseOption) (*Base, error) {
	if !ValidName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	label, err := types.NewLabel(symbol)
	if err != nil {
		return nil, fmt.Errorf("base %q: %w", name, err)
	}

	return executeWithResult(r.locks, writeOperation, func() (*Base, error) {
		if _, exists := r.byName[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		b := NewBase(name, label, opts...)
		r.byName[name] = b
		r.bySymbol[symbol] = append(r.bySymbol[symbol], b)
		r.order = append(r.order, b)
		return b, nil
	})
}

// Define registers a named dimension specializing of
func (r *Registry) Define(name string, of Dimension) (*Named, error) {
	if !ValidName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if of == nil {
		return nil, fmt.Errorf("define %s: %w: nil parent", name, ErrUnknownDimension)
	}

	return executeWithResult(r.locks, writeOperation, func() (*Named, error) {
		if _, exists := r.byName[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		n := NewNamed(name, of)
		r.byName[name] = n
		r.order = append(r.order, n)
		return n, nil
	})
}

// DefineExpr parses expr against the registry and registers the result as name
func (r *Registry) DefineExpr(name, expr string) (*Named, error) {
	d, err := Parse(expr, r)
	if err != nil {
		return nil, fmt.Errorf("define %s: %w", name, err)
	}
	return r.Define(name, d)
}

// Lookup returns the dimension registered under name
func (r *Registry) Lookup(name string) (Dimension, bool) {
	d, err := executeWithResult(r.locks, readOperation, func() (Dimension, error) {
		d, ok := r.byName[name]
		if !ok {
			return nil, ErrUnknownDimension
		}
		return d, nil
	})
	return d, err == nil
}

// LookupSymbol returns every base whose label is symbol, in declaration order
func (r *Registry) LookupSymbol(symbol string) []*Base {
	bases, _ := executeWithResult(r.locks, readOperation, func() ([]*Base, error) {
		return append([]*Base(nil), r.bySymbol[symbol]...), nil
	})
	return bases
}

// Resolve finds ident as a name first, then as the symbol of exactly one base.
// Registry implements Resolver.
func (r *Registry) Resolve(ident string) (Dimension, error) {
	return executeWithResult(r.locks, readOperation, func() (Dimension, error) {
		if d, ok := r.byName[ident]; ok {
			return d, nil
		}
		switch bases := r.bySymbol[ident]; len(bases) {
		case 0:
			return nil, fmt.Errorf("%w: %s", ErrUnknownDimension, ident)
		case 1:
			return bases[0], nil
		default:
			names := make([]string, len(bases))
			for i, b := range bases {
				names[i] = b.Name()
			}
			return nil, fmt.Errorf("%w: %s matches %v", ErrAmbiguousSymbol, ident, names)
		}
	})
}

// Names returns all registered names in declaration order
func (r *Registry) Names() []string {
	names, _ := executeWithResult(r.locks, readOperation, func() ([]string, error) {
		names := make([]string, len(r.order))
		for i, d := range r.order {
			names[i] = d.String()
		}
		return names, nil
	})
	return names
}

// All returns all registered dimensions in declaration order
func (r *Registry) All() []Dimension {
	all, _ := executeWithResult(r.locks, readOperation, func() ([]Dimension, error) {
		return append([]Dimension(nil), r.order...), nil
	})
	return all
}

// Bases returns the registered base dimensions in declaration order
func (r *Registry) Bases() []*Base {
	bases, _ := executeWithResult(r.locks, readOperation, func() ([]*Base, error) {
		var bases []*Base
		for _, d := range r.order {
			if b, ok := d.(*Base); ok {
				bases = append(bases, b)
			}
		}
		return bases, nil
	})
	return bases
}

// Len returns the number of registered dimensions
func (r *Registry) Len() int {
	n, _ := executeWithResult(r.locks, readOperation, func() (int, error) {
		return len(r.order), nil
	})
	return n
}
