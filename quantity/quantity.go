// Package quantity pairs a numeric value with a dimension and checks
// dimensional consistency on every operation.
package quantity

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/arthur-debert/nanounits/dimension"
)

// ErrIncompatible is returned when two quantities cannot be combined
var ErrIncompatible = errors.New("incompatible dimensions")

// Quantity is an immutable value of a dimension.
// The zero Quantity is the dimensionless zero.
type Quantity struct {
	value float64
	dim   dimension.Dimension
}

// New creates a quantity. A nil dimension means dimensionless.
func New(value float64, d dimension.Dimension) Quantity {
	if d == nil {
		d = dimension.One
	}
	return Quantity{value: value, dim: d}
}

// Value returns the numeric value
func (q Quantity) Value() float64 { return q.value }

// Dimension returns the dimension of the quantity
func (q Quantity) Dimension() dimension.Dimension {
	if q.dim == nil {
		return dimension.One
	}
	return q.dim
}

// String renders the value followed by the formula, e.g. "9.81 L/T²"
func (q Quantity) String() string {
	v := strconv.FormatFloat(q.value, 'g', -1, 64)
	sym, err := dimension.Symbol(q.Dimension(), dimension.DefaultStyle)
	if err != nil || sym == "" {
		return v
	}
	return v + " " + sym
}

// Add returns a+b in the common type of both dimensions
func Add(a, b Quantity) (Quantity, error) {
	d, err := common("add", a, b)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: a.value + b.value, dim: d}, nil
}

// Sub returns a-b in the common type of both dimensions
func Sub(a, b Quantity) (Quantity, error) {
	d, err := common("subtract", a, b)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: a.value - b.value, dim: d}, nil
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b
func Compare(a, b Quantity) (int, error) {
	if _, err := common("compare", a, b); err != nil {
		return 0, err
	}
	return cmp.Compare(a.value, b.value), nil
}

// Mul returns a·b; the dimension is the product of both dimensions
func Mul(a, b Quantity) Quantity {
	return Quantity{value: a.value * b.value, dim: dimension.Multiply(a.Dimension(), b.Dimension())}
}

// Div returns a/b; the dimension is the quotient of both dimensions
func Div(a, b Quantity) Quantity {
	return Quantity{value: a.value / b.value, dim: dimension.Divide(a.Dimension(), b.Dimension())}
}

// Pow raises q to the integer power n
func Pow(q Quantity, n int) Quantity {
	return Quantity{value: math.Pow(q.value, float64(n)), dim: dimension.Pow(q.Dimension(), n)}
}

// Scale multiplies the value by a dimensionless factor
func (q Quantity) Scale(k float64) Quantity {
	return Quantity{value: q.value * k, dim: q.Dimension()}
}

// As retags q with dimension d, keeping its value
func (q Quantity) As(d dimension.Dimension) (Quantity, error) {
	if !dimension.Convertible(q.Dimension(), d) {
		return Quantity{}, fmt.Errorf("%w: cannot use %s as %s", ErrIncompatible, q.Dimension(), d)
	}
	return Quantity{value: q.value, dim: d}, nil
}

func common(op string, a, b Quantity) (dimension.Dimension, error) {
	d, err := dimension.CommonType(a.Dimension(), b.Dimension())
	if err != nil {
		return nil, fmt.Errorf("%w: cannot %s %s and %s: %w", ErrIncompatible, op, a, b, err)
	}
	return d, nil
}
