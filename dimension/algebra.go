package dimension

import (
	"fmt"
	"slices"
	"sync"
)

// productKey identifies a Multiply call by its operands
type productKey struct {
	lhs, rhs string
}

// products memoizes Multiply so each distinct combination is normalized once
var products sync.Map // productKey -> Dimension

// Multiply returns the canonical product a·b
func Multiply(a, b Dimension) Dimension {
	key := productKey{lhs: a.identity(), rhs: b.identity()}
	if cached, ok := products.Load(key); ok {
		return cached.(Dimension)
	}

	result := canonicalize(merge(a.canonical(), b.canonical()))
	actual, _ := products.LoadOrStore(key, result)
	return actual.(Dimension)
}

// Divide returns the canonical quotient a/b
func Divide(a, b Dimension) Dimension {
	return Multiply(a, Reciprocal(b))
}

// Pow returns a raised to the integer power n.
// Pow(a, 0) is One for every a.
func Pow(a Dimension, n int) Dimension {
	if n == 0 {
		return One
	}
	src := a.canonical()
	scaled := make([]Term, len(src))
	for i, t := range src {
		scaled[i] = t.Scale(n)
	}
	return canonicalize(scaled)
}

// Reciprocal returns 1/a
func Reciprocal(a Dimension) Dimension {
	return Pow(a, -1)
}

// Square returns a²
func Square(a Dimension) Dimension {
	return Pow(a, 2)
}

// Cubic returns a³
func Cubic(a Dimension) Dimension {
	return Pow(a, 3)
}

// Product multiplies all dimensions left to right. The empty product is One.
func Product(ds ...Dimension) Dimension {
	var result Dimension = One
	for _, d := range ds {
		result = Multiply(result, d)
	}
	return result
}

// FromTerms builds the canonical dimension for an arbitrary term list.
// Terms may repeat bases and carry zero exponents; both are normalized away.
func FromTerms(terms ...Term) (Dimension, error) {
	var acc []Term
	for i, t := range terms {
		if t.Base == nil {
			return nil, fmt.Errorf("%w: term %d has no base", ErrMalformedTerm, i)
		}
		acc = merge(acc, []Term{t})
	}
	return canonicalize(acc), nil
}

// merge combines two term lists: terms sharing a base have their exponents
// summed, the rest pass through. Each input must not repeat a base.
func merge(lhs, rhs []Term) []Term {
	out := make([]Term, 0, len(lhs)+len(rhs))
	matched := make([]bool, len(rhs))

	for _, l := range lhs {
		for j, r := range rhs {
			if !matched[j] && l.SameSlot(r) {
				l.Exp += r.Exp
				matched[j] = true
				break
			}
		}
		out = append(out, l)
	}
	for j, r := range rhs {
		if !matched[j] {
			out = append(out, r)
		}
	}
	return out
}

// canonicalize drops zero exponents, sorts, and collapses reducible forms.
// It takes ownership of terms.
func canonicalize(terms []Term) Dimension {
	kept := terms[:0]
	for _, t := range terms {
		if t.Exp != 0 {
			kept = append(kept, t)
		}
	}
	slices.SortStableFunc(kept, compareTerms)

	switch {
	case len(kept) == 0:
		return One
	case len(kept) == 1 && kept[0].Exp == 1:
		return kept[0].Base
	}

	owned := make([]Term, len(kept))
	copy(owned, kept)
	return &Derived{terms: owned, key: termsKey(owned)}
}
