package dimension

import "fmt"

// Equal reports strict identity: the same base, the same named dimension,
// or two anonymous dimensions with identical canonical term lists.
func Equal(a, b Dimension) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch x := a.(type) {
	case *Base:
		y, ok := b.(*Base)
		return ok && x == y
	case *Named:
		y, ok := b.(*Named)
		return ok && x == y
	case *Derived:
		y, ok := b.(*Derived)
		return ok && x.key == y.key
	}
	return false
}

// Equivalent reports whether both dimensions have the same canonical formula,
// whatever names were used to declare them
func Equivalent(a, b Dimension) bool {
	if a == nil || b == nil {
		return a == b
	}
	return termsKey(a.canonical()) == termsKey(b.canonical())
}

// Convertible reports whether a value of dimension from may be used where to is
// expected. The dimensions must be Equivalent and related by declaration: either
// side anonymous, or one found on the other's lineage. Two names declared
// independently over the same formula are not Convertible.
func Convertible(from, to Dimension) bool {
	if !Equivalent(from, to) {
		return false
	}
	if Equal(from, to) || IsAnonymous(from) || IsAnonymous(to) {
		return true
	}
	return onLineage(from, to) || onLineage(to, from)
}

// CommonType returns the dimension both a and b can be converted to:
// the more specific of the two when one specializes the other, the named one
// when the other is anonymous. Unrelated or merely Equivalent dimensions
// return ErrNoCommonType.
func CommonType(a, b Dimension) (Dimension, error) {
	if !Convertible(a, b) {
		return nil, fmt.Errorf("%w: %s and %s", ErrNoCommonType, describe(a), describe(b))
	}
	switch {
	case Equal(a, b):
		return a, nil
	case onLineage(a, b):
		return a, nil
	case onLineage(b, a):
		return b, nil
	case IsAnonymous(a):
		return b, nil
	default:
		return a, nil
	}
}

// CommonTypeOf folds CommonType over all arguments
func CommonTypeOf(first Dimension, rest ...Dimension) (Dimension, error) {
	result := first
	for _, d := range rest {
		var err error
		if result, err = CommonType(result, d); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Lineage returns d followed by every dimension it specializes, nearest first.
// The last element is a *Base or a *Derived.
func Lineage(d Dimension) []Dimension {
	chain := []Dimension{d}
	for {
		n, ok := d.(*Named)
		if !ok {
			return chain
		}
		d = n.parent
		chain = append(chain, d)
	}
}

// IsAnonymous reports whether d is a *Derived, i.e. carries no declared name
func IsAnonymous(d Dimension) bool {
	_, ok := d.(*Derived)
	return ok
}

// IsDimensionless reports whether d has no terms
func IsDimensionless(d Dimension) bool {
	return d != nil && len(d.canonical()) == 0
}

// onLineage reports whether ancestor appears on the lineage of d
func onLineage(d, ancestor Dimension) bool {
	for _, link := range Lineage(d) {
		if Equal(link, ancestor) {
			return true
		}
	}
	return false
}

func describe(d Dimension) string {
	if d == nil {
		return "<nil>"
	}
	if IsAnonymous(d) {
		return d.String()
	}
	return fmt.Sprintf("%s (%s)", d.String(), formula(d))
}

func formula(d Dimension) string {
	if IsDimensionless(d) {
		return "1"
	}
	s, _ := Symbol(d, DefaultStyle)
	return s
}
