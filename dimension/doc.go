// Package dimension implements the dimension algebra of nanounits.
//
//	Overview
//
// A dimension describes what kind of physical quantity a value measures: length,
// time, or a product of those raised to integer powers such as length·time⁻².
// The package represents every dimension as an immutable descriptor that is
// normalized once, when it is created, and compared by identity or structure
// afterwards.
//
//	Kinds of dimensions
//
//   - *Base: an atomic dimension (length, time, mass...). Identity is nominal: two
//     bases created separately are different dimensions even when they share a label.
//
//   - *Derived: an anonymous product of bases in canonical form. The dimensionless
//     dimension One is the Derived with no terms.
//
//   - *Named: a dimension declared under its own name as a specialization of another
//     dimension, e.g. frequency = 1/time or velocity ⊂ speed.
//
//	Canonical form
//
// Multiply, Divide, Pow and Reciprocal always produce a canonical result:
//
//   - every base appears at most once, exponents of the same base are summed
//
//   - terms whose exponent sums to zero are removed
//
//   - terms are sorted by the label of their base, ties broken by declaration order
//
//   - no terms collapses to One, a single term with exponent 1 collapses to its *Base
//
// Arithmetic looks through named dimensions: area/length is the base length, not a
// named dimension, and acceleration/speed is the anonymous 1/T.
//
//	Relations
//
//   - Equal: strict identity. 1/T and frequency are not Equal.
//
//   - Equivalent: same canonical formula. frequency and action are Equivalent.
//
//   - Convertible: Equivalent and related through a declaration (an anonymous form and
//     any name declared over it, or a name and its specializations). frequency and
//     action are not Convertible; speed and velocity are.
//
//   - CommonType: the more specific of two Convertible dimensions, ErrNoCommonType
//     otherwise.
//
// Example:
//
//	length := dimension.NewBase("length", types.MustLabel("L"))
//	tm := dimension.NewBase("time", types.MustLabel("T"))
//	speed := dimension.NewNamed("speed", dimension.Divide(length, tm))
//	velocity := dimension.NewNamed("velocity", speed)
//
//	dimension.Equal(dimension.Multiply(speed, tm), length) // true
//	dimension.CommonType(speed, velocity)                   // velocity, nil
package dimension
