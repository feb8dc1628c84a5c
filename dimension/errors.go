package dimension

import "errors"

var (
	// ErrMalformedTerm is returned when a term list contains a term without a base
	ErrMalformedTerm = errors.New("malformed term")

	// ErrNoCommonType is returned when two dimensions have no common type
	ErrNoCommonType = errors.New("no common type")

	// ErrInvalidStyle is returned for symbol styles that cannot be rendered
	ErrInvalidStyle = errors.New("invalid symbol style")

	// ErrDuplicateName is returned when a registry already holds a dimension with the same name
	ErrDuplicateName = errors.New("duplicate dimension name")

	// ErrUnknownDimension is returned when a name or symbol is not registered
	ErrUnknownDimension = errors.New("unknown dimension")

	// ErrAmbiguousSymbol is returned when a symbol matches more than one base
	ErrAmbiguousSymbol = errors.New("ambiguous symbol")

	// ErrInvalidName is returned for names that cannot be used in expressions
	ErrInvalidName = errors.New("invalid dimension name")
)
