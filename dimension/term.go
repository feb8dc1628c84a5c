package dimension

import (
	"cmp"
	"strconv"
	"strings"
)

// Term is a base dimension raised to a non-zero integer power
type Term struct {
	Base *Base
	Exp  int
}

// Reciprocal returns the term with its exponent negated
func (t Term) Reciprocal() Term {
	return Term{Base: t.Base, Exp: -t.Exp}
}

// Scale returns the term with its exponent multiplied by n
func (t Term) Scale(n int) Term {
	return Term{Base: t.Base, Exp: t.Exp * n}
}

// SameSlot reports whether both terms refer to the same base dimension,
// regardless of their exponents
func (t Term) SameSlot(other Term) bool {
	return t.Base == other.Base
}

// String renders the term as label^exp, omitting an exponent of 1
func (t Term) String() string {
	if t.Base == nil {
		return "<nil>^" + strconv.Itoa(t.Exp)
	}
	if t.Exp == 1 {
		return t.Base.label.String()
	}
	return t.Base.label.String() + "^" + strconv.Itoa(t.Exp)
}

// compareTerms is the canonical order: base label first, declaration order second
func compareTerms(a, b Term) int {
	if c := a.Base.label.Compare(b.Base.label); c != 0 {
		return c
	}
	return cmp.Compare(a.Base.seq, b.Base.seq)
}

// termsKey encodes a canonical term list; equal keys mean identical lists
func termsKey(terms []Term) string {
	var sb strings.Builder
	for i, t := range terms {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(t.Base.seq, 10))
		sb.WriteByte('^')
		sb.WriteString(strconv.Itoa(t.Exp))
	}
	return sb.String()
}

func cloneTerms(terms []Term) []Term {
	if len(terms) == 0 {
		return nil
	}
	out := make([]Term, len(terms))
	copy(out, terms)
	return out
}
