package matching

import (
	"sort"

	"github.com/arthur-debert/nanounits/dimension"
)

// Relation is how closely a candidate matches a target, weakest first
type Relation int

const (
	// Unrelated dimensions have different formulas
	Unrelated Relation = iota
	// Equivalent dimensions share a formula but values cannot be mixed
	Equivalent
	// Convertible dimensions share a formula and a lineage
	Convertible
	// Identical is the same dimension
	Identical
)

// String returns the string representation of the Relation
func (r Relation) String() string {
	switch r {
	case Unrelated:
		return "unrelated"
	case Equivalent:
		return "equivalent"
	case Convertible:
		return "convertible"
	case Identical:
		return "identical"
	default:
		return "unknown"
	}
}

// Classify returns the strongest relation that holds between a and b
func Classify(a, b dimension.Dimension) Relation {
	switch {
	case dimension.Equal(a, b):
		return Identical
	case dimension.Convertible(a, b):
		return Convertible
	case dimension.Equivalent(a, b):
		return Equivalent
	default:
		return Unrelated
	}
}

// Match is a candidate related to a target
type Match struct {
	Dimension dimension.Dimension
	Relation  Relation
}

// Matcher finds which of a fixed set of dimensions relate to a target
type Matcher struct {
	candidates []dimension.Dimension
}

// NewMatcher creates a matcher over candidates, usually a registry's All()
func NewMatcher(candidates []dimension.Dimension) *Matcher {
	return &Matcher{
		candidates: append([]dimension.Dimension(nil), candidates...),
	}
}

// Match returns every candidate that is at least Equivalent to target,
// strongest relation first. Candidates with the same relation keep their order.
func (m *Matcher) Match(target dimension.Dimension) []Match {
	var matches []Match
	for _, c := range m.candidates {
		if rel := Classify(target, c); rel != Unrelated {
			matches = append(matches, Match{Dimension: c, Relation: rel})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Relation > matches[j].Relation
	})
	return matches
}

// Best returns the strongest match for target, if any
func (m *Matcher) Best(target dimension.Dimension) (Match, bool) {
	matches := m.Match(target)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}
