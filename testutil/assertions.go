package testutil

import (
	"testing"

	"github.com/arthur-debert/nanounits/dimension"
	"github.com/google/go-cmp/cmp"
)

// AssertEqual fails unless got and want are the same dimension
func AssertEqual(t testing.TB, got, want dimension.Dimension) {
	t.Helper()
	if !dimension.Equal(got, want) {
		t.Errorf("got %s (%s), want %s (%s)", got, kindOf(got), want, kindOf(want))
	}
}

// AssertNotEqual fails when a and b are the same dimension
func AssertNotEqual(t testing.TB, a, b dimension.Dimension) {
	t.Helper()
	if dimension.Equal(a, b) {
		t.Errorf("expected %s and %s to differ", a, b)
	}
}

// AssertConvertible checks Convertible in the from→to direction
func AssertConvertible(t testing.TB, from, to dimension.Dimension, want bool) {
	t.Helper()
	if got := dimension.Convertible(from, to); got != want {
		t.Errorf("Convertible(%s, %s): got %v, want %v", from, to, got, want)
	}
}

// AssertCommonType checks that the common type of a and b is want
func AssertCommonType(t testing.TB, a, b, want dimension.Dimension) {
	t.Helper()
	got, err := dimension.CommonType(a, b)
	if err != nil {
		t.Errorf("CommonType(%s, %s): unexpected error: %v", a, b, err)
		return
	}
	if !dimension.Equal(got, want) {
		t.Errorf("CommonType(%s, %s): got %s, want %s", a, b, got, want)
	}
}

// AssertTerms compares the canonical terms of d, written as "L^2"-style strings
func AssertTerms(t testing.TB, d dimension.Dimension, want ...string) {
	t.Helper()
	var got []string
	for _, term := range d.Terms() {
		got = append(got, term.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("terms of %s mismatch (-want +got):\n%s", d, diff)
	}
}

// AssertSymbol checks the rendered symbol of d in style
func AssertSymbol(t testing.TB, d dimension.Dimension, style dimension.Style, want string) {
	t.Helper()
	got, err := dimension.Symbol(d, style)
	if err != nil {
		t.Errorf("Symbol(%s): unexpected error: %v", d, err)
		return
	}
	if got != want {
		t.Errorf("Symbol(%s): got %q, want %q", d, got, want)
	}
}

func kindOf(d dimension.Dimension) string {
	if d == nil {
		return "nil"
	}
	return d.Kind().String()
}
