package testutil

import (
	"testing"

	"github.com/arthur-debert/nanounits/dimension"
)

func TestLoadUniverse(t *testing.T) {
	u := LoadUniverse(t)

	if got := u.Registry.Len(); got != 11 {
		t.Errorf("registry size: got %d, want 11", got)
	}

	t.Run("bases carry the fixture system", func(t *testing.T) {
		for _, b := range []*dimension.Base{u.Length, u.Mass, u.Time} {
			if b.System() != "test" {
				t.Errorf("%s system: got %q, want %q", b, b.System(), "test")
			}
		}
	})

	t.Run("formulas", func(t *testing.T) {
		AssertTerms(t, u.Frequency, "T^-1")
		AssertTerms(t, u.Area, "L^2")
		AssertTerms(t, u.Speed, "L", "T^-1")
		AssertTerms(t, u.Force, "L", "M", "T^-2")
	})

	t.Run("velocity specializes speed", func(t *testing.T) {
		AssertEqual(t, u.Velocity.Parent(), u.Speed)
	})

	t.Run("each load declares new bases", func(t *testing.T) {
		other := LoadUniverse(t)
		AssertNotEqual(t, u.Length, other.Length)
		if dimension.Equivalent(u.Speed, other.Speed) {
			t.Error("speeds from separate universes should not be equivalent")
		}
	})
}
