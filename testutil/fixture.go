package testutil

import (
	_ "embed"
	"testing"

	"github.com/arthur-debert/nanounits/catalog"
	"github.com/arthur-debert/nanounits/dimension"
)

//go:embed universe.yaml
var universeYAML []byte

// Universe provides typed access to the test fixture dimensions
type Universe struct {
	Registry *dimension.Registry

	// Bases
	Length *dimension.Base // L
	Mass   *dimension.Base // M
	Time   *dimension.Base // T

	// Named over 1/T, declared independently of each other
	Frequency *dimension.Named
	Action    *dimension.Named

	Area         *dimension.Named // L²
	Volume       *dimension.Named // L³
	Speed        *dimension.Named // L/T
	Velocity     *dimension.Named // specializes Speed
	Acceleration *dimension.Named // L/T²
	Force        *dimension.Named // L M/T²
}

// UniverseYAML returns the raw fixture catalog
func UniverseYAML() []byte {
	return append([]byte(nil), universeYAML...)
}

// LoadUniverse declares the fixture catalog in a fresh registry
func LoadUniverse(t testing.TB) *Universe {
	t.Helper()

	cfg, err := catalog.Decode(universeYAML, catalog.YAML)
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}

	reg := dimension.NewRegistry()
	if err := catalog.Apply(cfg, reg); err != nil {
		t.Fatalf("failed to apply fixture: %v", err)
	}

	return &Universe{
		Registry:     reg,
		Length:       mustBase(t, reg, "length"),
		Mass:         mustBase(t, reg, "mass"),
		Time:         mustBase(t, reg, "time"),
		Frequency:    mustNamed(t, reg, "frequency"),
		Action:       mustNamed(t, reg, "action"),
		Area:         mustNamed(t, reg, "area"),
		Volume:       mustNamed(t, reg, "volume"),
		Speed:        mustNamed(t, reg, "speed"),
		Velocity:     mustNamed(t, reg, "velocity"),
		Acceleration: mustNamed(t, reg, "acceleration"),
		Force:        mustNamed(t, reg, "force"),
	}
}

func mustBase(t testing.TB, reg *dimension.Registry, name string) *dimension.Base {
	t.Helper()
	d, ok := reg.Lookup(name)
	if !ok {
		t.Fatalf("fixture is missing %s", name)
	}
	b, ok := d.(*dimension.Base)
	if !ok {
		t.Fatalf("fixture %s is a %s, want base", name, d.Kind())
	}
	return b
}

func mustNamed(t testing.TB, reg *dimension.Registry, name string) *dimension.Named {
	t.Helper()
	d, ok := reg.Lookup(name)
	if !ok {
		t.Fatalf("fixture is missing %s", name)
	}
	n, ok := d.(*dimension.Named)
	if !ok {
		t.Fatalf("fixture %s is a %s, want named", name, d.Kind())
	}
	return n
}
