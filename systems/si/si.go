// Package si declares the International System of Quantities: the seven base
// dimensions and the common derived dimensions built from them.
//
// The dimensions live in a process-wide registry created on first use:
//
//	speed := si.Speed
//	d, err := dimension.Parse("force / area", si.Registry())
package si

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/arthur-debert/nanounits/catalog"
	"github.com/arthur-debert/nanounits/dimension"
	"github.com/arthur-debert/nanounits/types"
)

// System is the marker attached to every SI base dimension
const System = "si"

//go:embed si.yaml
var catalogYAML []byte

// Global registry instance and initialization guard.
var (
	globalRegistry *dimension.Registry
	globalOnce     sync.Once
)

// Base dimensions
var (
	Length                   *dimension.Base
	Mass                     *dimension.Base
	Time                     *dimension.Base
	ElectricCurrent          *dimension.Base
	ThermodynamicTemperature *dimension.Base
	AmountOfSubstance        *dimension.Base
	LuminousIntensity        *dimension.Base
)

// Derived dimensions
var (
	Area                *dimension.Named
	Volume              *dimension.Named
	Frequency           *dimension.Named
	Activity            *dimension.Named
	Speed               *dimension.Named
	Velocity            *dimension.Named
	Acceleration        *dimension.Named
	Density             *dimension.Named
	Momentum            *dimension.Named
	Force               *dimension.Named
	Pressure            *dimension.Named
	Energy              *dimension.Named
	Power               *dimension.Named
	Action              *dimension.Named
	ElectricCharge      *dimension.Named
	Voltage             *dimension.Named
	Capacitance         *dimension.Named
	Resistance          *dimension.Named
	Conductance         *dimension.Named
	MagneticFlux        *dimension.Named
	MagneticFluxDensity *dimension.Named
	Inductance          *dimension.Named
	CatalyticActivity   *dimension.Named
	Concentration       *dimension.Named
)

func init() {
	r := Registry()

	Length = base(r, "length")
	Mass = base(r, "mass")
	Time = base(r, "time")
	ElectricCurrent = base(r, "electric_current")
	ThermodynamicTemperature = base(r, "thermodynamic_temperature")
	AmountOfSubstance = base(r, "amount_of_substance")
	LuminousIntensity = base(r, "luminous_intensity")

	Area = named(r, "area")
	Volume = named(r, "volume")
	Frequency = named(r, "frequency")
	Activity = named(r, "activity")
	Speed = named(r, "speed")
	Velocity = named(r, "velocity")
	Acceleration = named(r, "acceleration")
	Density = named(r, "density")
	Momentum = named(r, "momentum")
	Force = named(r, "force")
	Pressure = named(r, "pressure")
	Energy = named(r, "energy")
	Power = named(r, "power")
	Action = named(r, "action")
	ElectricCharge = named(r, "electric_charge")
	Voltage = named(r, "voltage")
	Capacitance = named(r, "capacitance")
	Resistance = named(r, "resistance")
	Conductance = named(r, "conductance")
	MagneticFlux = named(r, "magnetic_flux")
	MagneticFluxDensity = named(r, "magnetic_flux_density")
	Inductance = named(r, "inductance")
	CatalyticActivity = named(r, "catalytic_activity")
	Concentration = named(r, "concentration")
}

// Registry returns the process-wide SI registry.
// Catalogs applied to it extend the SI dimensions for the whole process.
func Registry() *dimension.Registry {
	globalOnce.Do(func() {
		reg, err := New()
		if err != nil {
			panic(fmt.Sprintf("si: embedded catalog: %v", err))
		}
		globalRegistry = reg
	})
	return globalRegistry
}

// New returns a fresh registry holding its own copy of the SI dimensions.
// Its dimensions are distinct from the ones in Registry().
func New() (*dimension.Registry, error) {
	cfg, err := Catalog()
	if err != nil {
		return nil, err
	}
	reg := dimension.NewRegistry()
	if err := catalog.Apply(cfg, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Catalog returns the SI declarations
func Catalog() (types.Config, error) {
	return catalog.Decode(catalogYAML, catalog.YAML)
}

func base(r *dimension.Registry, name string) *dimension.Base {
	d, ok := r.Lookup(name)
	if !ok {
		panic("si: missing base dimension " + name)
	}
	return d.(*dimension.Base)
}

func named(r *dimension.Registry, name string) *dimension.Named {
	d, ok := r.Lookup(name)
	if !ok {
		panic("si: missing dimension " + name)
	}
	return d.(*dimension.Named)
}
