package types

// DimensionKind classifies a declared dimension
type DimensionKind int

const (
	// Base dimensions are atomic and cannot be decomposed
	Base DimensionKind = iota
	// Derived dimensions are anonymous products of base dimensions
	Derived
	// Named dimensions specialize another dimension under their own name
	Named
)

// String returns the string representation of the DimensionKind
func (k DimensionKind) String() string {
	switch k {
	case Base:
		return "base"
	case Derived:
		return "derived"
	case Named:
		return "named"
	default:
		return "unknown"
	}
}

// BaseConfig declares a single base dimension
type BaseConfig struct {
	// Name is the identifier used to reference this dimension (e.g., "length")
	Name string `yaml:"name" json:"name"`

	// Symbol is the label printed in dimension formulas (e.g., "L")
	// Must satisfy NewLabel
	Symbol string `yaml:"symbol" json:"symbol"`
}

// DerivedConfig declares a named dimension
type DerivedConfig struct {
	// Name is the identifier used to reference this dimension (e.g., "speed")
	Name string `yaml:"name" json:"name"`

	// Expr is a dimension expression over previously declared names or symbols
	// e.g., "length / time" or "L*T^-2"
	// Mutually exclusive with Of
	Expr string `yaml:"expr,omitempty" json:"expr,omitempty"`

	// Of names a previously declared dimension this one specializes
	// e.g., velocity is declared with Of: "speed"
	// Mutually exclusive with Expr
	Of string `yaml:"of,omitempty" json:"of,omitempty"`

	// Description is free text shown by tooling
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Config is a dimension catalog: an ordered list of declarations.
// Declarations are applied in order, so a derived dimension may only
// reference names declared before it.
type Config struct {
	// System is an opaque marker attached to every base dimension (e.g., "si")
	System string `yaml:"system,omitempty" json:"system,omitempty"`

	// Bases declares the base dimensions
	Bases []BaseConfig `yaml:"bases" json:"bases"`

	// Derived declares named dimensions built from the bases
	Derived []DerivedConfig `yaml:"derived,omitempty" json:"derived,omitempty"`
}

// GetBase returns the base declaration by name
func (c Config) GetBase(name string) (*BaseConfig, bool) {
	for _, b := range c.Bases {
		if b.Name == name {
			return &b, true
		}
	}
	return nil, false
}

// GetDerived returns the derived declaration by name
func (c Config) GetDerived(name string) (*DerivedConfig, bool) {
	for _, d := range c.Derived {
		if d.Name == name {
			return &d, true
		}
	}
	return nil, false
}

// Names returns every declared name in declaration order
func (c Config) Names() []string {
	names := make([]string, 0, len(c.Bases)+len(c.Derived))
	for _, b := range c.Bases {
		names = append(names, b.Name)
	}
	for _, d := range c.Derived {
		names = append(names, d.Name)
	}
	return names
}

// Merge appends the declarations of other after the ones in c.
// The system marker of c wins when both are set.
func (c Config) Merge(other Config) Config {
	merged := Config{
		System:  c.System,
		Bases:   append(append([]BaseConfig{}, c.Bases...), other.Bases...),
		Derived: append(append([]DerivedConfig{}, c.Derived...), other.Derived...),
	}
	if merged.System == "" {
		merged.System = other.System
	}
	return merged
}
