package formats

import "github.com/arthur-debert/nanounits/dimension"

// Unicode is the default style: L/T², M L⁻¹ T⁻²
var Unicode = &Format{
	Name:        "unicode",
	Description: "superscript exponents, solidus for a single denominator",
	Style:       dimension.DefaultStyle,
}

// ASCII spells exponents with a caret: L/T^2, M L^-1 T^-2
var ASCII = &Format{
	Name:        "ascii",
	Description: "caret exponents, solidus for a single denominator",
	Style:       dimension.Style{Encoding: dimension.ASCII},
}

// Solidus always writes a quotient: M/(L T²)
var Solidus = &Format{
	Name:        "solidus",
	Description: "always a solidus, denominators grouped in parentheses",
	Style:       dimension.Style{Solidus: dimension.AlwaysSolidus},
}

// Exponent never writes a quotient: L T⁻²
var Exponent = &Format{
	Name:        "exponent",
	Description: "negative exponents instead of a solidus",
	Style:       dimension.Style{Solidus: dimension.NeverSolidus},
}

// Dot separates terms with a half-height dot: L⋅M/T²
var Dot = &Format{
	Name:        "dot",
	Description: "half-height dot between terms",
	Style:       dimension.Style{Separator: dimension.DotSeparator},
}

func init() {
	for _, f := range []*Format{Unicode, ASCII, Solidus, Exponent, Dot} {
		if err := Register(f); err != nil {
			panic(err)
		}
	}
}
