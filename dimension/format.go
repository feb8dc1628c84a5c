package dimension

import (
	"fmt"
	"strconv"
	"strings"
)

// Encoding selects the character set used for symbols
type Encoding int

const (
	// Unicode renders exponents as superscripts: L²·T⁻¹
	Unicode Encoding = iota
	// ASCII renders exponents with a caret: L^2 T^-1
	ASCII
)

// Solidus controls when a '/' is used for negative exponents
type Solidus int

const (
	// OneDenominator uses '/' only when exactly one term has a negative exponent
	OneDenominator Solidus = iota
	// AlwaysSolidus always uses '/', parenthesizing multiple denominator terms
	AlwaysSolidus
	// NeverSolidus always writes negative exponents
	NeverSolidus
)

// Separator is placed between terms
type Separator int

const (
	// SpaceSeparator joins terms with a space
	SpaceSeparator Separator = iota
	// DotSeparator joins terms with a middle dot, Unicode only
	DotSeparator
)

// Style configures Symbol
type Style struct {
	Encoding  Encoding
	Solidus   Solidus
	Separator Separator
}

// DefaultStyle renders "L/T²" and "M L⁻¹ T⁻²"
var DefaultStyle = Style{}

// Validate reports whether the style can be rendered
func (s Style) Validate() error {
	if s.Separator == DotSeparator && s.Encoding != Unicode {
		return fmt.Errorf("%w: dot separator requires unicode encoding", ErrInvalidStyle)
	}
	if s.Encoding < Unicode || s.Encoding > ASCII {
		return fmt.Errorf("%w: unknown encoding %d", ErrInvalidStyle, s.Encoding)
	}
	if s.Solidus < OneDenominator || s.Solidus > NeverSolidus {
		return fmt.Errorf("%w: unknown solidus mode %d", ErrInvalidStyle, s.Solidus)
	}
	return nil
}

// Symbol renders the canonical formula of d.
// Positive exponents come first, in canonical order. The dimensionless
// dimension renders as the empty string.
func Symbol(d Dimension, style Style) (string, error) {
	if err := style.Validate(); err != nil {
		return "", err
	}

	var nums, dens []Term
	for _, t := range d.canonical() {
		if t.Exp > 0 {
			nums = append(nums, t)
		} else {
			dens = append(dens, t)
		}
	}

	var sb strings.Builder
	switch {
	case len(nums) == 0 && len(dens) == 0:
		return "", nil
	case len(dens) == 0:
		writeTerms(&sb, nums, style, false)
	case style.Solidus == AlwaysSolidus || (style.Solidus == OneDenominator && len(dens) == 1):
		if len(nums) == 0 {
			sb.WriteByte('1')
		} else {
			writeTerms(&sb, nums, style, false)
		}
		sb.WriteByte('/')
		paren := len(dens) > 1
		if paren {
			sb.WriteByte('(')
		}
		writeTerms(&sb, dens, style, true)
		if paren {
			sb.WriteByte(')')
		}
	default:
		if len(nums) > 0 {
			writeTerms(&sb, nums, style, false)
			writeSeparator(&sb, style)
		}
		writeTerms(&sb, dens, style, false)
	}
	return sb.String(), nil
}

func writeTerms(sb *strings.Builder, terms []Term, style Style, absolute bool) {
	for i, t := range terms {
		if i > 0 {
			writeSeparator(sb, style)
		}
		sb.WriteString(t.Base.label.String())
		exp := t.Exp
		if absolute && exp < 0 {
			exp = -exp
		}
		if exp != 1 {
			sb.WriteString(exponentText(exp, style.Encoding))
		}
	}
}

func writeSeparator(sb *strings.Builder, style Style) {
	if style.Separator == DotSeparator {
		sb.WriteString("⋅")
		return
	}
	sb.WriteByte(' ')
}

var superscriptDigits = [10]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

func exponentText(exp int, enc Encoding) string {
	if enc == ASCII {
		return "^" + strconv.Itoa(exp)
	}
	var sb strings.Builder
	digits := strconv.Itoa(exp)
	for _, r := range digits {
		if r == '-' {
			sb.WriteString("⁻")
			continue
		}
		sb.WriteString(superscriptDigits[r-'0'])
	}
	return sb.String()
}
