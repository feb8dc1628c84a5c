package validation

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/nanounits/dimension"
	"github.com/arthur-debert/nanounits/types"
)

// maxDeclarations bounds the size of a single catalog
const maxDeclarations = 512

// Validate checks a catalog for consistency before it is applied to a registry.
//
// Names referenced by derived declarations must either be declared earlier in
// the same catalog or be left for the target registry to resolve; a reference
// to a name declared later in the catalog, or to the declaration itself, is an
// error.
func Validate(cfg types.Config) error {
	total := len(cfg.Bases) + len(cfg.Derived)
	if total == 0 {
		return fmt.Errorf("at least one dimension must be declared")
	}
	if total > maxDeclarations {
		return fmt.Errorf("too many declarations: %d (maximum %d)", total, maxDeclarations)
	}

	// position of every declared name, bases first
	declared := make(map[string]int, total)
	for i, name := range cfg.Names() {
		if name == "" {
			return fmt.Errorf("declaration %d: name cannot be empty", i)
		}
		if !dimension.ValidName(name) {
			return fmt.Errorf("declaration %d: invalid name %q", i, name)
		}
		if _, seen := declared[name]; seen {
			return fmt.Errorf("duplicate dimension name: %s", name)
		}
		declared[name] = i
	}

	for _, b := range cfg.Bases {
		if err := validateBase(b); err != nil {
			return err
		}
	}

	for i, d := range cfg.Derived {
		if err := validateDerived(d, len(cfg.Bases)+i, declared); err != nil {
			return err
		}
	}

	return nil
}

// validateBase validates a base declaration
func validateBase(b types.BaseConfig) error {
	if _, err := types.NewLabel(b.Symbol); err != nil {
		return fmt.Errorf("base %s: invalid symbol: %w", b.Name, err)
	}
	return nil
}

// validateDerived validates a derived declaration at position pos
func validateDerived(d types.DerivedConfig, pos int, declared map[string]int) error {
	switch {
	case d.Expr == "" && d.Of == "":
		return fmt.Errorf("derived %s: one of expr or of is required", d.Name)
	case d.Expr != "" && d.Of != "":
		return fmt.Errorf("derived %s: expr and of are mutually exclusive", d.Name)
	}

	refs := []string{d.Of}
	if d.Expr != "" {
		var err error
		if refs, err = References(d.Expr); err != nil {
			return fmt.Errorf("derived %s: %w", d.Name, err)
		}
	}

	for _, ref := range refs {
		if !dimension.ValidName(ref) {
			return fmt.Errorf("derived %s: invalid reference %q", d.Name, ref)
		}
		if ref == d.Name {
			return fmt.Errorf("derived %s: defined in terms of itself", d.Name)
		}
		if at, ok := declared[ref]; ok && at > pos {
			return fmt.Errorf("derived %s: references %s before its declaration", d.Name, ref)
		}
	}
	return nil
}

// References parses expr and returns the identifiers it uses, sorted and
// without duplicates. Only syntax is checked; identifiers are not resolved.
func References(expr string) ([]string, error) {
	seen := make(map[string]bool)
	record := dimension.ResolverFunc(func(ident string) (dimension.Dimension, error) {
		seen[ident] = true
		return dimension.One, nil
	})
	if _, err := dimension.Parse(expr, record); err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(seen))
	for ref := range seen {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs, nil
}

// SymbolConflicts returns the symbols used by more than one base, mapped to the
// names of those bases. Such bases are distinct dimensions; they can still be
// referenced by name but not by symbol.
func SymbolConflicts(cfg types.Config) map[string][]string {
	bySymbol := make(map[string][]string)
	for _, b := range cfg.Bases {
		bySymbol[b.Symbol] = append(bySymbol[b.Symbol], b.Name)
	}
	conflicts := make(map[string][]string)
	for symbol, names := range bySymbol {
		if len(names) > 1 {
			conflicts[symbol] = names
		}
	}
	return conflicts
}
