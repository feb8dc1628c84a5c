package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/nanounits/dimension"
	"github.com/arthur-debert/nanounits/types"
	"github.com/google/uuid"
)

// namespace scopes the deterministic entry IDs
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/arthur-debert/nanounits"))

// Snapshot is a point-in-time export of a registry
type Snapshot struct {
	ID        string    `json:"id"`
	System    string    `json:"system"`
	CreatedAt time.Time `json:"created_at"`
	Entries   []Entry   `json:"entries"`
}

// Entry describes one registered dimension
type Entry struct {
	// ID is derived from the system and the name, so the same declaration
	// gets the same ID across exports.
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Kind    string      `json:"kind"`
	Symbol  string      `json:"symbol,omitempty"`
	Parent  string      `json:"parent,omitempty"`
	Formula string      `json:"formula"`
	Terms   []TermEntry `json:"terms,omitempty"`
}

// TermEntry is a base name with its exponent
type TermEntry struct {
	Base string `json:"base"`
	Exp  int    `json:"exp"`
}

// EntryID returns the deterministic ID of a declaration
func EntryID(system, name string) string {
	return uuid.NewSHA1(namespace, []byte(system+"/"+name)).String()
}

// Export captures every dimension in reg, in declaration order
func Export(reg *dimension.Registry, system string) Snapshot {
	all := reg.All()
	snap := Snapshot{
		ID:        uuid.New().String(),
		System:    system,
		CreatedAt: time.Now(),
		Entries:   make([]Entry, 0, len(all)),
	}
	for _, d := range all {
		snap.Entries = append(snap.Entries, exportEntry(d, system))
	}
	return snap
}

func exportEntry(d dimension.Dimension, system string) Entry {
	formula, _ := dimension.Symbol(d, dimension.DefaultStyle)
	e := Entry{
		ID:      EntryID(system, d.String()),
		Name:    d.String(),
		Kind:    d.Kind().String(),
		Formula: formula,
	}
	for _, t := range d.Terms() {
		e.Terms = append(e.Terms, TermEntry{Base: t.Base.Name(), Exp: t.Exp})
	}
	switch v := d.(type) {
	case *dimension.Base:
		e.Symbol = v.Label().String()
	case *dimension.Named:
		if !dimension.IsAnonymous(v.Parent()) {
			e.Parent = v.Parent().String()
		}
	}
	return e
}

// Config converts the snapshot back into a catalog that rebuilds the same
// registry. Specializations of named dimensions keep their parent; the rest
// are written as expressions over base names.
func (s Snapshot) Config() types.Config {
	cfg := types.Config{System: s.System}
	for _, e := range s.Entries {
		switch e.Kind {
		case types.Base.String():
			cfg.Bases = append(cfg.Bases, types.BaseConfig{Name: e.Name, Symbol: e.Symbol})
		case types.Named.String():
			d := types.DerivedConfig{Name: e.Name, Of: e.Parent}
			if e.Parent == "" {
				d.Expr = termsExpr(e.Terms)
			}
			cfg.Derived = append(cfg.Derived, d)
		}
	}
	return cfg
}

func termsExpr(terms []TermEntry) string {
	if len(terms) == 0 {
		return "1"
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.Base
		if t.Exp != 1 {
			parts[i] += "^" + strconv.Itoa(t.Exp)
		}
	}
	return strings.Join(parts, " * ")
}
