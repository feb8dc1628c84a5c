// Package catalog loads dimension declarations from YAML or JSON files into a
// dimension.Registry, and exports registries back as portable snapshots.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/nanounits/dimension"
	"github.com/arthur-debert/nanounits/internal/validation"
	"github.com/arthur-debert/nanounits/types"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a catalog file
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatFromPath infers the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("unsupported catalog extension %q", filepath.Ext(path))
	}
}

// Load reads and decodes the catalog at path
func Load(path string) (types.Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return types.Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Config{}, fmt.Errorf("failed to read catalog: %w", err)
	}
	cfg, err := Decode(data, format)
	if err != nil {
		return types.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses catalog data in the given format
func Decode(data []byte, format Format) (types.Config, error) {
	var cfg types.Config
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return types.Config{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case JSON:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return types.Config{}, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return types.Config{}, fmt.Errorf("unknown catalog format %q", format)
	}
	return cfg, nil
}

// Apply validates cfg and declares its dimensions in reg, bases first and then
// derived dimensions in file order. Derived expressions may refer to anything
// already in reg, so catalogs can extend one another.
//
// Declarations are not rolled back: when Apply fails part way, the dimensions
// declared before the failure stay registered.
func Apply(cfg types.Config, reg *dimension.Registry) error {
	if err := validation.Validate(cfg); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	var opts []dimension.BaseOption
	if cfg.System != "" {
		opts = append(opts, dimension.WithSystem(cfg.System))
	}

	for _, b := range cfg.Bases {
		if _, err := reg.DeclareBase(b.Name, b.Symbol, opts...); err != nil {
			return err
		}
	}

	for _, d := range cfg.Derived {
		if err := applyDerived(d, reg); err != nil {
			return err
		}
	}
	return nil
}

func applyDerived(d types.DerivedConfig, reg *dimension.Registry) error {
	if d.Expr != "" {
		_, err := reg.DefineExpr(d.Name, d.Expr)
		return err
	}
	parent, err := reg.Resolve(d.Of)
	if err != nil {
		return fmt.Errorf("define %s: %w", d.Name, err)
	}
	_, err = reg.Define(d.Name, parent)
	return err
}

// LoadInto loads the catalog at path and applies it to reg
func LoadInto(path string, reg *dimension.Registry) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	return Apply(cfg, reg)
}
