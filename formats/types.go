package formats

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/nanounits/dimension"
)

// Format is a named symbol style
type Format struct {
	// Name is the format identifier (alphanumeric, dashes, underscores, lowercase)
	Name string

	// Description is a one-line summary shown by tooling
	Description string

	// Style controls how formulas are rendered
	Style dimension.Style
}

// Render returns the symbol of d in this format
func (f *Format) Render(d dimension.Dimension) (string, error) {
	return dimension.Symbol(d, f.Style)
}

var (
	mu sync.RWMutex
	// registry holds all available formats
	registry = make(map[string]*Format)
)

// Register adds a new format to the registry
func Register(format *Format) error {
	// Validate format name (alphanumeric, dashes, underscores, lowercase)
	if !isValidFormatName(format.Name) {
		return fmt.Errorf("invalid format name %q: must be lowercase alphanumeric with dashes and underscores only", format.Name)
	}
	if err := format.Style.Validate(); err != nil {
		return fmt.Errorf("format %q: %w", format.Name, err)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[format.Name]; exists {
		return fmt.Errorf("format %q already registered", format.Name)
	}

	registry[format.Name] = format
	return nil
}

// Get returns a format by name
func Get(name string) (*Format, error) {
	mu.RLock()
	defer mu.RUnlock()

	format, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown format %q", name)
	}
	return format, nil
}

// List returns all registered format names, sorted
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// isValidFormatName checks if a format name is valid
func isValidFormatName(name string) bool {
	if name == "" {
		return false
	}

	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' && r != '_' {
			return false
		}
	}
	return true
}
