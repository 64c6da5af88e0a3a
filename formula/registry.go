package formula

import (
	"sort"
	"sync"
)

// Converter converts math markup in one dialect to LaTeX.
type Converter interface {
	// Convert returns the LaTeX equivalent of the given markup.
	Convert(markup string) (string, error)
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc func(markup string) (string, error)

// Convert calls the underlying function.
func (f ConverterFunc) Convert(markup string) (string, error) {
	return f(markup)
}

var (
	mu       sync.RWMutex
	registry = map[string]Converter{}
)

// Register makes a converter available for the given notation (e.g. "omml",
// "mtef", "latex"). Registering nil removes the notation. A later Register
// for the same notation replaces the earlier one.
func Register(notation string, c Converter) {
	mu.Lock()
	defer mu.Unlock()
	if c == nil {
		delete(registry, notation)
		return
	}
	registry[notation] = c
}

// Lookup returns the converter registered for the notation, if any.
func Lookup(notation string) (Converter, bool) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := registry[notation]
	return c, ok
}

// Notations returns the registered notations in sorted order.
func Notations() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	// Markup that is already LaTeX passes through unchanged.
	Register("latex", ConverterFunc(func(markup string) (string, error) {
		return markup, nil
	}))
}
