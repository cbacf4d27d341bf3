package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Reporter writes a Result to w in one output format.
type Reporter interface {
	Generate(w io.Writer, res *Result) error
}

var (
	mu      sync.RWMutex
	formats = make(map[string]Reporter)
)

// Register adds an output format to the global registry.
// Panics if the name is already taken.
func Register(name string, r Reporter) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := formats[name]; exists {
		panic(fmt.Sprintf("report: format %q already registered", name))
	}
	formats[name] = r
}

// Get returns the reporter for a registered format name.
func Get(name string) (Reporter, error) {
	mu.RLock()
	defer mu.RUnlock()

	r, ok := formats[name]
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q; available: %s", name, strings.Join(listLocked(), ", "))
	}
	return r, nil
}

// List returns the registered format names in sorted order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	return listLocked()
}

// listLocked returns sorted format names. Caller must hold mu.
func listLocked() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
