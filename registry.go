package qecc

import (
	"fmt"
	"sort"
	"sync"
)

/*
Registry maps code names to Code implementations. It is filled once during
setup and sealed; after that it only serves lookups and can be shared by any
number of concurrent runs.
*/
type Registry struct {
	mu     sync.RWMutex
	codes  map[string]Code
	sealed bool
}

func NewRegistry() *Registry {
	return &Registry{
		codes: make(map[string]Code),
	}
}

// Register adds code under its own name.
func (r *Registry) Register(code Code) error {
	if code == nil || code.Name() == "" {
		return fmt.Errorf("%w: code must be non-nil and named", ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("%w: cannot add %s", ErrRegistrySealed, code.Name())
	}
	if _, exists := r.codes[code.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCode, code.Name())
	}

	r.codes[code.Name()] = code
	return nil
}

// Seal makes the registry read-only.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

func (r *Registry) Lookup(name string) (Code, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	code, ok := r.codes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCode, name)
	}
	return code, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.codes))
	for name := range r.codes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, code := range []Code{
		NewShorCode(),
		NewSteaneCode(),
		NewRepetitionCode(),
		NewParityCode(),
	} {
		if err := r.Register(code); err != nil {
			panic(err)
		}
	}
	r.Seal()
	return r
}

// DefaultRegistry returns the sealed process-wide registry holding the
// built-in codes.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Lookup finds a built-in code by name.
func Lookup(name string) (Code, error) {
	return defaultRegistry.Lookup(name)
}
