package manager

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/leengari/mini-tables/internal/domain/schema"
)

// Registry tracks the live tables of a program run by name so that each one
// is released exactly once at shutdown. It has no locking.
type Registry struct {
	loaded map[string]*schema.Table
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		loaded: make(map[string]*schema.Table),
	}
}

// Register adds a live table under its name.
func (r *Registry) Register(t *schema.Table) error {
	if t == nil || t.Released() {
		return fmt.Errorf("cannot register a nil or released table")
	}
	if _, ok := r.loaded[t.Name()]; ok {
		return fmt.Errorf("table %q already registered", t.Name())
	}
	r.loaded[t.Name()] = t
	return nil
}

// Get returns the registered table with the given name.
func (r *Registry) Get(name string) (*schema.Table, bool) {
	t, ok := r.loaded[name]
	return t, ok
}

// Names lists registered table names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.loaded))
	for name := range r.loaded {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Release releases and forgets one table.
func (r *Registry) Release(name string) error {
	t, ok := r.loaded[name]
	if !ok {
		return fmt.Errorf("table %q not registered", name)
	}
	delete(r.loaded, name)
	return t.Release()
}

// ReleaseAll releases every registered table, in name order, and empties the
// registry. Errors from individual tables are joined.
func (r *Registry) ReleaseAll() error {
	var errs []error
	for _, name := range r.Names() {
		if err := r.Release(name); err != nil {
			errs = append(errs, err)
		}
	}
	slog.Debug("registry released all tables", "errors", len(errs))
	return stderrors.Join(errs...)
}
