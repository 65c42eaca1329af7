package manager

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/mini-tables/internal/domain/schema"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	a := schema.New("a")
	b := schema.New("b")

	assert.NilError(t, r.Register(b))
	assert.NilError(t, r.Register(a))
	assert.ErrorContains(t, r.Register(schema.New("a")), "already registered")
	assert.ErrorContains(t, r.Register(nil), "nil or released")

	got, ok := r.Get("a")
	assert.Assert(t, ok)
	assert.Equal(t, got, a)
	assert.DeepEqual(t, r.Names(), []string{"a", "b"})

	assert.NilError(t, r.Release("a"))
	assert.Assert(t, a.Released())
	assert.ErrorContains(t, r.Release("a"), "not registered")

	assert.NilError(t, r.ReleaseAll())
	assert.Assert(t, b.Released())
	assert.Equal(t, len(r.Names()), 0)
}

func TestRegistry_ReleaseAllReportsDoubleRelease(t *testing.T) {
	r := NewRegistry()
	a := schema.New("a")
	assert.NilError(t, r.Register(a))

	// Released behind the registry's back.
	assert.NilError(t, a.Release())

	assert.ErrorContains(t, r.ReleaseAll(), "released")
	assert.Equal(t, len(r.Names()), 0)
}
