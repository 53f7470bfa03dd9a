package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventario/internal/validation"
)

func TestRegistry_ResolveKnownEntities(t *testing.T) {
	reg := validation.NewRegistry()

	for _, key := range []string{"usuario", "estado", "inventario", "ubicacion", "elemento", "reporte"} {
		rules, err := reg.Resolve(key)
		require.NoError(t, err, "entity %q", key)
		assert.NotEmpty(t, rules, "entity %q", key)
	}
}

func TestRegistry_ResolveCaseInsensitive(t *testing.T) {
	reg := validation.NewRegistry()

	lower, err := reg.Resolve("estado")
	require.NoError(t, err)

	for _, key := range []string{"Estado", "ESTADO", "eStAdO"} {
		rules, err := reg.Resolve(key)
		require.NoError(t, err, "entity %q", key)
		assert.Equal(t, lower, rules)
	}
}

func TestRegistry_ResolveUnknownEntity(t *testing.T) {
	reg := validation.NewRegistry()

	_, err := reg.Resolve("producto")
	assert.ErrorIs(t, err, validation.ErrEntityNotRegistered)
}

func TestRegistry_StateRules(t *testing.T) {
	reg := validation.NewRegistry()

	rules, err := reg.Resolve("estado")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, validation.Rule{
		Name:     "nombre",
		Required: true,
		Minimum:  3,
		Maximum:  20,
		Kind:     validation.KindText,
	}, rules[0])
}

func TestBindings_EntityFor(t *testing.T) {
	entity, ok := validation.DefaultBindings.EntityFor("estados.create")
	require.True(t, ok)
	assert.Equal(t, "estado", entity)

	_, ok = validation.DefaultBindings.EntityFor("estados.list")
	assert.False(t, ok)
}

func TestBindings_EveryEntryResolvesInRegistry(t *testing.T) {
	reg := validation.NewRegistry()

	for op, entity := range validation.DefaultBindings {
		_, err := reg.Resolve(entity)
		assert.NoError(t, err, "binding %q -> %q", op, entity)
	}
}
