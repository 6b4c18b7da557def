package consulta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"credigate/internal/consulta"
)

func TestFactory_CreateBuiltins(t *testing.T) {
	f := consulta.NewFactory()

	standard, ok := f.Create("standard-cpf")
	assert.True(t, ok)
	premium, ok := f.Create("premium")
	assert.True(t, ok)
	corporate, ok := f.Create("corporate")
	assert.True(t, ok)

	// Distinct instances with distinct restrictions.
	assert.NotSame(t, standard, premium)
	assert.Equal(t, consulta.AcceptsCPF, standard.DocumentTypes())
	assert.Equal(t, consulta.AcceptsBoth, premium.DocumentTypes())
	assert.Equal(t, consulta.AcceptsCNPJ, corporate.DocumentTypes())

	assert.Equal(t, "cpf", standard.FieldName())
	assert.Equal(t, "document", premium.FieldName())
	assert.Equal(t, "cnpj", corporate.FieldName())
}

func TestFactory_UnknownSlug(t *testing.T) {
	f := consulta.NewFactory()

	s, ok := f.Create("nonexistent-slug")
	assert.False(t, ok)
	assert.Nil(t, s)
	assert.False(t, f.Has("nonexistent-slug"))
}

func TestFactory_RegisterReplaces(t *testing.T) {
	f := consulta.NewFactory()

	// Force built-in registration, then shadow a slug.
	_, _ = f.Create("standard-cpf")
	f.Register(stubStrategy{slug: "standard-cpf"})

	s, ok := f.Create("standard-cpf")
	assert.True(t, ok)
	_, isStub := s.(stubStrategy)
	assert.True(t, isStub)
}

func TestFactory_Slugs(t *testing.T) {
	f := consulta.NewFactory()
	slugs := f.Slugs()
	assert.ElementsMatch(t, []string{"standard-cpf", "premium", "corporate"}, slugs)
	assert.Len(t, f.All(), 3)
}
