package mariadb

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cookgraph/internal/symbol"
)

func TestAssemble(t *testing.T) {
	canonicals := []canonicalRow{
		{ID: 1, Name: "all-purpose flour", Description: sql.NullString{String: "Plain wheat flour.", Valid: true}},
		{ID: 2, Name: "rolled oats"},
	}
	aliases := []aliasRow{
		{CanonicalID: 1, Alias: "AP flour"},
		{CanonicalID: 1, Alias: "plain flour"},
	}
	categories := []categoryRow{
		{CanonicalID: 1, Category: "GRAIN_CEREAL_WHEAT"},
		{CanonicalID: 2, Category: "GRAIN_CEREAL_OAT"},
	}

	syms := assemble(symbol.TypeIngredientIdentity, canonicals, aliases, categories)
	require.Len(t, syms, 2)

	flour := syms[0]
	assert.Equal(t, 1, flour.ID)
	assert.Equal(t, symbol.TypeIngredientIdentity, flour.Type)
	assert.Equal(t, "all-purpose flour", flour.CanonicalForm)
	assert.ElementsMatch(t, []string{"AP flour", "plain flour"}, flour.Aliases)
	assert.Equal(t, []symbol.Category{"GRAIN_CEREAL_WHEAT"}, flour.Categories)
	assert.Equal(t, "Plain wheat flour.", flour.Description)

	oats := syms[1]
	assert.Empty(t, oats.Aliases)
	assert.Empty(t, oats.Description)
}

func TestAssemble_FeedsBuilder(t *testing.T) {
	canonicals := []canonicalRow{{ID: 10, Name: "gram"}}
	aliases := []aliasRow{{CanonicalID: 10, Alias: "g"}}
	categories := []categoryRow{{CanonicalID: 10, Category: "MASS_METRIC"}}

	b := symbol.NewBuilder()
	for _, s := range assemble(symbol.TypeUnit, canonicals, aliases, categories) {
		require.NoError(t, b.Add(s))
	}
	reg := b.Build()

	s, err := reg.Resolve("g", symbol.TypeUnit)
	require.NoError(t, err)
	assert.Equal(t, "gram", s.CanonicalForm)

	byID, ok := reg.ByID(symbol.TypeUnit, 10)
	require.True(t, ok)
	assert.Same(t, s, byID)
}

func TestTermTablesCoverEveryType(t *testing.T) {
	covered := make(map[symbol.Type]bool)
	for _, typ := range termTables {
		covered[typ] = true
	}
	for _, typ := range symbol.Types {
		assert.True(t, covered[typ], "no term table for type %s", typ)
	}
}
