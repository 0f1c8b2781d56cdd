package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cookgraph/internal/symbol"
)

func levelSym(name string, cat symbol.Category) *symbol.Symbol {
	return &symbol.Symbol{
		Type:          symbol.TypeItemProperty,
		CanonicalForm: name,
		Categories:    []symbol.Category{cat},
	}
}

func TestNewTemperature(t *testing.T) {
	celsius := unitSym("celsius", "TEMPERATURE")
	mediumHigh := levelSym("medium-high", "TEMPERATURE_RELATIVE")

	t.Run("absolute", func(t *testing.T) {
		temp, err := NewTemperature(f(180), nil, nil, celsius, nil)
		require.NoError(t, err)
		assert.Equal(t, Absolute, temp.Kind)
		assert.Equal(t, 180.0, temp.Value)
	})

	t.Run("absolute without unit is incomplete", func(t *testing.T) {
		_, err := NewTemperature(f(180), nil, nil, nil, nil)
		var incomplete *IncompleteQuantityError
		require.ErrorAs(t, err, &incomplete)
	})

	t.Run("relative range", func(t *testing.T) {
		temp, err := NewTemperature(nil, f(160), f(180), celsius, nil)
		require.NoError(t, err)
		assert.Equal(t, Relative, temp.Kind)
		assert.Nil(t, temp.Level)
	})

	t.Run("lone level", func(t *testing.T) {
		temp, err := NewTemperature(nil, nil, nil, nil, mediumHigh)
		require.NoError(t, err)
		assert.Equal(t, Relative, temp.Kind)
		assert.Equal(t, mediumHigh, temp.Level)
	})

	t.Run("level alongside numeric fields is ambiguous", func(t *testing.T) {
		_, err := NewTemperature(f(180), nil, nil, celsius, mediumHigh)
		var ambiguous *AmbiguousQuantityError
		require.ErrorAs(t, err, &ambiguous)
	})

	t.Run("level outside TEMPERATURE_RELATIVE is illegal", func(t *testing.T) {
		coarse := levelSym("coarse", "TEXTURE")
		_, err := NewTemperature(nil, nil, nil, nil, coarse)
		var illegal *symbol.IllegalCategoryError
		require.ErrorAs(t, err, &illegal)
		assert.Equal(t, symbol.CategoryTemperatureRelative, illegal.Required)
	})

	t.Run("unit outside TEMPERATURE subtree", func(t *testing.T) {
		cup := unitSym("cup", "VOLUME")
		_, err := NewTemperature(f(180), nil, nil, cup, nil)
		var unitErr *UnitCategoryError
		require.ErrorAs(t, err, &unitErr)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := NewTemperature(nil, f(200), f(150), celsius, nil)
		var inverted *InvertedRangeError
		require.ErrorAs(t, err, &inverted)
	})

	t.Run("value plus range is ambiguous", func(t *testing.T) {
		_, err := NewTemperature(f(180), f(160), f(180), celsius, nil)
		var ambiguous *AmbiguousQuantityError
		require.ErrorAs(t, err, &ambiguous)
	})
}
