package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cookgraph/internal/symbol"
)

func f(v float64) *float64 { return &v }

func unitSym(name string, cat symbol.Category) *symbol.Symbol {
	return &symbol.Symbol{
		Type:          symbol.TypeUnit,
		CanonicalForm: name,
		Categories:    []symbol.Category{cat},
	}
}

func TestNewMeasurement(t *testing.T) {
	cup := unitSym("cup", "VOLUME")

	t.Run("absolute with unit", func(t *testing.T) {
		m, err := NewMeasurement(f(2), nil, nil, cup)
		require.NoError(t, err)
		assert.Equal(t, Absolute, m.Kind)
		assert.Equal(t, 2.0, m.Value)
		assert.Equal(t, cup, m.Unit)
	})

	t.Run("absolute without unit", func(t *testing.T) {
		m, err := NewMeasurement(f(3), nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, Absolute, m.Kind)
		assert.Nil(t, m.Unit)
	})

	t.Run("relative range", func(t *testing.T) {
		m, err := NewMeasurement(nil, f(1), f(3), cup)
		require.NoError(t, err)
		assert.Equal(t, Relative, m.Kind)
		assert.Equal(t, 1.0, m.ValueMin)
		assert.Equal(t, 3.0, m.ValueMax)
	})

	t.Run("unit-only is its own variant", func(t *testing.T) {
		m, err := NewMeasurement(nil, nil, nil, cup)
		require.NoError(t, err)
		assert.Equal(t, UnitOnly, m.Kind)
		assert.Equal(t, cup, m.Unit)
	})

	t.Run("value plus range is ambiguous", func(t *testing.T) {
		_, err := NewMeasurement(f(2), f(1), f(3), cup)
		var ambiguous *AmbiguousQuantityError
		require.ErrorAs(t, err, &ambiguous)
	})

	t.Run("half a range is incomplete", func(t *testing.T) {
		_, err := NewMeasurement(nil, f(1), nil, cup)
		var incomplete *IncompleteQuantityError
		require.ErrorAs(t, err, &incomplete)
	})

	t.Run("range without unit is incomplete", func(t *testing.T) {
		_, err := NewMeasurement(nil, f(1), f(3), nil)
		var incomplete *IncompleteQuantityError
		require.ErrorAs(t, err, &incomplete)
	})

	t.Run("nothing supplied is incomplete", func(t *testing.T) {
		_, err := NewMeasurement(nil, nil, nil, nil)
		var incomplete *IncompleteQuantityError
		require.ErrorAs(t, err, &incomplete)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := NewMeasurement(nil, f(3), f(1), cup)
		var inverted *InvertedRangeError
		require.ErrorAs(t, err, &inverted)
		assert.Equal(t, 3.0, inverted.Min)
		assert.Equal(t, 1.0, inverted.Max)
	})

	t.Run("negative value", func(t *testing.T) {
		_, err := NewMeasurement(f(-1), nil, nil, cup)
		var negative *NegativeValueError
		require.ErrorAs(t, err, &negative)
	})
}
