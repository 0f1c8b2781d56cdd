package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDuration(t *testing.T) {
	minutes := unitSym("minute", "TIME")

	t.Run("absolute", func(t *testing.T) {
		d, err := NewDuration(f(10), nil, nil, minutes)
		require.NoError(t, err)
		assert.Equal(t, Absolute, d.Kind)
		assert.Equal(t, 10.0, d.Value)
	})

	t.Run("relative", func(t *testing.T) {
		d, err := NewDuration(nil, f(10), f(15), minutes)
		require.NoError(t, err)
		assert.Equal(t, Relative, d.Kind)
	})

	t.Run("no unit-only form", func(t *testing.T) {
		_, err := NewDuration(nil, nil, nil, minutes)
		var incomplete *IncompleteQuantityError
		require.ErrorAs(t, err, &incomplete)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := NewDuration(nil, f(10), f(5), minutes)
		var inverted *InvertedRangeError
		require.ErrorAs(t, err, &inverted)
		assert.Equal(t, 10.0, inverted.Min)
		assert.Equal(t, 5.0, inverted.Max)
	})

	t.Run("unit outside TIME subtree", func(t *testing.T) {
		gram := unitSym("gram", "MASS")
		_, err := NewDuration(f(10), nil, nil, gram)
		var unitErr *UnitCategoryError
		require.ErrorAs(t, err, &unitErr)
		assert.Equal(t, "gram", unitErr.Unit)
	})

	t.Run("value plus range is ambiguous", func(t *testing.T) {
		_, err := NewDuration(f(10), f(5), f(15), minutes)
		var ambiguous *AmbiguousQuantityError
		require.ErrorAs(t, err, &ambiguous)
	})

	t.Run("missing unit is incomplete", func(t *testing.T) {
		_, err := NewDuration(f(10), nil, nil, nil)
		var incomplete *IncompleteQuantityError
		require.ErrorAs(t, err, &incomplete)
	})
}
