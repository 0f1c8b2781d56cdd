package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDimensions(t *testing.T) {
	cm := unitSym("centimeter", "LENGTH")

	t.Run("absolute 3D", func(t *testing.T) {
		d, err := NewDimensions([]float64{2, 3, 1}, nil, nil, cm)
		require.NoError(t, err)
		assert.Equal(t, Absolute, d.Kind)
		assert.Equal(t, 3, d.Arity())
	})

	t.Run("absolute 1D", func(t *testing.T) {
		d, err := NewDimensions([]float64{5}, nil, nil, cm)
		require.NoError(t, err)
		assert.Equal(t, 1, d.Arity())
	})

	t.Run("relative", func(t *testing.T) {
		d, err := NewDimensions(nil, []float64{1, 1}, []float64{2, 3}, cm)
		require.NoError(t, err)
		assert.Equal(t, Relative, d.Kind)
		assert.Equal(t, 2, d.Arity())
	})

	t.Run("arity mismatch between min and max", func(t *testing.T) {
		_, err := NewDimensions(nil, []float64{1, 1}, []float64{2}, cm)
		var arity *DimensionArityError
		require.ErrorAs(t, err, &arity)
		assert.Equal(t, 2, arity.MinArity)
		assert.Equal(t, 1, arity.MaxArity)
	})

	t.Run("more than three axes", func(t *testing.T) {
		_, err := NewDimensions([]float64{1, 2, 3, 4}, nil, nil, cm)
		var arity *DimensionArityError
		require.ErrorAs(t, err, &arity)
	})

	t.Run("element-wise inverted range", func(t *testing.T) {
		_, err := NewDimensions(nil, []float64{1, 5}, []float64{2, 3}, cm)
		var inverted *InvertedRangeError
		require.ErrorAs(t, err, &inverted)
		assert.Equal(t, 5.0, inverted.Min)
	})

	t.Run("absolute plus relative is ambiguous", func(t *testing.T) {
		_, err := NewDimensions([]float64{1}, []float64{1}, []float64{2}, cm)
		var ambiguous *AmbiguousQuantityError
		require.ErrorAs(t, err, &ambiguous)
	})

	t.Run("missing unit is incomplete", func(t *testing.T) {
		_, err := NewDimensions([]float64{1}, nil, nil, nil)
		var incomplete *IncompleteQuantityError
		require.ErrorAs(t, err, &incomplete)
	})

	t.Run("unit outside LENGTH subtree", func(t *testing.T) {
		cup := unitSym("cup", "VOLUME")
		_, err := NewDimensions([]float64{1}, nil, nil, cup)
		var unitErr *UnitCategoryError
		require.ErrorAs(t, err, &unitErr)
	})

	t.Run("negative entry", func(t *testing.T) {
		_, err := NewDimensions([]float64{-1}, nil, nil, cm)
		var negative *NegativeValueError
		require.ErrorAs(t, err, &negative)
	})

	t.Run("nothing supplied", func(t *testing.T) {
		_, err := NewDimensions(nil, nil, nil, nil)
		var incomplete *IncompleteQuantityError
		require.ErrorAs(t, err, &incomplete)
	})
}
