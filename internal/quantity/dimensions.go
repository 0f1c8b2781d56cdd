package quantity

import "github.com/vk/cookgraph/internal/symbol"

// Dimensions specifies the physical size of an item in 1 to 3 axes. Exactly
// one of:
//
//   - Absolute: values (1-3 entries) and unit ("2x3x1 cm").
//   - Relative: valuesMin and valuesMax of equal arity (1-3) and unit.
//
// The unit must descend from the LENGTH unit category.
type Dimensions struct {
	Kind      Kind
	Values    []float64
	ValuesMin []float64
	ValuesMax []float64
	Unit      *symbol.Symbol
}

// Arity returns the number of axes.
func (d *Dimensions) Arity() int {
	if d.Kind == Absolute {
		return len(d.Values)
	}
	return len(d.ValuesMin)
}

// NewDimensions selects the dimensions variant from raw field presence.
func NewDimensions(values, valuesMin, valuesMax []float64, unit *symbol.Symbol) (*Dimensions, error) {
	const q = "dimensions"

	if len(values) > 0 && (len(valuesMin) > 0 || len(valuesMax) > 0) {
		return nil, &AmbiguousQuantityError{Quantity: q, Shapes: []string{"absolute", "relative"}}
	}

	switch {
	case len(values) > 0:
		if len(values) > 3 {
			return nil, &DimensionArityError{MinArity: len(values), MaxArity: len(values)}
		}
		if unit == nil {
			return nil, &IncompleteQuantityError{Quantity: q, Reason: "dimensions require a unit"}
		}
		for _, v := range values {
			if v < 0 {
				return nil, &NegativeValueError{Quantity: q, Value: v}
			}
		}
		if err := checkUnitSubtree(q, unit, symbol.CategoryLength); err != nil {
			return nil, err
		}
		return &Dimensions{Kind: Absolute, Values: values, Unit: unit}, nil

	case len(valuesMin) > 0 && len(valuesMax) > 0:
		if len(valuesMin) != len(valuesMax) {
			return nil, &DimensionArityError{MinArity: len(valuesMin), MaxArity: len(valuesMax)}
		}
		if len(valuesMin) > 3 {
			return nil, &DimensionArityError{MinArity: len(valuesMin), MaxArity: len(valuesMax)}
		}
		if unit == nil {
			return nil, &IncompleteQuantityError{Quantity: q, Reason: "dimensions require a unit"}
		}
		for i := range valuesMin {
			if valuesMin[i] < 0 {
				return nil, &NegativeValueError{Quantity: q, Value: valuesMin[i]}
			}
			if valuesMax[i] < 0 {
				return nil, &NegativeValueError{Quantity: q, Value: valuesMax[i]}
			}
			if valuesMin[i] > valuesMax[i] {
				return nil, &InvertedRangeError{Quantity: q, Min: valuesMin[i], Max: valuesMax[i]}
			}
		}
		if err := checkUnitSubtree(q, unit, symbol.CategoryLength); err != nil {
			return nil, err
		}
		return &Dimensions{Kind: Relative, ValuesMin: valuesMin, ValuesMax: valuesMax, Unit: unit}, nil

	case len(valuesMin) > 0 || len(valuesMax) > 0:
		return nil, &IncompleteQuantityError{Quantity: q, Reason: "range requires both valuesMin and valuesMax"}
	}

	return nil, &IncompleteQuantityError{Quantity: q, Reason: "no values or ranges supplied"}
}
