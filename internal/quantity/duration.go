package quantity

import "github.com/vk/cookgraph/internal/symbol"

// Duration specifies how long an instruction runs. Exactly one of:
//
//   - Absolute: value and unit ("10 min").
//   - Relative: valueMin, valueMax and unit ("10-15 min").
//
// There is no unit-only or level form. The unit must descend from the TIME
// unit category.
type Duration struct {
	Kind     Kind
	Value    float64
	ValueMin float64
	ValueMax float64
	Unit     *symbol.Symbol
}

// NewDuration selects the duration variant from raw field presence.
func NewDuration(value, valueMin, valueMax *float64, unit *symbol.Symbol) (*Duration, error) {
	const q = "duration"

	if err := checkNonNegative(q, value, valueMin, valueMax); err != nil {
		return nil, err
	}
	if present(value) && (present(valueMin) || present(valueMax)) {
		return nil, &AmbiguousQuantityError{Quantity: q, Shapes: []string{"absolute", "relative"}}
	}

	switch {
	case present(value):
		if unit == nil {
			return nil, &IncompleteQuantityError{Quantity: q, Reason: "absolute duration requires a unit"}
		}
		if err := checkUnitSubtree(q, unit, symbol.CategoryTime); err != nil {
			return nil, err
		}
		return &Duration{Kind: Absolute, Value: *value, Unit: unit}, nil

	case present(valueMin) && present(valueMax):
		if unit == nil {
			return nil, &IncompleteQuantityError{Quantity: q, Reason: "duration range requires a unit"}
		}
		if err := checkRange(q, *valueMin, *valueMax); err != nil {
			return nil, err
		}
		if err := checkUnitSubtree(q, unit, symbol.CategoryTime); err != nil {
			return nil, err
		}
		return &Duration{Kind: Relative, ValueMin: *valueMin, ValueMax: *valueMax, Unit: unit}, nil

	case present(valueMin) || present(valueMax):
		return nil, &IncompleteQuantityError{Quantity: q, Reason: "range requires both valueMin and valueMax"}
	}

	return nil, &IncompleteQuantityError{Quantity: q, Reason: "no value or range supplied"}
}
