package quantity

import "github.com/vk/cookgraph/internal/symbol"

// Measurement quantifies an ingredient amount. Exactly one of three shapes:
//
//   - Absolute: value present, unit optional ("2 cups", "3").
//   - Relative: valueMin and valueMax present, unit required ("1-2 cups").
//   - UnitOnly: only a unit, no value fields ("a pinch").
type Measurement struct {
	Kind     Kind
	Value    float64
	ValueMin float64
	ValueMax float64
	Unit     *symbol.Symbol
}

// NewMeasurement selects the measurement variant from raw field presence. The
// unit, when given, must already be a resolved UNIT symbol.
func NewMeasurement(value, valueMin, valueMax *float64, unit *symbol.Symbol) (*Measurement, error) {
	const q = "measurement"

	if err := checkNonNegative(q, value, valueMin, valueMax); err != nil {
		return nil, err
	}

	hasRange := present(valueMin) && present(valueMax)
	if present(value) && (present(valueMin) || present(valueMax)) {
		return nil, &AmbiguousQuantityError{Quantity: q, Shapes: []string{"absolute", "relative"}}
	}

	switch {
	case present(value):
		return &Measurement{Kind: Absolute, Value: *value, Unit: unit}, nil

	case hasRange:
		if unit == nil {
			return nil, &IncompleteQuantityError{Quantity: q, Reason: "range requires a unit"}
		}
		if err := checkRange(q, *valueMin, *valueMax); err != nil {
			return nil, err
		}
		return &Measurement{Kind: Relative, ValueMin: *valueMin, ValueMax: *valueMax, Unit: unit}, nil

	case present(valueMin) || present(valueMax):
		return nil, &IncompleteQuantityError{Quantity: q, Reason: "range requires both valueMin and valueMax"}

	case unit != nil:
		return &Measurement{Kind: UnitOnly, Unit: unit}, nil
	}

	return nil, &IncompleteQuantityError{Quantity: q, Reason: "no value, range or unit supplied"}
}
