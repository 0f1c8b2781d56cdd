package quantity

import "github.com/vk/cookgraph/internal/symbol"

// Temperature specifies a cooking temperature. Exactly one of:
//
//   - Absolute: value and unit ("180 celsius").
//   - Relative range: valueMin, valueMax and unit ("160-180 celsius").
//   - Relative level: a lone qualitative level symbol ("medium-high"), with
//     no unit or value fields. The level must descend from the
//     TEMPERATURE_RELATIVE item-property category.
type Temperature struct {
	Kind     Kind
	Value    float64
	ValueMin float64
	ValueMax float64
	Unit     *symbol.Symbol
	Level    *symbol.Symbol
}

// NewTemperature selects the temperature variant from raw field presence.
func NewTemperature(value, valueMin, valueMax *float64, unit, level *symbol.Symbol) (*Temperature, error) {
	const q = "temperature"

	if err := checkNonNegative(q, value, valueMin, valueMax); err != nil {
		return nil, err
	}

	if level != nil {
		// The level form admits no other fields.
		if present(value) || present(valueMin) || present(valueMax) || unit != nil {
			return nil, &AmbiguousQuantityError{Quantity: q, Shapes: []string{"numeric", "level"}}
		}
		if !level.HasCategory(symbol.CategoryTemperatureRelative) {
			return nil, &symbol.IllegalCategoryError{
				Symbol:   level.CanonicalForm,
				Type:     level.Type,
				Required: symbol.CategoryTemperatureRelative,
			}
		}
		return &Temperature{Kind: Relative, Level: level}, nil
	}

	if present(value) && (present(valueMin) || present(valueMax)) {
		return nil, &AmbiguousQuantityError{Quantity: q, Shapes: []string{"absolute", "relative"}}
	}

	switch {
	case present(value):
		if unit == nil {
			return nil, &IncompleteQuantityError{Quantity: q, Reason: "absolute temperature requires a unit"}
		}
		if err := checkUnitSubtree(q, unit, symbol.CategoryTemperature); err != nil {
			return nil, err
		}
		return &Temperature{Kind: Absolute, Value: *value, Unit: unit}, nil

	case present(valueMin) && present(valueMax):
		if unit == nil {
			return nil, &IncompleteQuantityError{Quantity: q, Reason: "temperature range requires a unit"}
		}
		if err := checkRange(q, *valueMin, *valueMax); err != nil {
			return nil, err
		}
		if err := checkUnitSubtree(q, unit, symbol.CategoryTemperature); err != nil {
			return nil, err
		}
		return &Temperature{Kind: Relative, ValueMin: *valueMin, ValueMax: *valueMax, Unit: unit}, nil

	case present(valueMin) || present(valueMax):
		return nil, &IncompleteQuantityError{Quantity: q, Reason: "range requires both valueMin and valueMax"}
	}

	return nil, &IncompleteQuantityError{Quantity: q, Reason: "no value, range or level supplied"}
}
