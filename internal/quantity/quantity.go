package quantity

import (
	"fmt"

	"github.com/vk/cookgraph/internal/symbol"
)

// Kind discriminates the variants of a quantity union.
type Kind int

const (
	// Absolute is a single exact value.
	Absolute Kind = iota
	// Relative is a min/max range (or, for Temperature, a qualitative level).
	Relative
	// UnitOnly is a qualitative measurement with no numeric value, e.g.
	// "a pinch of salt". Only Measurement has this variant.
	UnitOnly
)

func (k Kind) String() string {
	switch k {
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	case UnitOnly:
		return "unit-only"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// UnitCategoryError reports a unit symbol outside the unit-category subtree
// required by the quantity type, e.g. a Duration whose unit does not descend
// from TIME.
type UnitCategoryError struct {
	Quantity string
	Unit     string
	Required symbol.Category
}

func (e *UnitCategoryError) Error() string {
	return fmt.Sprintf("%s: unit %q is not in the %s unit-category subtree", e.Quantity, e.Unit, e.Required)
}

// present reports whether an optional numeric field was supplied.
func present(v *float64) bool { return v != nil }

// checkNonNegative rejects the first negative field among vals.
func checkNonNegative(quantity string, vals ...*float64) error {
	for _, v := range vals {
		if v != nil && *v < 0 {
			return &NegativeValueError{Quantity: quantity, Value: *v}
		}
	}
	return nil
}

// checkRange rejects an inverted min/max pair.
func checkRange(quantity string, min, max float64) error {
	if min > max {
		return &InvertedRangeError{Quantity: quantity, Min: min, Max: max}
	}
	return nil
}

// checkUnitSubtree verifies that the unit carries a category equal to or
// descending from the required root.
func checkUnitSubtree(quantity string, unit *symbol.Symbol, root symbol.Category) error {
	if unit.HasCategory(root) {
		return nil
	}
	return &UnitCategoryError{Quantity: quantity, Unit: unit.CanonicalForm, Required: root}
}
