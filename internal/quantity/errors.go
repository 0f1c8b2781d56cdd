package quantity

import "fmt"

// AmbiguousQuantityError reports raw input satisfying the required fields of
// more than one union shape.
type AmbiguousQuantityError struct {
	Quantity string
	Shapes   []string
}

func (e *AmbiguousQuantityError) Error() string {
	return fmt.Sprintf("%s: fields satisfy multiple shapes %v, exactly one is allowed", e.Quantity, e.Shapes)
}

// IncompleteQuantityError reports raw input satisfying no shape at all.
type IncompleteQuantityError struct {
	Quantity string
	Reason   string
}

func (e *IncompleteQuantityError) Error() string {
	return fmt.Sprintf("%s: no valid shape: %s", e.Quantity, e.Reason)
}

// InvertedRangeError reports a range whose minimum exceeds its maximum.
type InvertedRangeError struct {
	Quantity string
	Min, Max float64
}

func (e *InvertedRangeError) Error() string {
	return fmt.Sprintf("%s: inverted range, min %v > max %v", e.Quantity, e.Min, e.Max)
}

// DimensionArityError reports dimension value lists outside 1-3 entries, or a
// min/max pair with differing arity.
type DimensionArityError struct {
	MinArity, MaxArity int
}

func (e *DimensionArityError) Error() string {
	if e.MinArity != e.MaxArity {
		return fmt.Sprintf("dimensions: min arity %d does not match max arity %d", e.MinArity, e.MaxArity)
	}
	return fmt.Sprintf("dimensions: arity %d outside the allowed 1-3 range", e.MinArity)
}

// NegativeValueError reports a negative numeric field; all quantity values
// are non-negative.
type NegativeValueError struct {
	Quantity string
	Value    float64
}

func (e *NegativeValueError) Error() string {
	return fmt.Sprintf("%s: negative value %v", e.Quantity, e.Value)
}
