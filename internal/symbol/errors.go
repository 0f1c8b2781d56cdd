package symbol

import "fmt"

// UnknownSymbolError reports a term that matched no canonical form and no
// alias of the expected type.
type UnknownSymbolError struct {
	Term     string
	Expected Type
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q (expected type %s)", e.Term, e.Expected)
}

// TypeMismatchError reports a term that exists in the vocabulary, but only
// under a type other than the expected one.
type TypeMismatchError struct {
	Term     string
	Expected Type
	Actual   Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("symbol %q has type %s, expected %s", e.Term, e.Actual, e.Expected)
}

// IllegalCategoryError reports a category violation: either a symbol carries
// a category outside the legal space for its type (Category set), or a field
// requires a symbol from a specific subtree the symbol does not belong to
// (Required set).
type IllegalCategoryError struct {
	Symbol   string
	Type     Type
	Category Category
	Required Category
}

func (e *IllegalCategoryError) Error() string {
	if e.Required != "" {
		return fmt.Sprintf("symbol %q (type %s) does not descend from required category %q", e.Symbol, e.Type, e.Required)
	}
	return fmt.Sprintf("symbol %q: category %q is not legal for type %s", e.Symbol, e.Category, e.Type)
}

// DuplicateAliasError reports two canonical symbols of the same type claiming
// the same alias. Aliases are unique per type by contract.
type DuplicateAliasError struct {
	Alias string
	Type  Type
}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("alias %q already registered for type %s", e.Alias, e.Type)
}
