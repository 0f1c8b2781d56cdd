package symbol

// Type discriminates the fixed kinds of vocabulary terms. The lookup key for
// alias resolution is (Type, term), so the same alias may exist under
// different types without ambiguity.
type Type string

const (
	TypeAction             Type = "ACTION"
	TypeEquipmentIdentity  Type = "EQUIPMENT_IDENTITY"
	TypeIngredientIdentity Type = "INGREDIENT_IDENTITY"
	TypeItemProperty       Type = "ITEM_PROPERTY"
	TypeUnit               Type = "UNIT"
)

// Types lists every symbol type, in a stable order.
var Types = []Type{
	TypeAction,
	TypeEquipmentIdentity,
	TypeIngredientIdentity,
	TypeItemProperty,
	TypeUnit,
}

// Valid reports whether t is one of the known symbol types.
func (t Type) Valid() bool {
	switch t {
	case TypeAction, TypeEquipmentIdentity, TypeIngredientIdentity, TypeItemProperty, TypeUnit:
		return true
	}
	return false
}

// Symbol is an immutable canonical descriptor for a vocabulary term. Aliases
// map many-to-one onto CanonicalForm; Categories is non-empty and every entry
// belongs to the category space of Type.
type Symbol struct {
	ID            int
	Type          Type
	CanonicalForm string
	Aliases       []string
	Categories    []Category
	Description   string
}

// HasCategory reports whether the symbol carries a category equal to or
// descending from the given one.
func (s *Symbol) HasCategory(ancestor Category) bool {
	for _, c := range s.Categories {
		if c.IsDescendantOf(ancestor) {
			return true
		}
	}
	return false
}

// String returns "canonicalForm (type)", matching how symbols are reported in
// errors and logs.
func (s *Symbol) String() string {
	return s.CanonicalForm + " (" + string(s.Type) + ")"
}
