package symbol

import "strings"

// Category is a hierarchical path string such as "MEAT_BEEF_CUT". Segments are
// delimited by '_' or '.'; a longer path is a descendant of every prefix path.
// No tree structure is stored — the hierarchy is derived from the string.
type Category string

// Segments splits the category path on its delimiters.
func (c Category) Segments() []string {
	return strings.FieldsFunc(string(c), func(r rune) bool {
		return r == '_' || r == '.'
	})
}

// IsDescendantOf reports whether c equals ancestor or extends it by one or
// more whole segments. "MEAT_BEEF_CUT" descends from "MEAT_BEEF" and "MEAT",
// but "MEATLOAF" does not descend from "MEAT".
func (c Category) IsDescendantOf(ancestor Category) bool {
	cs := c.Segments()
	as := ancestor.Segments()
	if len(as) == 0 || len(as) > len(cs) {
		return false
	}
	for i, seg := range as {
		if cs[i] != seg {
			return false
		}
	}
	return true
}

// Category enum spaces, one per symbol type. Every category attached to a
// symbol must equal or descend from a root in its type's space.
var (
	actionCategories = []Category{
		"PREPARATION_TASK",
		"COOKING_METHOD",
		"COMBINATION",
		"SEPARATION",
		"DIVISION",
		"TEMPERATURE_CHANGE",
	}

	ingredientIdentityCategories = []Category{
		"GRAIN",
		"VEGETABLE",
		"FRUIT",
		"MEAT",
		"SEAFOOD",
		"DAIRY",
		"FAT",
		"LIQUID",
		"SPICE",
		"HERB",
	}

	equipmentIdentityCategories = []Category{
		"VESSEL",
		"TOOL",
		"APPLIANCE",
	}

	// Item properties combine the ItemPropertyCategory and
	// IngredientPreparationCategory spaces.
	itemPropertyCategories = []Category{
		"TEMPERATURE_RELATIVE",
		"STATE",
		"SIZE",
		"TEXTURE",
		"CUT_STYLE",
		"DONENESS",
	}

	unitCategories = []Category{
		"VOLUME",
		"MASS",
		"COUNT",
		"TIME",
		"TEMPERATURE",
		"LENGTH",
	}
)

// Well-known category roots referenced by validators.
const (
	CategoryVessel              Category = "VESSEL"
	CategoryTemperatureRelative Category = "TEMPERATURE_RELATIVE"
	CategoryTime                Category = "TIME"
	CategoryTemperature         Category = "TEMPERATURE"
	CategoryLength              Category = "LENGTH"
)

// LegalCategoriesFor enumerates the fixed category space for a symbol type.
// The returned slice is shared and must not be modified.
func LegalCategoriesFor(t Type) []Category {
	switch t {
	case TypeAction:
		return actionCategories
	case TypeIngredientIdentity:
		return ingredientIdentityCategories
	case TypeEquipmentIdentity:
		return equipmentIdentityCategories
	case TypeItemProperty:
		return itemPropertyCategories
	case TypeUnit:
		return unitCategories
	}
	return nil
}

// CheckCategories verifies that every category on the symbol equals or
// descends from some root in the legal space for its type. The first illegal
// category is reported.
func CheckCategories(s *Symbol) error {
	legal := LegalCategoriesFor(s.Type)
	for _, c := range s.Categories {
		ok := false
		for _, root := range legal {
			if c.IsDescendantOf(root) {
				ok = true
				break
			}
		}
		if !ok {
			return &IllegalCategoryError{Symbol: s.CanonicalForm, Type: s.Type, Category: c}
		}
	}
	return nil
}
