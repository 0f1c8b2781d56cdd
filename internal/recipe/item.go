package recipe

import (
	"fmt"

	"github.com/vk/cookgraph/internal/quantity"
	"github.com/vk/cookgraph/internal/symbol"
)

// ItemKind is the closed set of item variants. The variant set is fixed, so
// dispatch over kinds (notably in the production-consistency check) can be
// exhaustive.
type ItemKind int

const (
	KindIngredient ItemKind = iota
	KindEquipment
	KindIntermediateIngredient
	KindIntermediateEquipment
)

// wire names for item kinds, as used by the document schema.
const (
	kindIngredientWire             = "ingredient"
	kindEquipmentWire              = "equipment"
	kindIntermediateIngredientWire = "intermediateIngredient"
	kindIntermediateEquipmentWire  = "intermediateEquipment"
)

func (k ItemKind) String() string {
	switch k {
	case KindIngredient:
		return kindIngredientWire
	case KindEquipment:
		return kindEquipmentWire
	case KindIntermediateIngredient:
		return kindIntermediateIngredientWire
	case KindIntermediateEquipment:
		return kindIntermediateEquipmentWire
	}
	return fmt.Sprintf("ItemKind(%d)", int(k))
}

// Intermediate reports whether items of this kind are produced mid-recipe by
// an instruction rather than supplied externally.
func (k ItemKind) Intermediate() bool {
	return k == KindIntermediateIngredient || k == KindIntermediateEquipment
}

// IsIngredient reports whether the kind is consumed by instructions.
func (k ItemKind) IsIngredient() bool {
	return k == KindIngredient || k == KindIntermediateIngredient
}

// IsEquipment reports whether the kind is reused rather than consumed.
func (k ItemKind) IsEquipment() bool {
	return k == KindEquipment || k == KindIntermediateEquipment
}

// identityType returns the symbol type item identities of this kind must
// resolve to.
func (k ItemKind) identityType() symbol.Type {
	if k.IsEquipment() {
		return symbol.TypeEquipmentIdentity
	}
	return symbol.TypeIngredientIdentity
}

func parseItemKind(s string) (ItemKind, error) {
	switch s {
	case kindIngredientWire:
		return KindIngredient, nil
	case kindEquipmentWire:
		return KindEquipment, nil
	case kindIntermediateIngredientWire:
		return KindIntermediateIngredient, nil
	case kindIntermediateEquipmentWire:
		return KindIntermediateEquipment, nil
	}
	return 0, fmt.Errorf("unknown item kind %q", s)
}

// Item is a typed, symbol-resolved element of the recipe's item pool.
// Instructions reference items; the recipe owns them.
type Item struct {
	ID          string
	Kind        ItemKind
	Name        string
	Identity    []*symbol.Symbol // 1+, of the kind's identity type
	State       []*symbol.Symbol // 0+, ITEM_PROPERTY
	Preparation []*symbol.Symbol // 0+, ITEM_PROPERTY
	Size        *symbol.Symbol   // 0..1, ITEM_PROPERTY
	Dimensions  *quantity.Dimensions

	// Production provenance, set only for intermediate kinds.
	ProducedBy        int
	SourceIngredients []string
	SourceEquipment   []string
	Vessel            string
}

// IsVessel reports whether the item is equipment whose identity descends
// from the VESSEL category, i.e. it can hold contents.
func (it *Item) IsVessel() bool {
	if !it.Kind.IsEquipment() {
		return false
	}
	for _, id := range it.Identity {
		if id.HasCategory(symbol.CategoryVessel) {
			return true
		}
	}
	return false
}

func (it *Item) String() string {
	return fmt.Sprintf("%s (%s)", it.Name, it.Kind)
}
