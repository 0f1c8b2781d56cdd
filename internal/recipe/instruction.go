package recipe

import (
	"fmt"

	"github.com/vk/cookgraph/internal/quantity"
	"github.com/vk/cookgraph/internal/symbol"
)

// IngredientUsage records how an instruction uses one ingredient.
type IngredientUsage struct {
	Item       *Item
	Count      *int
	Proportion *float64
	Quantity   *quantity.Measurement
	Optional   bool
}

// EquipmentUsage records how an instruction uses one piece of equipment.
// Equipment is reused, never consumed.
type EquipmentUsage struct {
	Item  *Item
	Count *int
}

// Instruction is one production step in the recipe DAG. Adjacency is stored
// as sorted instruction-id slices on both sides; the two directions are
// reconciled once at load time and are mirror images thereafter.
type Instruction struct {
	ID          int
	Action      *symbol.Symbol
	Description string
	Ingredients []IngredientUsage
	Equipment   []EquipmentUsage
	Produces    *Item
	Temperature *quantity.Temperature
	Duration    *quantity.Duration

	// SequenceOrder is preserved from the document but carries no authority:
	// ties are left unordered, the DAG is the source of truth.
	SequenceOrder *float64

	Prerequisites []int
	Next          []int
}

// IsRoot reports whether the instruction has no prerequisites.
func (in *Instruction) IsRoot() bool { return len(in.Prerequisites) == 0 }

// IsLeaf reports whether no instruction follows this one.
func (in *Instruction) IsLeaf() bool { return len(in.Next) == 0 }

// InputItems returns every item the instruction takes in, ingredients first.
func (in *Instruction) InputItems() []*Item {
	items := make([]*Item, 0, len(in.Ingredients)+len(in.Equipment))
	for _, u := range in.Ingredients {
		items = append(items, u.Item)
	}
	for _, u := range in.Equipment {
		items = append(items, u.Item)
	}
	return items
}

// ConsumedItems returns the items the instruction uses up. Equipment is
// excluded: it is reused.
func (in *Instruction) ConsumedItems() []*Item {
	items := make([]*Item, 0, len(in.Ingredients))
	for _, u := range in.Ingredients {
		items = append(items, u.Item)
	}
	return items
}

// OutputItems returns the produced item, if any.
func (in *Instruction) OutputItems() []*Item {
	if in.Produces == nil {
		return nil
	}
	return []*Item{in.Produces}
}

func (in *Instruction) String() string {
	return fmt.Sprintf("instruction %d: %s", in.ID, in.Action.CanonicalForm)
}
