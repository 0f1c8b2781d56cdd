package recipe

import "sort"

// Recipe is a fully validated recipe: a DAG of instructions over a pool of
// typed items. A Recipe is only ever produced by a Loader; its graph is
// guaranteed acyclic, root-consistent and production-consistent.
type Recipe struct {
	ID       int
	ObjectID string
	Title    string

	Items        map[string]*Item
	Instructions map[int]*Instruction

	// Roots lists the declared root instruction ids, sorted. Every root has
	// an empty prerequisite set and every instruction is reachable from some
	// root.
	Roots []int
}

// Instruction returns the instruction with the given id.
func (r *Recipe) Instruction(id int) (*Instruction, bool) {
	in, ok := r.Instructions[id]
	return in, ok
}

// Item returns the item with the given id.
func (r *Recipe) Item(id string) (*Item, bool) {
	it, ok := r.Items[id]
	return it, ok
}

// sortedInstructionIDs returns every instruction id in ascending order, for
// deterministic traversal.
func (r *Recipe) sortedInstructionIDs() []int {
	ids := make([]int, 0, len(r.Instructions))
	for id := range r.Instructions {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// producedAndConsumed computes the item-id sets written and read by the
// instruction graph.
func (r *Recipe) producedAndConsumed() (produced, consumed map[string]bool) {
	produced = make(map[string]bool)
	consumed = make(map[string]bool)
	for _, in := range r.Instructions {
		for _, it := range in.OutputItems() {
			produced[it.ID] = true
		}
		for _, it := range in.ConsumedItems() {
			consumed[it.ID] = true
		}
	}
	return produced, consumed
}

// InputItems returns the recipe's external inputs: items consumed by some
// instruction but produced by none, sorted by id.
func (r *Recipe) InputItems() []*Item {
	produced, consumed := r.producedAndConsumed()
	var items []*Item
	for id := range consumed {
		if !produced[id] {
			items = append(items, r.Items[id])
		}
	}
	sortItems(items)
	return items
}

// OutputItems returns the recipe's final products: items produced by some
// instruction and consumed by none, sorted by id.
func (r *Recipe) OutputItems() []*Item {
	produced, consumed := r.producedAndConsumed()
	var items []*Item
	for id := range produced {
		if !consumed[id] {
			items = append(items, r.Items[id])
		}
	}
	sortItems(items)
	return items
}

// IntermediateItems returns items that are both produced and consumed within
// the recipe, sorted by id.
func (r *Recipe) IntermediateItems() []*Item {
	produced, consumed := r.producedAndConsumed()
	var items []*Item
	for id := range produced {
		if consumed[id] {
			items = append(items, r.Items[id])
		}
	}
	sortItems(items)
	return items
}

// TopologicalOrder returns the instructions in an order where every
// prerequisite precedes its dependents. Ties are broken by ascending id; the
// order is deterministic but carries no semantic weight beyond the DAG.
func (r *Recipe) TopologicalOrder() []*Instruction {
	visited := make(map[int]bool)
	order := make([]*Instruction, 0, len(r.Instructions))

	var visit func(id int)
	visit = func(id int) {
		if visited[id] {
			return
		}
		visited[id] = true
		for _, prereq := range r.Instructions[id].Prerequisites {
			visit(prereq)
		}
		order = append(order, r.Instructions[id])
	}

	for _, id := range r.sortedInstructionIDs() {
		visit(id)
	}
	return order
}

func sortItems(items []*Item) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
}
