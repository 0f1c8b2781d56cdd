package recipe

import "sort"

// checkProduction verifies that item provenance and instruction produces
// fields agree in both directions, and that every source reference lands on
// an existing item of the right kind.
func checkProduction(items map[string]*Item, instructions map[int]*Instruction) error {
	itemIDs := make([]string, 0, len(items))
	for id := range items {
		itemIDs = append(itemIDs, id)
	}
	sort.Strings(itemIDs)

	for _, id := range itemIDs {
		it := items[id]
		if !it.Kind.Intermediate() {
			continue
		}
		in, ok := instructions[it.ProducedBy]
		if !ok {
			return &ProductionConsistencyError{ItemID: it.ID, InstructionID: it.ProducedBy,
				Reason: "producedBy references a missing instruction"}
		}
		if in.Produces != it {
			return &ProductionConsistencyError{ItemID: it.ID, InstructionID: it.ProducedBy,
				Reason: "instruction does not declare this item as its product"}
		}
		for _, src := range it.SourceIngredients {
			srcItem, ok := items[src]
			if !ok {
				return &ProductionConsistencyError{ItemID: it.ID, InstructionID: it.ProducedBy,
					Reason: "source ingredient " + src + " does not exist"}
			}
			if !srcItem.Kind.IsIngredient() {
				return &ProductionConsistencyError{ItemID: it.ID, InstructionID: it.ProducedBy,
					Reason: "source ingredient " + src + " is not an ingredient"}
			}
		}
		for _, src := range it.SourceEquipment {
			srcItem, ok := items[src]
			if !ok {
				return &ProductionConsistencyError{ItemID: it.ID, InstructionID: it.ProducedBy,
					Reason: "source equipment " + src + " does not exist"}
			}
			if !srcItem.Kind.IsEquipment() {
				return &ProductionConsistencyError{ItemID: it.ID, InstructionID: it.ProducedBy,
					Reason: "source equipment " + src + " is not equipment"}
			}
		}
		if it.Vessel != "" {
			vessel, ok := items[it.Vessel]
			if !ok {
				return &ProductionConsistencyError{ItemID: it.ID, InstructionID: it.ProducedBy,
					Reason: "vessel item " + it.Vessel + " does not exist"}
			}
			if !vessel.IsVessel() {
				return &ProductionConsistencyError{ItemID: it.ID, InstructionID: it.ProducedBy,
					Reason: "vessel item " + it.Vessel + " is not vessel equipment"}
			}
		}
	}

	ids := make([]int, 0, len(instructions))
	for id := range instructions {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		in := instructions[id]
		if in.Produces == nil {
			continue
		}
		if !in.Produces.Kind.Intermediate() {
			return &ProductionConsistencyError{ItemID: in.Produces.ID, InstructionID: in.ID,
				Reason: "produced item is not an intermediate"}
		}
		if in.Produces.ProducedBy != in.ID {
			return &ProductionConsistencyError{ItemID: in.Produces.ID, InstructionID: in.ID,
				Reason: "item declares a different producing instruction"}
		}
	}
	return nil
}

// reconcileAdjacency copies the document's edge lists onto the built
// instructions, deduplicated and sorted, and verifies the two directions are
// mirror images: A lists B as next exactly when B lists A as a prerequisite.
func reconcileAdjacency(doc *Document, instructions map[int]*Instruction) error {
	for i := range doc.Instructions {
		d := &doc.Instructions[i]
		in := instructions[d.ID]

		next, err := edgeSet(d.ID, d.NextInstructionIDs, instructions)
		if err != nil {
			return err
		}
		prereq, err := edgeSet(d.ID, d.PrerequisiteInstructionIDs, instructions)
		if err != nil {
			return err
		}
		in.Next = next
		in.Prerequisites = prereq
	}

	ids := make([]int, 0, len(instructions))
	for id := range instructions {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		in := instructions[id]
		for _, next := range in.Next {
			if !containsID(instructions[next].Prerequisites, id) {
				return &AdjacencyConsistencyError{From: id, To: next,
					Reason: "listed as next without the matching prerequisite"}
			}
		}
		for _, prereq := range in.Prerequisites {
			if !containsID(instructions[prereq].Next, id) {
				return &AdjacencyConsistencyError{From: prereq, To: id,
					Reason: "listed as prerequisite without the matching next"}
			}
		}
	}
	return nil
}

// edgeSet validates, deduplicates and sorts one edge list.
func edgeSet(from int, refs []int, instructions map[int]*Instruction) ([]int, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	seen := make(map[int]bool, len(refs))
	out := make([]int, 0, len(refs))
	for _, to := range refs {
		if to == from {
			return nil, &AdjacencyConsistencyError{From: from, To: to, Reason: "instruction references itself"}
		}
		if _, ok := instructions[to]; !ok {
			return nil, &AdjacencyConsistencyError{From: from, To: to, Reason: "references a missing instruction"}
		}
		if seen[to] {
			continue
		}
		seen[to] = true
		out = append(out, to)
	}
	sort.Ints(out)
	return out, nil
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

const (
	colorWhite = iota // unvisited
	colorGray         // on the current DFS stack
	colorBlack        // fully explored
)

// detectCycles runs a three-color depth-first search over the next edges.
// On finding a back edge it reports the full offending cycle, closed at both
// ends with the same id.
func detectCycles(instructions map[int]*Instruction) error {
	color := make(map[int]int, len(instructions))
	var stack []int

	ids := make([]int, 0, len(instructions))
	for id := range instructions {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var visit func(id int) *CycleDetectedError
	visit = func(id int) *CycleDetectedError {
		color[id] = colorGray
		stack = append(stack, id)
		for _, next := range instructions[id].Next {
			switch color[next] {
			case colorGray:
				// Back edge: the cycle is the stack suffix starting at next.
				start := 0
				for i, v := range stack {
					if v == next {
						start = i
						break
					}
				}
				path := append([]int(nil), stack[start:]...)
				path = append(path, next)
				return &CycleDetectedError{Path: path}
			case colorWhite:
				if err := visit(next); err != nil {
					return err
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = colorBlack
		return nil
	}

	for _, id := range ids {
		if color[id] == colorWhite {
			if err := visit(id); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkRoots validates the declared roots and proves every instruction
// reachable from them. A recipe with no instructions is valid only when it
// also declares no roots.
func checkRoots(declared []int, instructions map[int]*Instruction) ([]int, error) {
	roots, err := rootSet(declared, instructions)
	if err != nil {
		return nil, err
	}

	visited := make(map[int]bool, len(instructions))
	queue := append([]int(nil), roots...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true
		queue = append(queue, instructions[id].Next...)
	}

	ids := make([]int, 0, len(instructions))
	for id := range instructions {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if !visited[id] {
			return nil, &UnreachableInstructionError{ID: id}
		}
	}
	return roots, nil
}

// rootSet deduplicates and sorts the declared roots, requiring each to exist
// and to have no prerequisites.
func rootSet(declared []int, instructions map[int]*Instruction) ([]int, error) {
	seen := make(map[int]bool, len(declared))
	roots := make([]int, 0, len(declared))
	for _, id := range declared {
		in, ok := instructions[id]
		if !ok {
			return nil, &InvalidRootError{ID: id, Reason: "instruction does not exist"}
		}
		if !in.IsRoot() {
			return nil, &InvalidRootError{ID: id, Reason: "instruction has prerequisites"}
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		roots = append(roots, id)
	}
	sort.Ints(roots)
	return roots, nil
}
