package recipe

import (
	"fmt"
	"strings"
)

// ResolutionError batches every symbol-resolution failure found in one pass
// over a document, so the caller sees all bad terms at once.
type ResolutionError struct {
	Errs []error
}

func (e *ResolutionError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("symbol resolution failed (%d errors):\n- %s", len(e.Errs), strings.Join(msgs, "\n- "))
}

// Unwrap exposes the batched errors to errors.Is / errors.As.
func (e *ResolutionError) Unwrap() []error {
	return e.Errs
}

// DuplicateIdentifierError reports an item or instruction id used more than
// once within a recipe.
type DuplicateIdentifierError struct {
	Kind string // "item" or "instruction"
	ID   string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("duplicate %s id %q", e.Kind, e.ID)
}

// ProductionConsistencyError reports a mismatch between an intermediate
// item's provenance and the instruction graph: a dangling producedBy
// reference, a produces field naming a different item, or an unresolvable
// source item.
type ProductionConsistencyError struct {
	ItemID        string
	InstructionID int
	Reason        string
}

func (e *ProductionConsistencyError) Error() string {
	return fmt.Sprintf("production consistency violated for item %q (instruction %d): %s", e.ItemID, e.InstructionID, e.Reason)
}

// AdjacencyConsistencyError reports prerequisite/next edge sets that are not
// mirror images of each other: From lists To as next without To listing From
// as a prerequisite, or vice versa.
type AdjacencyConsistencyError struct {
	From, To int
	Reason   string
}

func (e *AdjacencyConsistencyError) Error() string {
	return fmt.Sprintf("inconsistent adjacency between instructions %d and %d: %s", e.From, e.To, e.Reason)
}

// CycleDetectedError reports a dependency cycle. Path names the offending
// cycle, starting and ending at the same instruction id.
type CycleDetectedError struct {
	Path []int
}

func (e *CycleDetectedError) Error() string {
	parts := make([]string, len(e.Path))
	for i, id := range e.Path {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return "cycle detected: " + strings.Join(parts, " -> ")
}

// UnreachableInstructionError reports an instruction that cannot be reached
// from any declared root by following next edges.
type UnreachableInstructionError struct {
	ID int
}

func (e *UnreachableInstructionError) Error() string {
	return fmt.Sprintf("instruction %d is not reachable from any root", e.ID)
}

// InvalidRootError reports a declared root that does not exist or has
// prerequisites.
type InvalidRootError struct {
	ID     int
	Reason string
}

func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("invalid root instruction %d: %s", e.ID, e.Reason)
}
