package recipe

import (
	"context"
	"fmt"

	"github.com/vk/cookgraph/internal/ctxlog"
	"github.com/vk/cookgraph/internal/quantity"
	"github.com/vk/cookgraph/internal/symbol"
)

// State names the loader pipeline phases. VALIDATED and REJECTED are
// terminal.
type State int

const (
	StateRaw State = iota
	StateSymbolsResolved
	StateItemsBuilt
	StateGraphBuilt
	StateValidated
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateRaw:
		return "RAW"
	case StateSymbolsResolved:
		return "SYMBOLS_RESOLVED"
	case StateItemsBuilt:
		return "ITEMS_BUILT"
	case StateGraphBuilt:
		return "GRAPH_BUILT"
	case StateValidated:
		return "VALIDATED"
	case StateRejected:
		return "REJECTED"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Loader turns recipe documents into validated Recipes. It holds only a
// reference to the immutable symbol registry, so a single Loader may be
// shared by any number of concurrent Load calls.
type Loader struct {
	reg *symbol.Registry
}

// NewLoader returns a Loader resolving terms against the given registry.
func NewLoader(reg *symbol.Registry) *Loader {
	return &Loader{reg: reg}
}

// Load runs the full pipeline over one document. Symbol-resolution errors
// are collected and returned together as a *ResolutionError; the first
// structural error rejects the document immediately.
func (l *Loader) Load(ctx context.Context, doc *Document) (*Recipe, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Load: pipeline started.", "recipe_id", doc.ID, "title", doc.Title, "state", StateRaw.String())

	kinds, err := parseKinds(doc)
	if err != nil {
		logger.Debug("Load: rejected.", "state", StateRejected.String(), "error", err)
		return nil, err
	}

	table := newSymbolTable(l.reg)
	table.resolveDocument(doc, kinds)
	if len(table.errs) > 0 {
		err := &ResolutionError{Errs: table.errs}
		logger.Debug("Load: rejected.", "state", StateRejected.String(), "unresolved_terms", len(table.errs))
		return nil, err
	}
	logger.Debug("Load: symbols resolved.", "state", StateSymbolsResolved.String(), "count", len(table.syms))

	items, err := buildItems(doc, kinds, table)
	if err != nil {
		logger.Debug("Load: rejected.", "state", StateRejected.String(), "error", err)
		return nil, err
	}
	logger.Debug("Load: items built.", "state", StateItemsBuilt.String(), "count", len(items))

	instructions, err := buildInstructions(doc, items, table)
	if err != nil {
		logger.Debug("Load: rejected.", "state", StateRejected.String(), "error", err)
		return nil, err
	}
	if err := checkProduction(items, instructions); err != nil {
		logger.Debug("Load: rejected.", "state", StateRejected.String(), "error", err)
		return nil, err
	}
	if err := reconcileAdjacency(doc, instructions); err != nil {
		logger.Debug("Load: rejected.", "state", StateRejected.String(), "error", err)
		return nil, err
	}
	logger.Debug("Load: graph built.", "state", StateGraphBuilt.String(), "instructions", len(instructions))

	if err := detectCycles(instructions); err != nil {
		logger.Debug("Load: rejected.", "state", StateRejected.String(), "error", err)
		return nil, err
	}
	roots, err := checkRoots(doc.RootInstructionIDs, instructions)
	if err != nil {
		logger.Debug("Load: rejected.", "state", StateRejected.String(), "error", err)
		return nil, err
	}

	rec := &Recipe{
		ID:           doc.ID,
		ObjectID:     doc.ObjectID,
		Title:        doc.Title,
		Items:        items,
		Instructions: instructions,
		Roots:        roots,
	}
	logger.Debug("Load: pipeline finished.", "state", StateValidated.String(),
		"instructions", len(rec.Instructions), "items", len(rec.Items), "roots", len(rec.Roots))
	return rec, nil
}

// parseKinds validates every item's kind discriminator up front; the kind
// decides which symbol type its identities must resolve to.
func parseKinds(doc *Document) ([]ItemKind, error) {
	kinds := make([]ItemKind, len(doc.Items))
	for i := range doc.Items {
		k, err := parseItemKind(doc.Items[i].Kind)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", doc.Items[i].ID, err)
		}
		kinds[i] = k
	}
	return kinds, nil
}

// symbolTable resolves every symbol reference in a document exactly once,
// batching failures. Results are keyed by the reference's address within the
// document, which is stable for the lifetime of the load.
type symbolTable struct {
	reg  *symbol.Registry
	syms map[*SymbolRef]*symbol.Symbol
	errs []error
}

func newSymbolTable(reg *symbol.Registry) *symbolTable {
	return &symbolTable{reg: reg, syms: make(map[*SymbolRef]*symbol.Symbol)}
}

func (t *symbolTable) resolve(ref *SymbolRef, expected symbol.Type) {
	if ref == nil {
		return
	}
	s, err := t.reg.Resolve(ref.Name, expected)
	if err != nil {
		t.errs = append(t.errs, err)
		return
	}
	t.syms[ref] = s
}

func (t *symbolTable) get(ref *SymbolRef) *symbol.Symbol {
	if ref == nil {
		return nil
	}
	return t.syms[ref]
}

// resolveDocument walks every embedded symbol reference: item identities and
// properties, actions, units and temperature levels.
func (t *symbolTable) resolveDocument(doc *Document, kinds []ItemKind) {
	for i := range doc.Items {
		it := &doc.Items[i]
		for j := range it.Identity {
			t.resolve(&it.Identity[j], kinds[i].identityType())
		}
		for j := range it.State {
			t.resolve(&it.State[j], symbol.TypeItemProperty)
		}
		for j := range it.Preparation {
			t.resolve(&it.Preparation[j], symbol.TypeItemProperty)
		}
		t.resolve(it.Size, symbol.TypeItemProperty)
		if it.Dimensions != nil {
			t.resolve(it.Dimensions.Unit, symbol.TypeUnit)
		}
	}

	for i := range doc.Instructions {
		in := &doc.Instructions[i]
		t.resolve(&in.Action, symbol.TypeAction)
		for j := range in.Ingredients {
			if q := in.Ingredients[j].Quantity; q != nil {
				t.resolve(q.Unit, symbol.TypeUnit)
			}
		}
		if in.Duration != nil {
			t.resolve(in.Duration.Unit, symbol.TypeUnit)
		}
		if in.Temperature != nil {
			t.resolve(in.Temperature.Unit, symbol.TypeUnit)
			t.resolve(in.Temperature.Level, symbol.TypeItemProperty)
		}
	}
}

// buildItems constructs the typed item pool, checking id uniqueness and the
// per-kind shape of each entry.
func buildItems(doc *Document, kinds []ItemKind, table *symbolTable) (map[string]*Item, error) {
	items := make(map[string]*Item, len(doc.Items))
	for i := range doc.Items {
		d := &doc.Items[i]
		if d.ID == "" {
			return nil, fmt.Errorf("item at index %d has an empty id", i)
		}
		if _, exists := items[d.ID]; exists {
			return nil, &DuplicateIdentifierError{Kind: "item", ID: d.ID}
		}
		if len(d.Identity) == 0 {
			return nil, fmt.Errorf("item %q: at least one identity symbol is required", d.ID)
		}

		it := &Item{
			ID:   d.ID,
			Kind: kinds[i],
			Name: d.Name,
			Size: table.get(d.Size),
		}
		for j := range d.Identity {
			it.Identity = append(it.Identity, table.get(&d.Identity[j]))
		}
		for j := range d.State {
			it.State = append(it.State, table.get(&d.State[j]))
		}
		for j := range d.Preparation {
			it.Preparation = append(it.Preparation, table.get(&d.Preparation[j]))
		}
		if d.Dimensions != nil {
			dims, err := quantity.NewDimensions(d.Dimensions.Values, d.Dimensions.ValuesMin, d.Dimensions.ValuesMax, table.get(d.Dimensions.Unit))
			if err != nil {
				return nil, fmt.Errorf("item %q: %w", d.ID, err)
			}
			it.Dimensions = dims
		}

		if kinds[i].Intermediate() {
			if d.ProducedByInstructionID == nil {
				return nil, &ProductionConsistencyError{ItemID: d.ID, Reason: "intermediate item has no producedByInstructionId"}
			}
			if len(d.SourceIngredientIDs)+len(d.SourceEquipmentIDs) == 0 {
				return nil, &ProductionConsistencyError{ItemID: d.ID, InstructionID: *d.ProducedByInstructionID,
					Reason: "intermediate item requires at least one source item"}
			}
			it.ProducedBy = *d.ProducedByInstructionID
			it.SourceIngredients = append([]string(nil), d.SourceIngredientIDs...)
			it.SourceEquipment = append([]string(nil), d.SourceEquipmentIDs...)
			it.Vessel = d.VesselItemID
		} else if d.ProducedByInstructionID != nil || len(d.SourceIngredientIDs) > 0 || len(d.SourceEquipmentIDs) > 0 {
			return nil, &ProductionConsistencyError{ItemID: d.ID,
				Reason: "only intermediate items may carry production provenance"}
		}

		items[d.ID] = it
	}
	return items, nil
}

// buildInstructions constructs the instruction arena: resolved actions,
// usage references into the item pool, and the quantity unions.
func buildInstructions(doc *Document, items map[string]*Item, table *symbolTable) (map[int]*Instruction, error) {
	instructions := make(map[int]*Instruction, len(doc.Instructions))
	for i := range doc.Instructions {
		d := &doc.Instructions[i]
		if _, exists := instructions[d.ID]; exists {
			return nil, &DuplicateIdentifierError{Kind: "instruction", ID: fmt.Sprintf("%d", d.ID)}
		}

		in := &Instruction{
			ID:            d.ID,
			Action:        table.get(&d.Action),
			Description:   d.Description,
			SequenceOrder: d.SequenceOrder,
		}

		for _, u := range d.Ingredients {
			item, ok := items[u.ItemID]
			if !ok {
				return nil, fmt.Errorf("instruction %d: ingredient usage references unknown item %q", d.ID, u.ItemID)
			}
			if !item.Kind.IsIngredient() {
				return nil, fmt.Errorf("instruction %d: item %q is %s, not an ingredient", d.ID, u.ItemID, item.Kind)
			}
			usage := IngredientUsage{Item: item, Count: u.Count, Proportion: u.Proportion, Optional: u.Optional}
			if u.Count != nil && *u.Count < 0 {
				return nil, fmt.Errorf("instruction %d: negative count for item %q", d.ID, u.ItemID)
			}
			if u.Proportion != nil && (*u.Proportion < 0 || *u.Proportion > 1) {
				return nil, fmt.Errorf("instruction %d: proportion for item %q outside [0,1]", d.ID, u.ItemID)
			}
			if u.Quantity != nil {
				m, err := quantity.NewMeasurement(u.Quantity.Value, u.Quantity.ValueMin, u.Quantity.ValueMax, table.get(u.Quantity.Unit))
				if err != nil {
					return nil, fmt.Errorf("instruction %d: item %q: %w", d.ID, u.ItemID, err)
				}
				usage.Quantity = m
			}
			in.Ingredients = append(in.Ingredients, usage)
		}

		for _, u := range d.Equipment {
			item, ok := items[u.ItemID]
			if !ok {
				return nil, fmt.Errorf("instruction %d: equipment usage references unknown item %q", d.ID, u.ItemID)
			}
			if !item.Kind.IsEquipment() {
				return nil, fmt.Errorf("instruction %d: item %q is %s, not equipment", d.ID, u.ItemID, item.Kind)
			}
			if u.Count != nil && *u.Count < 0 {
				return nil, fmt.Errorf("instruction %d: negative count for item %q", d.ID, u.ItemID)
			}
			in.Equipment = append(in.Equipment, EquipmentUsage{Item: item, Count: u.Count})
		}

		if d.Duration != nil {
			dur, err := quantity.NewDuration(d.Duration.Value, d.Duration.ValueMin, d.Duration.ValueMax, table.get(d.Duration.Unit))
			if err != nil {
				return nil, fmt.Errorf("instruction %d: %w", d.ID, err)
			}
			in.Duration = dur
		}
		if d.Temperature != nil {
			temp, err := quantity.NewTemperature(d.Temperature.Value, d.Temperature.ValueMin, d.Temperature.ValueMax,
				table.get(d.Temperature.Unit), table.get(d.Temperature.Level))
			if err != nil {
				return nil, fmt.Errorf("instruction %d: %w", d.ID, err)
			}
			in.Temperature = temp
		}

		if d.ProducesItemID != nil {
			item, ok := items[*d.ProducesItemID]
			if !ok {
				return nil, &ProductionConsistencyError{ItemID: *d.ProducesItemID, InstructionID: d.ID,
					Reason: "produces references a missing item"}
			}
			in.Produces = item
		}

		instructions[d.ID] = in
	}
	return instructions, nil
}
