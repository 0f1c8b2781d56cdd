package symbol

import (
	"fmt"
	"sort"
)

// lookupKey is the deterministic resolution key: aliases are unique per type,
// so (type, term) identifies at most one canonical symbol.
type lookupKey struct {
	typ  Type
	term string
}

// Registry is the process-wide canonical term store. It is populated once by a
// Builder and never mutated afterwards, so all lookups are safe for unlimited
// concurrent use without locking.
type Registry struct {
	byCanonical map[lookupKey]*Symbol
	byAlias     map[lookupKey]*Symbol
	byID        map[Type]map[int]*Symbol
	count       int
}

// Resolve maps a raw term to its canonical symbol. Lookup tries the exact
// canonical form first, then the alias table. A term matching no entry of the
// expected type fails with *UnknownSymbolError; a term known only under a
// different type fails with *TypeMismatchError.
func (r *Registry) Resolve(term string, expected Type) (*Symbol, error) {
	if s, ok := r.byCanonical[lookupKey{expected, term}]; ok {
		return s, nil
	}
	if s, ok := r.byAlias[lookupKey{expected, term}]; ok {
		return s, nil
	}

	// Cross-type collisions are permitted; report the actual type so the
	// caller sees why the expected lookup failed.
	for _, t := range Types {
		if t == expected {
			continue
		}
		if s, ok := r.byCanonical[lookupKey{t, term}]; ok {
			return nil, &TypeMismatchError{Term: term, Expected: expected, Actual: s.Type}
		}
		if s, ok := r.byAlias[lookupKey{t, term}]; ok {
			return nil, &TypeMismatchError{Term: term, Expected: expected, Actual: s.Type}
		}
	}
	return nil, &UnknownSymbolError{Term: term, Expected: expected}
}

// ByID looks a symbol up by its relational store id within a type.
func (r *Registry) ByID(t Type, id int) (*Symbol, bool) {
	s, ok := r.byID[t][id]
	return s, ok
}

// Categories returns the category set of a symbol. Pure accessor; the slice
// is owned by the registry and must not be modified.
func (r *Registry) Categories(s *Symbol) []Category {
	return s.Categories
}

// Len returns the number of canonical symbols in the registry.
func (r *Registry) Len() int {
	return r.count
}

// Builder accumulates symbols during the one-time registry build. Add rejects
// entries that would break registry invariants; Build seals the result.
type Builder struct {
	reg  *Registry
	errs []error
}

// NewBuilder returns an empty registry builder.
func NewBuilder() *Builder {
	return &Builder{
		reg: &Registry{
			byCanonical: make(map[lookupKey]*Symbol),
			byAlias:     make(map[lookupKey]*Symbol),
			byID:        make(map[Type]map[int]*Symbol),
		},
	}
}

// Add registers a canonical symbol with its aliases and categories. The
// symbol is copied; later changes to the argument do not affect the registry.
func (b *Builder) Add(sym Symbol) error {
	if !sym.Type.Valid() {
		return fmt.Errorf("symbol %q: invalid type %q", sym.CanonicalForm, sym.Type)
	}
	if sym.CanonicalForm == "" {
		return fmt.Errorf("symbol with empty canonical form (type %s)", sym.Type)
	}
	if len(sym.Categories) == 0 {
		return fmt.Errorf("symbol %q: at least one category is required", sym.CanonicalForm)
	}
	if err := CheckCategories(&sym); err != nil {
		return err
	}

	key := lookupKey{sym.Type, sym.CanonicalForm}
	if _, exists := b.reg.byCanonical[key]; exists {
		return fmt.Errorf("canonical form %q already registered for type %s", sym.CanonicalForm, sym.Type)
	}
	for _, alias := range sym.Aliases {
		if _, exists := b.reg.byAlias[lookupKey{sym.Type, alias}]; exists {
			return &DuplicateAliasError{Alias: alias, Type: sym.Type}
		}
	}

	cp := sym
	cp.Aliases = append([]string(nil), sym.Aliases...)
	cp.Categories = append([]Category(nil), sym.Categories...)
	sort.Strings(cp.Aliases)

	b.reg.byCanonical[key] = &cp
	for _, alias := range cp.Aliases {
		b.reg.byAlias[lookupKey{cp.Type, alias}] = &cp
	}
	if cp.ID != 0 {
		if b.reg.byID[cp.Type] == nil {
			b.reg.byID[cp.Type] = make(map[int]*Symbol)
		}
		b.reg.byID[cp.Type][cp.ID] = &cp
	}
	b.reg.count++
	return nil
}

// Build seals and returns the registry. The builder must not be used again.
func (b *Builder) Build() *Registry {
	reg := b.reg
	b.reg = nil
	return reg
}
