// Package symbol implements the canonical vocabulary for recipe analysis: a
// build-once, read-only registry of typed terms with alias resolution and
// hierarchical category membership.
//
// A Registry is constructed through a Builder (normally fed from the
// relational term store), validated, and then shared by reference across any
// number of concurrent validation runs. It is never mutated after Build.
package symbol
