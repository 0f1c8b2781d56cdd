// Package recipe loads recipe documents into a typed, symbol-resolved
// instruction graph and validates the graph's structural invariants.
//
// A document moves through a fixed pipeline: RAW -> SYMBOLS_RESOLVED ->
// ITEMS_BUILT -> GRAPH_BUILT -> VALIDATED, or REJECTED on the first fatal
// error. Symbol-resolution failures are batched so one pass reports every
// unknown term; every structural failure is fatal immediately, because later
// phases assume the invariants checked earlier.
package recipe
