// Package quantity implements the closed scalar/range unions used by recipe
// documents: Measurement, Temperature, Duration and Dimensions.
//
// Each constructor is total and exclusive over well-formed input: exactly one
// variant is selected from the raw field set, or a typed error explains why
// none (or more than one) of the shapes was satisfiable. Units are canonical
// symbols resolved by the caller and are checked here against the relevant
// unit-category subtree.
package quantity
