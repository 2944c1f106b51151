// Package lens provides composable optics for reading and non-destructively
// updating values nested inside immutable-by-convention Go structs.
//
// Key types:
//   - Lens: a get/set pair focusing one field (or element) inside a whole
//   - Path: the field-index path a lens addresses, for debugging and tooling
//   - Transform: a reusable whole-to-whole update built from a lens and a
//     function on its focus
//
// Lenses compose with Compose into deep accessors; transforms compose with
// ComposeTx into sequential updates. All descriptors are immutable values
// and safe to share. Generated lens constructors (see cmd/lens-generator)
// are built on Field with the struct field index as the path element.
package lens
