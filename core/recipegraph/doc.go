// Package recipegraph resolves crafting dependencies into a graph of Items and Recipes.
//
// A Graph is a resolution session bound to one immutable record store. Items and
// Recipes are created on first reference and cached for the lifetime of the session,
// so resolving a second root item reuses everything the first one discovered.
//
// # Entity Model
//
// An Item is identified by its bracketed name (e.g. "<minecraft:chest>"). Every Item
// owns a synthetic atomic recipe ("atomic:minecraft:chest") that stands for "treat this
// item as a raw resource". A Recipe holds its results and ingredients as (item name,
// amount) stacks; references between entities are names, never pointers, so the
// collapse pass can rewrite edges without dangling references.
//
// # Resolution
//
// GetItem interns an item and resolves the recipes producing it from the record store,
// in stored order. ResolveRecipes with recursive=true walks the ingredients with an
// explicit worklist. Each cache mutation is a short critical section on the session
// lock; the lock is never held while walking, and concurrent resolution of the same
// item is collapsed through singleflight.
//
// # Collapsing
//
// Collapse removes ore-dictionary aliases ("<ore:...>") that have exactly one known
// recipe and re-points every ingredient edge to the alias's sole substitute.
//
// # Export
//
// Export flattens the graph reachable from a root item into node and edge records
// for the rendering layer.
package recipegraph
