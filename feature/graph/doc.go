// Package graph serves recipe graphs over HTTP.
//
// The service keeps one resolution session per record snapshot. When the snapshot
// cache hands out a new snapshot (TTL expiry or an ingest run) the next request starts
// a fresh session, so cached items never outlive the records they were built from.
//
// # Sessions
//
// Each session holds two graphs over the same records: a raw one and one that is
// collapsed after every resolution. Resolutions on the collapsed graph share a read
// gate and the collapse pass takes it exclusively, so no resolution is in flight while
// edges are rewritten. Collapse passes repeat until alias chains are gone.
//
// # Endpoints
//
//   - GET /graph?item=&collapse=: node and edge lists for the item.
//   - GET /graph/recipes?item=: recipes producing the item.
//   - GET /graph/recipe?id=: a single recipe.
//   - GET /graph/suggest?q=: closest known item names (Levenshtein distance).
//   - POST /graph/publish?item=: uploads the export to the bucket.
package graph
