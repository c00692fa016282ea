// Package records provides the Record Store consumed by the recipe graph.
//
// A record is one flat row describing how an item is produced: the recipe id, the craft
// type, the result item with its amount and the raw ingredient expression exactly as it
// appeared in the game dump. The store is immutable once built; the recipe graph only
// ever reads from it.
//
// # Sources
//
// Records can be loaded from:
//   - A CSV file (the format written by the ingest feature).
//   - The `recipes` database table (via GORM).
//   - A CSV object in the storage bucket (S3/MinIO).
//
// # Snapshot Cache
//
// The Cache type memoizes a loaded MemoryStore per source key with a TTL. Concurrent
// loads of the same key are collapsed with singleflight, so a burst of requests against
// a cold cache hits the database or bucket once.
//
// # Usage
//
//	recs, err := records.ReadCSV(f)
//	store := records.NewMemoryStore(records.FilterPrefixes(recs, cfg.IDPrefixes))
//	for _, r := range store.ByResult("<minecraft:chest>") {
//	    fmt.Println(r.ID, r.CraftRaw)
//	}
package records
