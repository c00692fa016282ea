// Package reconcile compares the record rows held by several sources: typically the
// local CSV file, the CSV object in the bucket and the recipes table, all written by
// ingestion.
//
// The first source of a Spec is the reference. Every other source is checked for
// missing ids and for rows whose fields differ from the reference.
//
// # Architecture
//
//  1. Engine: loads every source concurrently, builds the union of record ids and
//     reports per-source presence and field mismatches.
//
//  2. Plan: turns the results into actions against the recipes table. Purge deletes
//     rows the reference no longer has, sync upserts rows the table misses or holds
//     with different fields. Purge takes precedence over sync.
//
//  3. Apply: executes a plan in one transaction, only when confirmed and not a dry run.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Sources: []reconcile.Named{
//	        {Name: "storage", Source: records.ObjectSource{Client: client, Bucket: bucket, Object: object}},
//	        {Name: "database", Source: records.DBSource{DB: db}},
//	    },
//	    Database: "database",
//	}
//
//	plan, executed, err := reconcile.ReconcileAndApply(ctx, spec, db, reconcile.ReconcileOptions{
//	    DoSync:    true,
//	    Confirmed: true,
//	})
package reconcile
