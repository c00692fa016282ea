// Package integrity provides health checks for the storage, database and record
// backends the recipe graph depends on.
//
// # Checks Provided
//
//   - Structure: Checks that the bucket and its required folders exist (the dump
//     folder, the record CSV folder and the export prefix).
//   - Schema: Validates that the recipes and mods tables match the GORM models
//     (columns, types).
//   - Records: Validates every loaded record: result reference, craft type, amount
//     and ingredient list. Ore dictionary rows must name exactly one item.
//   - Sinks: Reconciles the record rows of the bucket object, the CSV file and the
//     recipes table (see core/reconcile) and optionally repairs the table.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/schema : Runs schema check.
//   - GET /integrity/records : Runs records check (supports ?limit=n).
//   - GET /integrity/sinks : Runs sinks reconciliation (supports ?purge, ?sync, ?confirm).
package integrity
