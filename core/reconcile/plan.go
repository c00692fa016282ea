package reconcile

import (
	"context"
	"fmt"
	"strings"

	"recipe-graph/core/records"

	"gorm.io/gorm"
)

// ReconcileWithPlan performs reconciliation and returns a plan with results and actions.
// It does NOT execute actions; use ApplyPlan for that.
// Only ids that are missing somewhere or mismatched are kept in the plan results.
func ReconcileWithPlan(ctx context.Context, spec *Spec, opts ReconcileOptions) (*ReconcilePlan, error) {
	indices, err := loadIndices(ctx, spec)
	if err != nil {
		return nil, err
	}

	results := buildResults(spec, indices)
	summary, actions := buildPlanFromResults(results, spec, indices, opts)

	issues := make([]ReconcileResult, 0)
	for _, r := range results {
		if !r.Complete() || len(r.Mismatch) > 0 {
			issues = append(issues, r)
		}
	}

	return &ReconcilePlan{
		Reference: spec.Reference(),
		Results:   issues,
		Actions:   actions,
		Summary:   summary,
	}, nil
}

// ApplyPlan executes the actions in a reconcile plan against the recipes table.
// Returns the number of actions executed and any error encountered.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func ApplyPlan(ctx context.Context, db *gorm.DB, plan *ReconcilePlan, opts ReconcileOptions) (executed int, err error) {
	// Safety check: do not execute if not confirmed or dry-run
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}
	if len(plan.Actions) == 0 {
		return 0, nil
	}
	if db == nil {
		return 0, fmt.Errorf("applying a reconcile plan requires a database connection")
	}

	var (
		deleteKeys []string
		syncRows   []records.Record
	)
	for _, action := range plan.Actions {
		switch action.Type {
		case ActionDeleteDB:
			deleteKeys = append(deleteKeys, action.Key)
		case ActionSyncDB:
			syncRows = append(syncRows, action.Record)
		}
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := records.DeleteDB(ctx, tx, deleteKeys); err != nil {
			return err
		}
		return records.UpsertDB(ctx, tx, syncRows)
	})
	if err != nil {
		return 0, err
	}
	return len(deleteKeys) + len(syncRows), nil
}

// ReconcileAndApply is a convenience wrapper that plans and optionally applies actions.
// It returns the plan, number of actions executed, and any error.
func ReconcileAndApply(ctx context.Context, spec *Spec, db *gorm.DB, opts ReconcileOptions) (*ReconcilePlan, int, error) {
	plan, err := ReconcileWithPlan(ctx, spec, opts)
	if err != nil {
		return nil, 0, err
	}

	executed, err := ApplyPlan(ctx, db, plan, opts)
	return plan, executed, err
}

// buildPlanFromResults generates a summary and action plan from reconciliation results.
func buildPlanFromResults(results []ReconcileResult, spec *Spec, indices []index, opts ReconcileOptions) (PlanSummary, []Action) {
	summary := PlanSummary{
		TotalItems: len(results),
		Missing:    make(map[string]int, len(spec.Sources)),
	}
	var actions []Action

	ref := spec.Reference()
	dbIdx := -1
	for i, src := range spec.Sources {
		summary.Missing[src.Name] = 0
		if i > 0 && src.Name == spec.Database {
			dbIdx = i
		}
	}

	for _, result := range results {
		for name, ok := range result.Present {
			if !ok {
				summary.Missing[name]++
			}
		}
		if len(result.Mismatch) > 0 {
			summary.Mismatches++
		}
		if dbIdx < 0 {
			continue
		}

		inRef := result.Present[ref]
		inDB := result.Present[spec.Database]

		// Plan purge actions: rows the reference no longer has
		if opts.DoPurge && inDB && !inRef {
			actions = append(actions, Action{
				Type:   ActionDeleteDB,
				Key:    result.ID,
				Reason: "missing in: " + ref,
			})
			summary.PurgeActions++
			continue
		}

		// Plan sync actions: rows missing from or different in the database
		if !opts.DoSync || !inRef {
			continue
		}
		prefix := spec.Database + " "
		var dbMismatch []string
		for _, m := range result.Mismatch {
			if strings.HasPrefix(m, prefix) {
				dbMismatch = append(dbMismatch, strings.TrimPrefix(m, prefix))
			}
		}
		if inDB && len(dbMismatch) == 0 {
			continue
		}

		reason := "missing in: " + spec.Database
		if inDB {
			reason = fmt.Sprintf("mismatch: %v", dbMismatch)
		}
		actions = append(actions, Action{
			Type:   ActionSyncDB,
			Key:    result.ID,
			Reason: reason,
			Record: indices[0][result.ID],
		})
		summary.SyncActions++
	}

	return summary, actions
}
