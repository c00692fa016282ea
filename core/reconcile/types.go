package reconcile

import "recipe-graph/core/records"

// Named is a record source with the name it is reported under.
type Named struct {
	Name   string
	Source records.Source
}

// Spec defines the sources compared by a reconciliation.
type Spec struct {
	// Sources are loaded concurrently. The first one is the reference the others are
	// compared against.
	Sources []Named

	// Database names the source backed by the recipes table. Plans only mutate that
	// source; it must not be the reference.
	Database string
}

// Reference returns the name of the reference source.
func (s *Spec) Reference() string {
	if len(s.Sources) == 0 {
		return ""
	}
	return s.Sources[0].Name
}

// ReconcileResult represents the reconciliation output for a single record id.
type ReconcileResult struct {
	// ID is the record id.
	ID string `json:"id"`

	// Present maps each source name to whether it holds the record.
	Present map[string]bool `json:"present"`

	// Mismatch describes field differences from the reference,
	// e.g. "database amount: ref=4 got=1".
	Mismatch []string `json:"mismatch"`
}

// Complete reports whether every source holds the record.
func (r *ReconcileResult) Complete() bool {
	for _, ok := range r.Present {
		if !ok {
			return false
		}
	}
	return true
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionDeleteDB deletes a row the reference does not have.
	ActionDeleteDB ActionType = "delete_db"
	// ActionSyncDB upserts a missing or mismatched row from the reference.
	ActionSyncDB ActionType = "sync_db"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the record id.
	Key string `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`

	// Record is the reference row written by ActionSyncDB.
	Record records.Record `json:"-"`
}

// ReconcilePlan contains reconciliation results and planned actions.
type ReconcilePlan struct {
	// Reference is the name of the source the others were compared against.
	Reference string `json:"reference"`

	// Results contains one entry per record id that is not consistent across sources.
	Results []ReconcileResult `json:"results"`

	// Actions contains planned mutation operations.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// TotalItems is the number of distinct record ids across all sources.
	TotalItems int `json:"total_items"`

	// Missing counts, per source, the ids some other source holds.
	Missing map[string]int `json:"missing"`

	// Mismatches counts ids whose rows differ from the reference.
	Mismatches int `json:"mismatches"`

	// PurgeActions counts planned delete actions.
	PurgeActions int `json:"purge_actions"`

	// SyncActions counts planned upsert actions.
	SyncActions int `json:"sync_actions"`
}

// ReconcileOptions controls reconcile behavior for purge/sync operations.
type ReconcileOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// DoPurge plans deletion of database rows missing in the reference.
	DoPurge bool

	// DoSync plans upserts of reference rows missing or different in the database.
	DoSync bool

	// Confirmed indicates user has confirmed destructive actions.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool
}
