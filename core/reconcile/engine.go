package reconcile

import (
	"context"
	"fmt"
	"sort"

	"recipe-graph/core/records"

	"golang.org/x/sync/errgroup"
)

// index is one source's rows keyed by id, first occurrence wins.
type index map[string]records.Record

// loadIndices loads every source concurrently.
func loadIndices(ctx context.Context, spec *Spec) ([]index, error) {
	if len(spec.Sources) == 0 {
		return nil, fmt.Errorf("reconcile needs at least one source")
	}

	indices := make([]index, len(spec.Sources))
	g, ctx := errgroup.WithContext(ctx)
	for i, src := range spec.Sources {
		i, src := i, src
		g.Go(func() error {
			recs, err := src.Source.Load(ctx)
			if err != nil {
				return fmt.Errorf("failed to load %s records: %w", src.Name, err)
			}
			idx := make(index, len(recs))
			for _, r := range recs {
				if _, ok := idx[r.ID]; !ok {
					idx[r.ID] = r
				}
			}
			indices[i] = idx
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return indices, nil
}

// ReconcileAll compares every source against the reference and returns one result per
// record id, sorted by id.
func ReconcileAll(ctx context.Context, spec *Spec) ([]ReconcileResult, error) {
	indices, err := loadIndices(ctx, spec)
	if err != nil {
		return nil, err
	}
	return buildResults(spec, indices), nil
}

func buildResults(spec *Spec, indices []index) []ReconcileResult {
	union := make(map[string]struct{})
	for _, idx := range indices {
		for key := range idx {
			union[key] = struct{}{}
		}
	}

	results := make([]ReconcileResult, 0, len(union))
	for key := range union {
		results = append(results, buildResult(key, spec, indices))
	}

	// Sort results by key for deterministic output
	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})
	return results
}

// buildResult creates a ReconcileResult for a single key.
func buildResult(key string, spec *Spec, indices []index) ReconcileResult {
	result := ReconcileResult{
		ID:       key,
		Present:  make(map[string]bool, len(indices)),
		Mismatch: []string{},
	}

	ref, refPresent := indices[0][key]
	for i, idx := range indices {
		name := spec.Sources[i].Name
		rec, ok := idx[key]
		result.Present[name] = ok
		if i == 0 || !ok || !refPresent {
			continue
		}
		for _, m := range CompareRecords(ref, rec) {
			result.Mismatch = append(result.Mismatch, name+" "+m)
		}
	}
	return result
}

// CompareRecords lists the fields of got that differ from ref. Amounts are compared
// after defaulting, ingredient expressions verbatim.
func CompareRecords(ref, got records.Record) []string {
	var diffs []string
	if ref.CraftType != got.CraftType {
		diffs = append(diffs, fmt.Sprintf("crafttype: ref=%s got=%s", ref.CraftType, got.CraftType))
	}
	if ref.ResItem != got.ResItem {
		diffs = append(diffs, fmt.Sprintf("resitem: ref=%s got=%s", ref.ResItem, got.ResItem))
	}
	if ref.ResultAmount() != got.ResultAmount() {
		diffs = append(diffs, fmt.Sprintf("amount: ref=%d got=%d", ref.ResultAmount(), got.ResultAmount()))
	}
	if ref.CraftRaw != got.CraftRaw {
		diffs = append(diffs, fmt.Sprintf("craftraw: ref=%q got=%q", ref.CraftRaw, got.CraftRaw))
	}
	return diffs
}
