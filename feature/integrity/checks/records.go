package checks

import (
	"fmt"

	"recipe-graph/core/recipegraph"
	"recipe-graph/core/records"
)

// Record problems reported by CheckRecords.
const (
	ProblemResult      = "malformed_result"
	ProblemCraftType   = "unknown_crafttype"
	ProblemAmount      = "non_positive_amount"
	ProblemIngredients = "malformed_ingredients"
	ProblemOredict     = "oredict_not_single"
)

// RecordIssue is one problem found on one record.
type RecordIssue struct {
	ID      string `json:"id"`
	Problem string `json:"problem"`
	Detail  string `json:"detail"`
}

// RecordsReport summarizes the validity of the record store.
type RecordsReport struct {
	Total     int            `json:"total"`
	Invalid   int            `json:"invalid"`
	ByProblem map[string]int `json:"by_problem"`
	// Issues holds at most the requested number of issues; ByProblem counts all of them.
	Issues []RecordIssue `json:"issues"`
}

// CheckRecords verifies that every record can be turned into a recipe: a parseable
// result reference, a known craft type, a positive amount and parseable ingredients.
// Ore dictionary rows must name exactly one item.
func CheckRecords(recs []records.Record, limit int) *RecordsReport {
	report := &RecordsReport{
		Total:     len(recs),
		ByProblem: make(map[string]int),
		Issues:    []RecordIssue{},
	}

	for _, rec := range recs {
		issues := validateRecord(rec)
		if len(issues) == 0 {
			continue
		}
		report.Invalid++
		for _, issue := range issues {
			report.ByProblem[issue.Problem]++
			if limit <= 0 || len(report.Issues) < limit {
				report.Issues = append(report.Issues, issue)
			}
		}
	}
	return report
}

func validateRecord(rec records.Record) []RecordIssue {
	var issues []RecordIssue
	add := func(problem, detail string) {
		issues = append(issues, RecordIssue{ID: rec.ID, Problem: problem, Detail: detail})
	}

	if _, err := recipegraph.CanonicalName(rec.ResItem); err != nil {
		add(ProblemResult, err.Error())
	}
	if !records.IsKnownCraftType(rec.CraftType) {
		add(ProblemCraftType, fmt.Sprintf("crafttype %q", rec.CraftType))
	}
	if rec.Amount < 1 {
		add(ProblemAmount, fmt.Sprintf("amount %d", rec.Amount))
	}

	stacks, err := recipegraph.ParseIngredients(rec.CraftRaw)
	if err != nil {
		add(ProblemIngredients, err.Error())
		return issues
	}
	if rec.CraftType == records.CraftOredict && (len(stacks) != 1 || stacks[0].Amount != 1) {
		add(ProblemOredict, fmt.Sprintf("%d ingredients in %q", len(stacks), rec.CraftRaw))
	}
	return issues
}
