package checks

import (
	"testing"

	"recipe-graph/core/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRecords(t *testing.T) {
	recs := []records.Record{
		{ID: "minecraft:chest", CraftType: "shaped", ResItem: "<minecraft:chest>", Amount: 1,
			CraftRaw: "[[<ore:plankWood>, <ore:plankWood>, <ore:plankWood>], [<ore:plankWood>, null, <ore:plankWood>], [<ore:plankWood>, <ore:plankWood>, <ore:plankWood>]]"},
		{ID: "furnace:minecraft:log:*", CraftType: "furnace", ResItem: "<minecraft:coal:1>", Amount: 1, CraftRaw: "<minecraft:log:*>"},
		{ID: "oredict:ore:plankWood:minecraft:planks", CraftType: "oredict", ResItem: "<ore:plankWood>", Amount: 1, CraftRaw: "<minecraft:planks>"},
		{ID: "broken:result", CraftType: "shaped", ResItem: "minecraft:stick", Amount: 4, CraftRaw: "[<minecraft:planks>]"},
		{ID: "broken:type", CraftType: "smelting", ResItem: "<minecraft:glass>", Amount: 0, CraftRaw: "<minecraft:sand>"},
		{ID: "broken:oredict", CraftType: "oredict", ResItem: "<ore:dye>", Amount: 1, CraftRaw: "[<minecraft:dye>, <minecraft:ink>]"},
		{ID: "broken:multiplier", CraftType: "shapeless", ResItem: "<minecraft:torch>", Amount: 4, CraftRaw: "[<minecraft:coal> * 0]"},
	}

	report := CheckRecords(recs, 0)
	assert.Equal(t, 7, report.Total)
	assert.Equal(t, 4, report.Invalid)
	assert.Equal(t, map[string]int{
		ProblemResult:      1,
		ProblemCraftType:   1,
		ProblemAmount:      1,
		ProblemOredict:     1,
		ProblemIngredients: 1,
	}, report.ByProblem)
	require.Len(t, report.Issues, 5)
	assert.Equal(t, RecordIssue{ID: "broken:result", Problem: ProblemResult, Detail: report.Issues[0].Detail}, report.Issues[0])
	assert.Equal(t, "broken:type", report.Issues[1].ID)
	assert.Equal(t, "broken:type", report.Issues[2].ID)
}

func TestCheckRecords_Limit(t *testing.T) {
	var recs []records.Record
	for i := 0; i < 10; i++ {
		recs = append(recs, records.Record{ID: "bad", CraftType: "unknown", ResItem: "<a:b>", Amount: 1})
	}

	report := CheckRecords(recs, 3)
	assert.Equal(t, 10, report.Invalid)
	assert.Equal(t, 10, report.ByProblem[ProblemCraftType])
	assert.Len(t, report.Issues, 3)
}

func TestCheckRecords_Empty(t *testing.T) {
	report := CheckRecords(nil, 10)
	assert.Zero(t, report.Total)
	assert.Zero(t, report.Invalid)
	assert.NotNil(t, report.Issues)
}
