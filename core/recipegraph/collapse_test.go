package recipegraph

import (
	"testing"

	"recipe-graph/core/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapse_DirectIngredient(t *testing.T) {
	g := newTestGraph([]records.Record{
		{ID: "r1", CraftType: "shapeless", ResItem: "<mod:table>", Amount: 1, CraftRaw: "<mod:plank>*4"},
		{ID: "oredict:1", CraftType: "oredict", ResItem: "<ore:plankWood>", Amount: 1, CraftRaw: "<mod:plank>"},
	})

	table, err := g.Resolve("<mod:table>")
	require.NoError(t, err)
	g.Collapse()

	recipes := table.Recipes()
	require.Len(t, recipes, 1)
	assert.Equal(t, []Stack{{Item: "<mod:plank>", Amount: 4}}, recipes[0].Ingredients())

	_, ok := g.Lookup("<ore:plankWood>")
	assert.False(t, ok)
}

func TestCollapse_RewritesAliasEdges(t *testing.T) {
	g := newTestGraph(chestRecords())

	chest, err := g.Resolve("<minecraft:chest>")
	require.NoError(t, err)

	res := g.Collapse()
	assert.Equal(t, map[string]string{"<ore:plankWood>": "<minecraft:planks>"}, res.Aliases)
	assert.Empty(t, res.Retained)
	assert.Positive(t, res.Rewritten)

	assert.Equal(t, []Stack{{Item: "<minecraft:planks>", Amount: 8}}, chest.Recipes()[0].Ingredients())
	_, ok := g.Lookup("<ore:plankWood>")
	assert.False(t, ok)

	planks, ok := g.Lookup("<minecraft:planks>")
	require.True(t, ok)
	assert.True(t, planks.Resolved())
	assert.Len(t, planks.Recipes(), 1)
}

func TestCollapse_Idempotent(t *testing.T) {
	g := newTestGraph(chestRecords())

	_, err := g.Resolve("<minecraft:chest>")
	require.NoError(t, err)
	g.Collapse()

	before, err := g.Export("<minecraft:chest>")
	require.NoError(t, err)
	itemsBefore, recipesBefore := g.Stats()

	res := g.Collapse()
	assert.Empty(t, res.Aliases)
	assert.Zero(t, res.Rewritten)

	after, err := g.Export("<minecraft:chest>")
	require.NoError(t, err)
	itemsAfter, recipesAfter := g.Stats()

	assert.Equal(t, before, after)
	assert.Equal(t, itemsBefore, itemsAfter)
	assert.Equal(t, recipesBefore, recipesAfter)
}

func TestCollapse_KeepsMultiRecipeAliases(t *testing.T) {
	g := newTestGraph([]records.Record{
		{ID: "torch", CraftType: "shaped", ResItem: "<mod:torch>", Amount: 4, CraftRaw: "[<ore:coal>, <mod:stick>]"},
		{ID: "oredict:ore:coal:mod:coal", CraftType: "oredict", ResItem: "<ore:coal>", Amount: 1, CraftRaw: "<mod:coal>"},
		{ID: "oredict:ore:coal:mod:charcoal", CraftType: "oredict", ResItem: "<ore:coal>", Amount: 1, CraftRaw: "<mod:charcoal>"},
		{ID: "sticks", CraftType: "shaped", ResItem: "<mod:stick>", Amount: 4, CraftRaw: "[<mod:planks>, <mod:planks>]"},
	})

	torch, err := g.Resolve("<mod:torch>")
	require.NoError(t, err)

	res := g.Collapse()
	assert.Empty(t, res.Aliases)
	assert.Equal(t, []Stack{{Item: "<ore:coal>", Amount: 1}, {Item: "<mod:stick>", Amount: 1}}, torch.Recipes()[0].Ingredients())

	_, ok := g.Lookup("<ore:coal>")
	assert.True(t, ok)
}

func TestCollapse_MergesRewrittenDuplicates(t *testing.T) {
	g := newTestGraph([]records.Record{
		{ID: "bench", CraftType: "shaped", ResItem: "<mod:bench>", Amount: 1, CraftRaw: "[<ore:plankWood>, <ore:plankWood>, <mod:plank>]"},
		{ID: "oredict:ore:plankWood:mod:plank", CraftType: "oredict", ResItem: "<ore:plankWood>", Amount: 1, CraftRaw: "<mod:plank>"},
	})

	bench, err := g.Resolve("<mod:bench>")
	require.NoError(t, err)
	g.Collapse()

	assert.Equal(t, []Stack{{Item: "<mod:plank>", Amount: 3}}, bench.Recipes()[0].Ingredients())
}

func TestCollapse_AliasChainNeedsRepeatedPasses(t *testing.T) {
	g := newTestGraph([]records.Record{
		{ID: "gear", CraftType: "shaped", ResItem: "<mod:gear>", Amount: 1, CraftRaw: "[<ore:gearIron>*2]"},
		{ID: "oredict:ore:gearIron:ore:ingotIron", CraftType: "oredict", ResItem: "<ore:gearIron>", Amount: 1, CraftRaw: "<ore:ingotIron>"},
		{ID: "oredict:ore:ingotIron:mod:iron", CraftType: "oredict", ResItem: "<ore:ingotIron>", Amount: 1, CraftRaw: "<mod:iron>"},
	})

	gear, err := g.Resolve("<mod:gear>")
	require.NoError(t, err)

	first := g.Collapse()
	assert.Equal(t, map[string]string{"<ore:gearIron>": "<ore:ingotIron>"}, first.Aliases)
	assert.Equal(t, []string{"<ore:ingotIron>"}, first.Retained)
	assert.Equal(t, []Stack{{Item: "<ore:ingotIron>", Amount: 2}}, gear.Recipes()[0].Ingredients())

	second := g.Collapse()
	assert.Equal(t, map[string]string{"<ore:ingotIron>": "<mod:iron>"}, second.Aliases)
	assert.Equal(t, []Stack{{Item: "<mod:iron>", Amount: 2}}, gear.Recipes()[0].Ingredients())

	third := g.Collapse()
	assert.Empty(t, third.Aliases)

	for _, alias := range []string{"<ore:gearIron>", "<ore:ingotIron>"} {
		_, ok := g.Lookup(alias)
		assert.False(t, ok, alias)
	}
}

func TestCollapse_SkipsUnresolvedAliases(t *testing.T) {
	g := newTestGraph(chestRecords())

	chest, err := g.GetItem("<minecraft:chest>")
	require.NoError(t, err)

	res := g.Collapse()
	assert.Empty(t, res.Aliases)
	assert.Equal(t, []Stack{{Item: "<ore:plankWood>", Amount: 8}}, chest.Recipes()[0].Ingredients())
}
