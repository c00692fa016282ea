package recipegraph

import (
	"testing"

	"recipe-graph/core/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodeIDs(exp *Export) []string {
	ids := make([]string, 0, len(exp.Nodes))
	for _, n := range exp.Nodes {
		ids = append(ids, n.ID)
	}
	return ids
}

func edgesOfKind(exp *Export, kind EdgeKind) []Edge {
	var out []Edge
	for _, e := range exp.Edges {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func TestExport_Diamond(t *testing.T) {
	g := newTestGraph([]records.Record{
		{ID: "top", CraftType: "shaped", ResItem: "<mod:top>", Amount: 1, CraftRaw: "[<mod:left>, <mod:right>]"},
		{ID: "left", CraftType: "shapeless", ResItem: "<mod:left>", Amount: 1, CraftRaw: "[<mod:base>, <mod:base>]"},
		{ID: "right", CraftType: "furnace", ResItem: "<mod:right>", Amount: 2, CraftRaw: "<mod:base>"},
	})

	_, err := g.Resolve("<mod:top>")
	require.NoError(t, err)

	exp, err := g.Export("<mod:top>")
	require.NoError(t, err)

	assert.Equal(t, "<mod:top>", exp.Root)
	assert.Equal(t, []string{"<mod:top>", "top", "<mod:left>", "left", "<mod:base>", "<mod:right>", "right"}, nodeIDs(exp))

	assert.ElementsMatch(t, []Edge{
		{Source: "<mod:top>", Target: "top", Kind: EdgeResult, Amount: 1},
		{Source: "<mod:left>", Target: "left", Kind: EdgeResult, Amount: 1},
		{Source: "<mod:right>", Target: "right", Kind: EdgeResult, Amount: 2},
	}, edgesOfKind(exp, EdgeResult))

	assert.ElementsMatch(t, []Edge{
		{Source: "top", Target: "<mod:left>", Kind: EdgeIngredient, Amount: 1},
		{Source: "top", Target: "<mod:right>", Kind: EdgeIngredient, Amount: 1},
		{Source: "left", Target: "<mod:base>", Kind: EdgeIngredient, Amount: 2},
		{Source: "right", Target: "<mod:base>", Kind: EdgeIngredient, Amount: 1},
	}, edgesOfKind(exp, EdgeIngredient))

	assert.Empty(t, edgesOfKind(exp, EdgeAlternative))
	for _, n := range exp.Nodes {
		assert.Empty(t, n.Parent, n.ID)
	}
}

func TestExport_Alternatives(t *testing.T) {
	g := newTestGraph([]records.Record{
		{ID: "lamp:glass", CraftType: "shaped", ResItem: "<mod:lamp>", Amount: 1, CraftRaw: "[<mod:glass>, <mod:torch>]"},
		{ID: "lamp:glowstone", CraftType: "shapeless", ResItem: "<mod:lamp>", Amount: 2, CraftRaw: "[<mod:glowstone>]"},
		{ID: "lamp:redstone", CraftType: "shapeless", ResItem: "<mod:lamp>", Amount: 1, CraftRaw: "[<mod:redstone>*4]"},
	})

	_, err := g.Resolve("<mod:lamp>")
	require.NoError(t, err)

	exp, err := g.Export("<mod:lamp>")
	require.NoError(t, err)

	for _, n := range exp.Nodes {
		if n.Kind == NodeRecipe {
			assert.Equal(t, "<mod:lamp>", n.Parent, n.ID)
		}
	}

	assert.Equal(t, []Edge{
		{Source: "lamp:glass", Target: "lamp:glowstone", Kind: EdgeAlternative},
		{Source: "lamp:glass", Target: "lamp:redstone", Kind: EdgeAlternative},
		{Source: "lamp:glowstone", Target: "lamp:redstone", Kind: EdgeAlternative},
	}, edgesOfKind(exp, EdgeAlternative))

	assert.Contains(t, exp.Edges, Edge{Source: "<mod:lamp>", Target: "lamp:glowstone", Kind: EdgeResult, Amount: 2})
	assert.Contains(t, exp.Edges, Edge{Source: "lamp:redstone", Target: "<mod:redstone>", Kind: EdgeIngredient, Amount: 4})
}

func TestExport_AfterCollapse(t *testing.T) {
	g := newTestGraph(chestRecords())

	_, err := g.Resolve("<minecraft:chest>")
	require.NoError(t, err)
	g.Collapse()

	exp, err := g.Export("<minecraft:chest>")
	require.NoError(t, err)

	assert.NotContains(t, nodeIDs(exp), "<ore:plankWood>")
	assert.Contains(t, exp.Edges, Edge{Source: "minecraft:chest", Target: "<minecraft:planks>", Kind: EdgeIngredient, Amount: 8})
}

func TestExport_Errors(t *testing.T) {
	g := newTestGraph(chestRecords())

	_, err := g.Export("<mod:ghost>")
	var notCached *ItemNotCachedError
	assert.ErrorAs(t, err, &notCached)

	_, err = g.Export("ghost")
	var malformed *MalformedReferenceError
	assert.ErrorAs(t, err, &malformed)
}
