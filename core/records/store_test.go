package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	return []Record{
		{ID: "minecraft:chest", CraftType: CraftShaped, ResItem: "<minecraft:chest>", Amount: 1, CraftRaw: "[[<ore:plankWood>]]"},
		{ID: "minecraft:torch", CraftType: CraftShaped, ResItem: "<minecraft:torch>", Amount: 4, CraftRaw: "[[<minecraft:coal>], [<ore:stickWood>]]"},
		{ID: "minecraft:torch_charcoal", CraftType: CraftShaped, ResItem: "<minecraft:torch>", Amount: 4, CraftRaw: "[[<minecraft:coal:1>], [<ore:stickWood>]]"},
		{ID: "furnace:minecraft:log", CraftType: CraftFurnace, ResItem: "<minecraft:coal:1>", Amount: 1, CraftRaw: "<minecraft:log>"},
		{ID: "minecraft:chest", CraftType: CraftShapeless, ResItem: "<minecraft:chest>", Amount: 2, CraftRaw: "<minecraft:planks>"},
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(sampleRecords())

	t.Run("First id wins", func(t *testing.T) {
		assert.Equal(t, 4, store.Len())
		rec, ok := store.Record("minecraft:chest")
		require.True(t, ok)
		assert.Equal(t, CraftShaped, rec.CraftType)
	})

	t.Run("By result keeps order", func(t *testing.T) {
		recs := store.ByResult("<minecraft:torch>")
		require.Len(t, recs, 2)
		assert.Equal(t, "minecraft:torch", recs[0].ID)
		assert.Equal(t, "minecraft:torch_charcoal", recs[1].ID)

		assert.Empty(t, store.ByResult("<minecraft:bedrock>"))
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, ok := store.Record("nothing")
		assert.False(t, ok)
	})

	t.Run("Result items", func(t *testing.T) {
		assert.Equal(t, []string{"<minecraft:chest>", "<minecraft:coal:1>", "<minecraft:torch>"}, store.ResultItems())
	})

	t.Run("All is a copy", func(t *testing.T) {
		all := store.All()
		all[0].ID = "changed"
		rec, _ := store.Record("minecraft:chest")
		assert.Equal(t, "minecraft:chest", rec.ID)
	})
}

func TestFilterPrefixes(t *testing.T) {
	recs := sampleRecords()

	assert.Len(t, FilterPrefixes(recs, nil), len(recs))

	filtered := FilterPrefixes(recs, []string{"furnace:", ""})
	require.Len(t, filtered, 1)
	assert.Equal(t, "furnace:minecraft:log", filtered[0].ID)

	assert.Empty(t, FilterPrefixes(recs, []string{"harvestcraft:"}))
}

func TestRecordHelpers(t *testing.T) {
	assert.Equal(t, 1, Record{Amount: 0}.ResultAmount())
	assert.Equal(t, 3, Record{Amount: 3}.ResultAmount())
	assert.True(t, IsKnownCraftType(CraftOredict))
	assert.False(t, IsKnownCraftType("atomic"))
}
