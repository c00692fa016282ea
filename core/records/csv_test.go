package records

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	t.Run("Pandas style export", func(t *testing.T) {
		data := `,id,crafttype,resitem,amount,craftraw
0,minecraft:chest,shaped,<minecraft:chest>,1,"[[<ore:plankWood>, <ore:plankWood>, <ore:plankWood>], [<ore:plankWood>, null, <ore:plankWood>], [<ore:plankWood>, <ore:plankWood>, <ore:plankWood>]]"
1,oredict:ore:plankWood:minecraft:planks,oredict,<ore:plankWood>,,<minecraft:planks>
2,minecraft:stick,shapeless,<minecraft:stick>,4,
`
		recs, err := ReadCSV(strings.NewReader(data))
		require.NoError(t, err)
		require.Len(t, recs, 3)

		assert.Equal(t, "minecraft:chest", recs[0].ID)
		assert.Contains(t, recs[0].CraftRaw, "null")
		assert.Equal(t, 1, recs[1].Amount, "missing amount defaults to one")
		assert.Equal(t, 4, recs[2].Amount)
		assert.Empty(t, recs[2].CraftRaw)

		for i, r := range recs {
			assert.Equal(t, i, r.Seq)
		}
	})

	t.Run("Empty input", func(t *testing.T) {
		recs, err := ReadCSV(strings.NewReader(""))
		assert.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("Missing column", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("id,resitem\nx,<a:b>\n"))
		assert.ErrorContains(t, err, "crafttype")
	})

	t.Run("Bad amount", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("id,crafttype,resitem,amount,craftraw\nx,shaped,<a:b>,lots,\n"))
		assert.ErrorContains(t, err, "line 2")
	})
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	recs := []Record{
		{ID: "minecraft:chest", CraftType: CraftShaped, ResItem: "<minecraft:chest>", Amount: 1, CraftRaw: "[<ore:plankWood>, null]"},
		{ID: "minecraft:stick", CraftType: CraftShapeless, ResItem: "<minecraft:stick>"},
	}
	require.NoError(t, WriteCSV(&buf, recs))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,crafttype,resitem,amount,craftraw", lines[0])
	assert.Equal(t, `minecraft:chest,shaped,<minecraft:chest>,1,"[<ore:plankWood>, null]"`, lines[1])
	assert.Equal(t, "minecraft:stick,shapeless,<minecraft:stick>,1,", lines[2])

	back, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, recs[0].CraftRaw, back[0].CraftRaw)
	assert.Equal(t, 1, back[1].Amount)
}

func TestWriteModsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteModsCSV(&buf, []Mod{{ID: "harvestcraft", Name: "Pam's HarvestCraft", Version: "1.12.2zb"}}))
	assert.Equal(t, "id,name,version\nharvestcraft,Pam's HarvestCraft,1.12.2zb\n", buf.String())
}
