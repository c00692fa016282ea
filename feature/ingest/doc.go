// Package ingest turns crafttweaker logs into record store rows.
//
// CraftTweaker dumps the game's registries to crafttweaker.log when the /ct mods,
// /ct recipes, /ct recipes furnace and /ct oredict commands are run. The log is a
// sequence of blocks, each opened by a header line ending in a colon.
//
// # Blocks
//
//   - Mods list: "id - name - version" lines, written to the mods table.
//   - Recipes: recipes.addShaped and recipes.addShapeless calls.
//   - Furnace Recipes: furnace.addRecipe calls, keyed "furnace:<input>".
//   - Ore entries for <ore:x>: one "-<item>" line per accepted item, keyed
//     "oredict:ore:x:<item>".
//
// Blocks, Entities, Foods, Liquids and the item list are recognized and ignored.
// Unknown headers and malformed lines are logged and skipped. Rows are de-duplicated
// by id, first occurrence wins.
//
// # Sinks
//
// A parsed log can be written to recipes.csv and mods.csv in a local directory,
// upserted into the database, and uploaded to the bucket as the record CSV. Each run
// that writes anywhere triggers the OnStored callback, which the server uses to drop
// cached graph sessions.
package ingest
