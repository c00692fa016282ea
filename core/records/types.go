package records

// Craft types produced by the ingest feature.
const (
	CraftShaped    = "shaped"
	CraftShapeless = "shapeless"
	CraftFurnace   = "furnace"
	CraftOredict   = "oredict"
)

// Record is a single row of the recipes table.
type Record struct {
	// ID is the unique recipe identifier (e.g. "minecraft:chest", "furnace:minecraft:iron_ore").
	ID string `gorm:"column:id;primaryKey;size:255" json:"id"`
	// CraftType is one of shaped, shapeless, furnace or oredict.
	CraftType string `gorm:"column:crafttype;size:32" json:"crafttype"`
	// ResItem is the bracketed result item reference (e.g. "<minecraft:chest>").
	ResItem string `gorm:"column:resitem;size:255;index" json:"resitem"`
	// Amount is the result quantity. Zero is treated as one.
	Amount int `gorm:"column:amount" json:"amount"`
	// CraftRaw is the raw ingredient expression. Empty means no ingredients.
	CraftRaw string `gorm:"column:craftraw;type:text" json:"craftraw"`
	// Seq keeps the stored order of the rows.
	Seq int `gorm:"column:seq;index" json:"-"`
}

// TableName overrides the table name.
func (Record) TableName() string {
	return "recipes"
}

// ResultAmount returns the result quantity, defaulting to 1.
func (r Record) ResultAmount() int {
	if r.Amount <= 0 {
		return 1
	}
	return r.Amount
}

// IsKnownCraftType reports whether t is one of the craft types emitted by ingestion.
func IsKnownCraftType(t string) bool {
	switch t {
	case CraftShaped, CraftShapeless, CraftFurnace, CraftOredict:
		return true
	default:
		return false
	}
}

// Mod is a single entry of the game's mod list.
type Mod struct {
	ID      string `gorm:"column:id;primaryKey;size:255" json:"id"`
	Name    string `gorm:"column:name;size:255" json:"name"`
	Version string `gorm:"column:version;size:255" json:"version"`
}

// TableName overrides the table name.
func (Mod) TableName() string {
	return "mods"
}
