package recipegraph

// Config holds configuration for recipe graph sessions.
type Config struct {
	// ForceAtomic lists item names that are always treated as raw resources.
	ForceAtomic []string `mapstructure:"force_atomic" default:""`
	// DefaultItem is resolved when a request names no item.
	DefaultItem string `mapstructure:"default_item" default:"<harvestcraft:persimmonyogurtitem>"`
	// Collapse enables the ore-dictionary collapse pass after each resolution.
	Collapse bool `mapstructure:"collapse" default:"true"`
	// ExportPrefix is the bucket prefix published exports are written under.
	ExportPrefix string `mapstructure:"export_prefix" default:"exports"`
}
