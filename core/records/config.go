package records

// Source kinds accepted in Config.Source.
const (
	SourceCSV      = "csv"
	SourceDatabase = "database"
	SourceStorage  = "storage"
)

// Config holds configuration for loading the record store.
type Config struct {
	// Source selects where records are loaded from (csv, database, storage).
	Source string `mapstructure:"source" default:"csv"`
	// Path is the CSV file used by the csv source.
	Path string `mapstructure:"path" default:"recipes.csv"`
	// Object is the CSV object name used by the storage source.
	Object string `mapstructure:"object" default:"records/recipes.csv"`
	// DumpObject is the crafttweaker log read by ingestion when no file is given.
	DumpObject string `mapstructure:"dump_object" default:"dumps/crafttweaker.log"`
	// IDPrefixes restricts the visible records to ids with one of these prefixes.
	IDPrefixes []string `mapstructure:"id_prefixes" default:""`
	// CacheTTLSeconds is how long a loaded snapshot is reused. Zero reloads on every request.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}
