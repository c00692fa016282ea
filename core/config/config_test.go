package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "recipes", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "csv", cfg.Records.Source)
	assert.Equal(t, 300, cfg.Records.CacheTTLSeconds)
	assert.Empty(t, cfg.Records.IDPrefixes)
	assert.Equal(t, "<harvestcraft:persimmonyogurtitem>", cfg.Graph.DefaultItem)
	assert.True(t, cfg.Graph.Collapse)
	assert.Empty(t, cfg.Graph.ForceAtomic)
}

func TestLoadConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	yaml := `graph:
  force_atomic:
    - <minecraft:water_bucket>
    - <minecraft:milk_bucket>
  collapse: false
records:
  source: database
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"<minecraft:water_bucket>", "<minecraft:milk_bucket>"}, cfg.Graph.ForceAtomic)
	assert.False(t, cfg.Graph.Collapse)
	assert.Equal(t, "database", cfg.Records.Source)
}

func TestLoadConfig_Env(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9090\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("SERVER_PORT") })

	t.Setenv("RECORDS_ID_PREFIXES", "minecraft:,harvestcraft:")
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"minecraft:", "harvestcraft:"}, cfg.Records.IDPrefixes)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("graph: [unclosed"), 0o644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
