// Package config provides configuration management for the recipe graph tooling.
//
// It utilizes Viper for loading configuration from environment variables, an optional
// config.yaml and a .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL or SQLite connection details for the recipes table
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Records: where the record store is loaded from and which ids are visible
//   - Graph: force-atomic items, default item, collapse and export settings
//
// List values such as graph.force_atomic are YAML lists in config.yaml and comma
// separated strings in the environment (GRAPH_FORCE_ATOMIC).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Graph.DefaultItem)
package config
