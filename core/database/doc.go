// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections from the
// application's configuration. The recipes and mods tables written by ingestion live
// here, and the database can serve as the record store source.
//
// # Connect
//
// Connect picks the dialector from Config.Driver, applies the connection timeout and
// pings the database before returning.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns on either dialect and MissingColumns compares
// them to an expected list. The integrity feature uses both to verify the recipes table.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "recipes")
package database
