// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL connections for
// production and sqlite connections for tests and local development.
//
// # Connect
//
// The Connect function establishes a pooled connection based on the
// configured driver and verifies it with a bounded ping.
//
// # Schema Inspection
//
// The package also exposes GetTableColumns to read a table's column
// definitions (SHOW COLUMNS on MySQL, PRAGMA table_info on sqlite), used
// by the migrate command to verify the schema after migration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "notes")
package database
