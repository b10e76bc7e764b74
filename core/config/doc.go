// Package config provides configuration management for Bulk Manager.
//
// It utilizes Viper for loading configuration from environment variables
// and a .env file, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL/sqlite connection details
//   - Log: Logging level and format
//   - Bulk: per-resource bulk operation settings (identifier field,
//     transaction wrapping)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
