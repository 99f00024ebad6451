// Package config provides configuration management for the sync service.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details for the board database
//   - ERP: upstream ERP base URL and credentials
//   - Redis: run-guard lock backend
//   - Storage: S3/MinIO credentials for snapshot archiving
//   - Sync: engine tunables such as the absence walk limit
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
