// Package config provides configuration management for the library manager.
//
// It utilizes Viper for loading configuration from environment variables and
// .env files.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Engine: inventory engine binary path, working directory and timeout
//   - Database: MySQL connection details for the catalog mirror and loan ledger
//   - Storage: S3/MinIO credentials and bucket for snapshot backups
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
