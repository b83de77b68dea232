// Package config provides configuration management for the launcher.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Values already present in the environment are never
// replaced by the .env file, so the hosting platform stays authoritative.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into subsections:
//   - Server: the port handed to the MCP server (PORT, default 8080)
//   - Launch: executable name, launch mode and shutdown grace
//   - Log: logging level, format and optional rotated file
//   - Storage: S3/MinIO bucket verified before launch
//   - Probe: readiness probe path and timeout
//
// Keys map to SECTION_KEY environment variables (launch.mode -> LAUNCH_MODE).
// Fields may declare extra names in an `env` struct tag, e.g. server.port is
// read from PORT before SERVER_PORT.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
