// Package logger provides a structured logging facility based on Zap.
//
// Logs are written to stderr so that the supervised server keeps stdout to
// itself. Optionally the same entries are mirrored as JSON lines into a file
// rotated by lumberjack.
//
// # Launch correlation
//
// Every launch gets a random identifier. WithLaunch attaches it as the
// launch_id field so that all lines from one container start can be grouped.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//   - File: optional rotated log file (size, backups, age, compression)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithLaunch(log, uuid.NewString())
//	log.Info("Launching server")
package logger
