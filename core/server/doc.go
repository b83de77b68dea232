// Package server holds the listen settings handed to the word MCP server.
//
// The launcher never opens a socket itself. This package only translates the
// platform-assigned PORT into the flags the server executable expects.
//
// # Configuration
//
// The Config struct carries the port. The bind host is the constant Host
// ("0.0.0.0") and cannot be overridden.
//
// # Usage
//
//	cfg := server.Config{Port: os.Getenv("PORT")}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	args := cfg.Args() // --host 0.0.0.0 --port 8080
package server
