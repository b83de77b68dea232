package server

import "time"

// ProbeConfig holds the settings used to check that the server answers.
type ProbeConfig struct {
	// Path is the MCP endpoint served by the word MCP server.
	Path string `mapstructure:"path" default:"/mcp"`
	// TimeoutSeconds bounds the whole check.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
}

// Timeout returns the check deadline, falling back to five seconds.
func (c ProbeConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
