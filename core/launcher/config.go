package launcher

import "time"

// DefaultBinary is the executable installed by the image build.
const DefaultBinary = "word_mcp_server"

const (
	// ModeSupervise starts the server as a child, forwards signals and
	// propagates its exit status.
	ModeSupervise = "supervise"
	// ModeExec replaces the launcher process with the server.
	ModeExec = "exec"
)

// Config holds configuration for launching the server executable.
type Config struct {
	// Binary is the executable name (looked up on PATH) or path.
	Binary string `mapstructure:"binary" env:"WORD_MCP_SERVER_BIN,LAUNCH_BINARY" default:"word_mcp_server"`
	// Mode is either supervise or exec.
	Mode string `mapstructure:"mode" default:"supervise"`
	// ShutdownTimeoutSeconds is the grace period between forwarding a
	// termination signal and killing the server.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"10"`
}

// IsValidMode checks if the configured mode is supported.
func (c Config) IsValidMode() bool {
	switch c.Mode {
	case ModeSupervise, ModeExec:
		return true
	default:
		return false
	}
}

// ShutdownTimeout returns the grace period, never less than one second.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
