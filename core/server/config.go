package server

import (
	"errors"
	"fmt"
	"strconv"
)

// Host is the interface the server always binds. Anything narrower is
// unreachable from outside the container network namespace.
const Host = "0.0.0.0"

// DefaultPort is used when the platform does not assign PORT.
const DefaultPort = "8080"

// ErrInvalidPort is returned when PORT is not a usable TCP port.
var ErrInvalidPort = errors.New("invalid port")

// Config holds the listen settings handed to the MCP server.
type Config struct {
	// Port is the TCP port assigned by the hosting platform.
	Port string `mapstructure:"port" env:"PORT" default:"8080"`
}

// PortOrDefault returns the configured port, or DefaultPort when it is empty.
func (c Config) PortOrDefault() string {
	if c.Port == "" {
		return DefaultPort
	}
	return c.Port
}

// Validate checks that the port is a decimal number in 1..65535.
func (c Config) Validate() error {
	_, err := ParsePort(c.PortOrDefault())
	return err
}

// Args returns the flags passed to the server executable.
// The port string is passed through unchanged.
func (c Config) Args() []string {
	return []string{"--host", Host, "--port", c.PortOrDefault()}
}

// Address returns the host:port pair the server will listen on.
func (c Config) Address() string {
	return Host + ":" + c.PortOrDefault()
}

// ParsePort parses a port made only of ASCII digits.
// Signs, spaces and hex prefixes are rejected so the value given to the
// server is exactly what the platform assigned.
func ParsePort(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidPort)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidPort, s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidPort, s, err)
	}
	if n < 1 || n > 65535 {
		return 0, fmt.Errorf("%w: %d is out of range 1-65535", ErrInvalidPort, n)
	}
	return n, nil
}
