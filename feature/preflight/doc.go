// Package preflight runs fail-fast checks before the word MCP server starts.
//
// A launch that cannot succeed should stop the container immediately with a
// meaningful exit code, instead of starting a server that will never be
// reachable. The orchestrator then marks the instance unhealthy.
//
// # Checks Provided
//
//   - Port: PORT is a decimal number in 1..65535.
//   - Binary: the server executable is on PATH and executable.
//   - Storage: when enabled, the download bucket exists and is reachable with
//     the credentials the server inherits.
//
// Every check runs even after a failure so that `check --json` can report
// everything at once. Report.Err returns the first failure for the exit code.
package preflight
