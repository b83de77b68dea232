// Package probe implements the container readiness check.
//
// The launcher does not understand the word MCP server's tools. It only
// checks that something on PORT completes an MCP initialize handshake,
// answers a ping and lists its tools, using the official Go SDK client over
// the streamable HTTP transport.
//
// # Usage
//
//	p := probe.New(version, log)
//	res, err := p.ProbeHTTP(ctx, probe.Endpoint(cfg.Server, cfg.Probe.Path))
package probe
