package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"word-mcp-launcher/core/server"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// ErrNotReady is returned when the server does not complete an MCP exchange.
var ErrNotReady = errors.New("server not ready")

// Result describes a successful probe.
type Result struct {
	Endpoint string        `json:"endpoint,omitempty"`
	Tools    int           `json:"tools"`
	Latency  time.Duration `json:"latency"`
}

// Prober checks that the server speaks MCP: it initializes a session, pings
// and lists tools.
type Prober struct {
	client *mcp.Client
	logger *zap.Logger
}

// New creates a prober that identifies itself with version.
func New(version string, logger *zap.Logger) *Prober {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Prober{
		client: mcp.NewClient(&mcp.Implementation{Name: "word-mcp-launcher-probe", Version: version}, nil),
		logger: logger,
	}
}

// Endpoint returns the loopback URL of the server's MCP endpoint. The server
// binds 0.0.0.0, so loopback always reaches it from inside the container.
func Endpoint(srv server.Config, path string) string {
	if path == "" {
		path = "/mcp"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "http://" + net.JoinHostPort("127.0.0.1", srv.PortOrDefault()) + path
}

// ProbeHTTP probes the streamable HTTP endpoint at url.
// ctx bounds the whole exchange.
func (p *Prober) ProbeHTTP(ctx context.Context, url string) (*Result, error) {
	transport := &mcp.StreamableClientTransport{Endpoint: url}

	res, err := p.Probe(ctx, transport)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	res.Endpoint = url
	return res, nil
}

// Probe runs the readiness exchange over an arbitrary transport.
func (p *Prober) Probe(ctx context.Context, transport mcp.Transport) (*Result, error) {
	start := time.Now()

	session, err := p.client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: initialize: %v", ErrNotReady, err)
	}
	defer session.Close()

	if err := session.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("%w: ping: %v", ErrNotReady, err)
	}

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: list tools: %v", ErrNotReady, err)
	}

	res := &Result{Tools: len(tools.Tools), Latency: time.Since(start)}
	p.logger.Debug("Probe succeeded", zap.Int("tools", res.Tools), zap.Duration("latency", res.Latency))
	return res, nil
}
