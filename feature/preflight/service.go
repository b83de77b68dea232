package preflight

import (
	"context"
	"time"

	"word-mcp-launcher/core/config"
	"word-mcp-launcher/core/launcher"
	"word-mcp-launcher/core/storage"
	"word-mcp-launcher/feature/preflight/checks"

	"go.uber.org/zap"
)

// Report is the combined result of all preflight checks.
type Report struct {
	Passed  bool                  `json:"passed"`
	Port    *checks.PortReport    `json:"port"`
	Binary  *checks.BinaryReport  `json:"binary"`
	Storage *checks.StorageReport `json:"storage"`

	err error
}

// Err returns the error of the first failed check, or nil.
// Storage failures carry launcher.ExitConfig.
func (r *Report) Err() error {
	return r.err
}

func (r *Report) fail(err error) {
	r.Passed = false
	if r.err == nil {
		r.err = err
	}
}

// Service runs the checks that must pass before the server is launched.
type Service struct {
	cfg    *config.Config
	client storage.Client
	logger *zap.Logger
}

// NewService creates a new preflight service. client may be nil when the
// storage check is disabled.
func NewService(cfg *config.Config, client storage.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cfg:    cfg,
		client: client,
		logger: logger,
	}
}

// Run executes every check and never stops early, so the report is complete.
func (s *Service) Run(ctx context.Context) *Report {
	report := &Report{Passed: true}

	port, err := checks.CheckPort(s.cfg.Server)
	report.Port = port
	if err != nil {
		s.logger.Error("Port check failed", zap.Error(err))
		report.fail(err)
	}

	bin, err := checks.CheckBinary(s.cfg.Launch.Binary)
	report.Binary = bin
	if err != nil {
		s.logger.Error("Server executable check failed", zap.Error(err))
		report.fail(err)
	}

	report.Storage = s.checkStorage(ctx, report)

	if report.Passed {
		s.logger.Debug("Preflight passed",
			zap.String("binary", bin.Path),
			zap.String("address", port.Address))
	}

	return report
}

func (s *Service) checkStorage(ctx context.Context, report *Report) *checks.StorageReport {
	if !s.cfg.Storage.Enabled {
		return &checks.StorageReport{Bucket: s.cfg.Storage.Bucket, Status: "skipped"}
	}

	timeout := time.Duration(s.cfg.Storage.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := checks.CheckStorage(ctx, s.client, s.cfg.Storage.Bucket)
	if err != nil {
		s.logger.Error("Storage check failed",
			zap.String("bucket", s.cfg.Storage.Bucket),
			zap.String("endpoint", s.cfg.Storage.Endpoint),
			zap.Error(err))
		report.fail(&launcher.ExitError{Code: launcher.ExitConfig, Err: err})
	}
	return res
}
