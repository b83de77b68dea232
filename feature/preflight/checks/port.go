package checks

import (
	"word-mcp-launcher/core/server"
)

// PortReport strictly types the result of the listen address check.
type PortReport struct {
	Port    string `json:"port"`
	Address string `json:"address"`
	Status  string `json:"status"` // "ok", "error"
	Error   string `json:"error,omitempty"`
}

// CheckPort validates the platform-assigned port.
func CheckPort(cfg server.Config) (*PortReport, error) {
	report := &PortReport{
		Port:    cfg.PortOrDefault(),
		Address: cfg.Address(),
		Status:  "ok",
	}

	if err := cfg.Validate(); err != nil {
		report.Status = "error"
		report.Error = err.Error()
		return report, err
	}

	return report, nil
}
