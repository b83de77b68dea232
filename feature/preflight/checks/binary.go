package checks

import (
	"word-mcp-launcher/core/launcher"
)

// BinaryReport strictly types the result of the executable check.
type BinaryReport struct {
	Binary string `json:"binary"`
	Path   string `json:"path,omitempty"`
	Status string `json:"status"` // "ok", "error"
	Error  string `json:"error,omitempty"`
}

// CheckBinary verifies the server executable can be resolved and run.
func CheckBinary(binary string) (*BinaryReport, error) {
	if binary == "" {
		binary = launcher.DefaultBinary
	}

	report := &BinaryReport{Binary: binary, Status: "ok"}

	path, err := launcher.Resolve(binary)
	if err != nil {
		report.Status = "error"
		report.Error = err.Error()
		return report, err
	}

	report.Path = path
	return report, nil
}
