package checks

import (
	"context"
	"errors"
	"fmt"

	"word-mcp-launcher/core/storage"
)

// ErrStorageUnavailable is returned when the download bucket cannot be used.
var ErrStorageUnavailable = errors.New("storage unavailable")

// StorageReport strictly types the result of the storage check.
type StorageReport struct {
	Bucket string `json:"bucket"`
	Exists bool   `json:"exists"`
	Status string `json:"status"` // "ok", "error", "skipped"
	Error  string `json:"error,omitempty"`
}

// CheckStorage verifies the bucket the server publishes documents to exists
// and is reachable with the inherited credentials.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket, Status: "ok"}

	fail := func(err error) (*StorageReport, error) {
		report.Status = "error"
		report.Error = err.Error()
		return report, err
	}

	if bucket == "" {
		return fail(fmt.Errorf("%w: no bucket configured", ErrStorageUnavailable))
	}
	if client == nil {
		return fail(fmt.Errorf("%w: no storage client", ErrStorageUnavailable))
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fail(fmt.Errorf("%w: failed to check bucket existence: %v", ErrStorageUnavailable, err))
	}
	report.Exists = exists
	if !exists {
		return fail(fmt.Errorf("%w: bucket %s does not exist", ErrStorageUnavailable, bucket))
	}

	return report, nil
}
