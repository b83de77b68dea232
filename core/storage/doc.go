// Package storage provides access to the object storage used by the word MCP
// server for document downloads.
//
// The launcher does not read or write objects. It only verifies, before the
// server starts, that the configured bucket exists and the credentials the
// server inherits (AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY,
// AWS_DEFAULT_REGION) can reach it. The client wraps MinIO, which speaks to
// both AWS S3 and self-hosted MinIO.
//
// # Client Interface
//
// The Client interface keeps the preflight testable with the mock in
// core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "documents")
package storage
