// Package storage provides the object storage client used for snapshot backups.
//
// It wraps the MinIO SDK behind a small Client interface so the archive
// feature can be tested against mocks. Only the operations backups need are
// exposed: bucket existence/creation, object upload and listing.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err != nil {
//	    log.Fatal("Failed to create storage client", err)
//	}
package storage
