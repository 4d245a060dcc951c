package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"library-manager/core/storage"
	"library-manager/feature/catalog"
	"library-manager/feature/circulation"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const backupPrefix = "backups/"

// Service writes snapshot backups to object storage.
type Service struct {
	client  storage.Client
	bucket  string
	catalog *catalog.Store
	ledger  *circulation.Ledger
	logger  *zap.Logger
}

// NewService creates a new archive service.
func NewService(client storage.Client, bucket string, store *catalog.Store, ledger *circulation.Ledger, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		catalog: store,
		ledger:  ledger,
		logger:  logger,
	}
}

// Backup writes the current catalog and ledger content to the bucket and
// returns the object names written.
func (s *Service) Backup(ctx context.Context) ([]string, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	books, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	loans, err := s.ledger.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// Colons are out: object names stay friendly to every S3 tool.
	stamp := time.Now().UTC().Format("2006-01-02T15-04-05Z")

	objects := []struct {
		name    string
		payload any
	}{
		{backupPrefix + stamp + "/catalog.json", books},
		{backupPrefix + stamp + "/loans.json", loans},
	}

	written := make([]string, 0, len(objects))
	for _, obj := range objects {
		data, err := json.Marshal(obj.payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", obj.name, err)
		}

		_, err = s.client.PutObject(ctx, s.bucket, obj.name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: "application/json",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", obj.name, err)
		}
		written = append(written, obj.name)
	}

	s.logger.Info("Backup written",
		zap.String("bucket", s.bucket),
		zap.Strings("objects", written),
	)

	return written, nil
}

// ListBackups returns the names of all backup objects in the bucket.
func (s *Service) ListBackups(ctx context.Context) ([]string, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return []string{}, nil
	}

	names := []string{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    backupPrefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list backups: %w", obj.Err)
		}
		names = append(names, obj.Key)
	}
	return names, nil
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}
