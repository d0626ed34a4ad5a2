package assets

import (
	"context"
	"fmt"
	"io"

	"station_lookup_backend/platform/apperr"
	"station_lookup_backend/platform/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStore reads assets stored as objects in a single bucket.
type MinIOStore struct {
	client *minio.Client
	bucket string
}

// NewMinIOStore creates a MinIO-backed asset store.
func NewMinIOStore(cfg config.MinIOConfig) (*MinIOStore, error) {
	if !cfg.IsMinIOEnabled() {
		return nil, fmt.Errorf("MinIO is not configured")
	}

	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinIOStore{client: client, bucket: cfg.GetMinioBucketAssets()}, nil
}

// CheckBucket verifies that the asset bucket exists.
func (s *MinIOStore) CheckBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("asset bucket %s does not exist", s.bucket)
	}
	return nil
}

// Read downloads the object named name.
func (s *MinIOStore) Read(ctx context.Context, name string) (string, error) {
	const op = "assets.MinIOStore.Read"
	if err := checkName(op, name); err != nil {
		return "", err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return "", mapMinIOError(op, name, err)
	}
	defer func() {
		_ = obj.Close()
	}()

	// GetObject is lazy; a missing key only surfaces on the first read.
	data, err := io.ReadAll(io.LimitReader(obj, maxAssetBytes))
	if err != nil {
		return "", mapMinIOError(op, name, err)
	}
	return string(data), nil
}

func mapMinIOError(op, name string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return notFound(op, name)
	}
	return apperr.Wrap(apperr.KindUnavailable, "asset store unavailable", err).WithOp(op)
}
