package weights

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/byestunting/byestunting/internal/config"
	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/logging"
	"github.com/byestunting/byestunting/pkg/errors"
)

// ObjectFetcher is the slice of object storage the bucket source needs.
// Narrowed from the minio-go client so tests can substitute a fake.
type ObjectFetcher interface {
	Fetch(ctx context.Context, bucket, object string) (io.ReadCloser, error)
}

// minioFetcher adapts a minio-go client to ObjectFetcher.
type minioFetcher struct {
	client *minio.Client
}

func (f *minioFetcher) Fetch(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	obj, err := f.client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// BucketSource reads model artifacts from a MinIO (or S3-compatible) bucket,
// for deployments where model updates roll out through object storage rather
// than image rebuilds.
type BucketSource struct {
	fetcher        ObjectFetcher
	bucket         string
	manifestObject string
	weightsObject  string
	logger         logging.Logger
}

// NewBucketSource connects to the configured MinIO endpoint.
func NewBucketSource(cfg *config.MinIOConfig, logger logging.Logger) (*BucketSource, error) {
	if cfg == nil {
		return nil, errors.InvalidParam("minio config is required")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeWeightArtifact, "creating minio client")
	}

	logger.Info("minio weight source ready",
		logging.String("endpoint", cfg.Endpoint),
		logging.String("bucket", cfg.Bucket),
	)

	return &BucketSource{
		fetcher:        &minioFetcher{client: client},
		bucket:         cfg.Bucket,
		manifestObject: cfg.ManifestObject,
		weightsObject:  cfg.WeightsObject,
		logger:         logger,
	}, nil
}

// NewBucketSourceWithFetcher builds a bucket source over an existing fetcher.
func NewBucketSourceWithFetcher(fetcher ObjectFetcher, bucket, manifestObject, weightsObject string) (*BucketSource, error) {
	if fetcher == nil {
		return nil, errors.InvalidParam("object fetcher is required")
	}
	return &BucketSource{
		fetcher:        fetcher,
		bucket:         bucket,
		manifestObject: manifestObject,
		weightsObject:  weightsObject,
		logger:         logging.NewNopLogger(),
	}, nil
}

// Manifest returns the raw model.json bytes from the bucket.
func (s *BucketSource) Manifest(ctx context.Context) ([]byte, error) {
	return s.fetch(ctx, s.manifestObject)
}

// Weights returns the raw weight blob bytes from the bucket.
func (s *BucketSource) Weights(ctx context.Context) ([]byte, error) {
	return s.fetch(ctx, s.weightsObject)
}

func (s *BucketSource) fetch(ctx context.Context, object string) ([]byte, error) {
	rc, err := s.fetcher.Fetch(ctx, s.bucket, object)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeWeightArtifact, "fetching weight artifact").WithDetail(object)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeWeightArtifact, "reading weight artifact").WithDetail(object)
	}
	return data, nil
}
