package minio

import (
	"context"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO archives rendered documents and signs download links for them.
// Implementations are safe for concurrent use.
type MinIO interface {
	Ping(ctx context.Context) error
	EnsureBucket(ctx context.Context, bucket string) error
	PutDocument(ctx context.Context, obj Object) (StoredObject, error)
	SignDownload(ctx context.Context, req SignRequest) (SignedURL, error)
	Close() error
}

// NewMinIO builds a client for cfg. It does not contact the server; call Ping for that.
func NewMinIO(cfg Config) (MinIO, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
		Transport: &http.Transport{
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: maxIdleConns,
			IdleConnTimeout:     idleConnTimeout,
			DisableCompression:  true,
		},
	})
	if err != nil {
		return nil, &OpError{Op: "new", Kind: ErrUnavailable, Err: err}
	}

	return &implMinIO{client: client, region: cfg.Region, now: timeNow}, nil
}
