package minio

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"net/url"

	"github.com/minio/minio-go/v7"
)

func (m *implMinIO) Ping(ctx context.Context) error {
	if _, err := m.client.ListBuckets(ctx); err != nil {
		return classify("ping", err)
	}
	return nil
}

// Close is a no-op; minio-go holds no connection state beyond its transport.
func (m *implMinIO) Close() error {
	return nil
}

// EnsureBucket creates bucket when it is missing.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucket string) error {
	if err := checkBucket(bucket); err != nil {
		return &OpError{Op: "ensure_bucket", Kind: ErrInvalidInput, Err: err}
	}
	exists, err := m.client.BucketExists(ctx, bucket)
	if err != nil {
		return classify("ensure_bucket", err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: m.region}); err != nil {
		return classify("ensure_bucket", err)
	}
	return nil
}

func (m *implMinIO) PutDocument(ctx context.Context, obj Object) (StoredObject, error) {
	if err := obj.validate(); err != nil {
		return StoredObject{}, &OpError{Op: "put_document", Kind: ErrInvalidInput, Err: err}
	}

	meta := maps.Clone(obj.Metadata)
	if meta == nil {
		meta = map[string]string{}
	}
	if obj.FileName != "" {
		meta[metaFileName] = obj.FileName
	}

	info, err := m.client.PutObject(ctx, obj.Bucket, obj.Key, bytes.NewReader(obj.Content), int64(len(obj.Content)),
		minio.PutObjectOptions{ContentType: obj.ContentType, UserMetadata: meta})
	if err != nil {
		return StoredObject{}, classify("put_document", err)
	}
	return StoredObject{Bucket: obj.Bucket, Key: obj.Key, Size: info.Size, ETag: info.ETag}, nil
}

// SignDownload signs a GET link that saves the object under req.FileName.
func (m *implMinIO) SignDownload(ctx context.Context, req SignRequest) (SignedURL, error) {
	if err := req.validate(); err != nil {
		return SignedURL{}, &OpError{Op: "sign_download", Kind: ErrInvalidInput, Err: err}
	}

	params := url.Values{}
	if req.FileName != "" {
		params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", req.FileName))
	}

	issued := m.now()
	u, err := m.client.PresignedGetObject(ctx, req.Bucket, req.Key, req.Expiry, params)
	if err != nil {
		return SignedURL{}, classify("sign_download", err)
	}
	return SignedURL{URL: u.String(), ExpiresAt: issued.Add(req.Expiry)}, nil
}
