package minio

import (
	"time"

	"github.com/minio/minio-go/v7"
)

const (
	maxIdleConns    = 50
	idleConnTimeout = 90 * time.Second

	defaultPort = "9000"

	// MaxDocumentBytes bounds a single archived document.
	MaxDocumentBytes = 100 << 20
	// MaxSignExpiry is the longest lifetime S3 accepts for a presigned URL.
	MaxSignExpiry = 7 * 24 * time.Hour

	metaFileName = "file-name"
)

var timeNow = time.Now

// Config holds MinIO connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

type implMinIO struct {
	client *minio.Client
	region string
	now    func() time.Time
}

// Object is a document to archive. Content is uploaded as-is.
type Object struct {
	Bucket      string
	Key         string
	FileName    string
	ContentType string
	Content     []byte
	Metadata    map[string]string
}

// StoredObject is what the server reports back after an upload.
type StoredObject struct {
	Bucket string
	Key    string
	Size   int64
	ETag   string
}

// SignRequest asks for a GET link that downloads Key as FileName.
type SignRequest struct {
	Bucket   string
	Key      string
	FileName string
	Expiry   time.Duration
}

// SignedURL is a presigned download link.
type SignedURL struct {
	URL       string
	ExpiresAt time.Time
}
