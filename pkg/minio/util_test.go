package minio

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBucket(t *testing.T) {
	tests := []struct {
		bucket string
		ok     bool
	}{
		{"crm-reports", true},
		{"exports", true},
		{"", false},
		{"ab", false},
		{"CRM-reports", false},
		{"crm--reports", false},
		{"-crm", false},
		{"crm_reports", false},
	}

	for _, tc := range tests {
		t.Run(tc.bucket, func(t *testing.T) {
			err := checkBucket(tc.bucket)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestObjectValidate(t *testing.T) {
	valid := Object{
		Bucket:      "crm-reports",
		Key:         "reports/r1/weekly-report-2024-W12.pdf",
		ContentType: "application/pdf",
		Content:     []byte("%PDF"),
	}
	require.NoError(t, valid.validate())

	empty := valid
	empty.Content = nil
	assert.ErrorIs(t, empty.validate(), ErrInvalidInput)

	slash := valid
	slash.Key = "/reports/r1.pdf"
	assert.ErrorIs(t, slash.validate(), ErrInvalidInput)

	untyped := valid
	untyped.ContentType = ""
	assert.ErrorIs(t, untyped.validate(), ErrInvalidInput)
}

func TestSignRequestValidate(t *testing.T) {
	req := SignRequest{Bucket: "crm-reports", Key: "a.pdf", Expiry: time.Hour}
	assert.NoError(t, req.validate())

	req.Expiry = 8 * 24 * time.Hour
	assert.ErrorIs(t, req.validate(), ErrInvalidInput)

	req.Expiry = 0
	assert.ErrorIs(t, req.validate(), ErrInvalidInput)
}

func TestConfigNormalize(t *testing.T) {
	cfg, err := Config{Endpoint: "minio", AccessKey: "a", SecretKey: "b", Region: "us-east-1"}.normalize()
	require.NoError(t, err)
	assert.Equal(t, "minio:9000", cfg.Endpoint)

	cfg, err = Config{Endpoint: "minio:9100", AccessKey: "a", SecretKey: "b", Region: "us-east-1"}.normalize()
	require.NoError(t, err)
	assert.Equal(t, "minio:9100", cfg.Endpoint)

	_, err = Config{Endpoint: "minio", Region: "us-east-1"}.normalize()
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOpErrorMatchesKindAndCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := error(&OpError{Op: "ping", Kind: ErrUnavailable, Err: cause})

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "minio ping: minio: unavailable: dial tcp: refused", err.Error())
}
