package minio

import (
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

var (
	ErrInvalidInput = errors.New("minio: invalid input")
	ErrNotFound     = errors.New("minio: not found")
	ErrAccessDenied = errors.New("minio: access denied")
	ErrUnavailable  = errors.New("minio: unavailable")
)

// OpError reports which operation failed. errors.Is matches both Kind and Err.
type OpError struct {
	Op   string
	Kind error
	Err  error
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("minio %s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("minio %s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// classify maps an S3 error response onto the package sentinels.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	kind := ErrUnavailable
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchBucket", "NoSuchKey":
		kind = ErrNotFound
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		kind = ErrAccessDenied
	}
	return &OpError{Op: op, Kind: kind, Err: err}
}
