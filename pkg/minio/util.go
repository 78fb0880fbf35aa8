package minio

import (
	"net"
	"strings"
	"time"
)

func (c Config) normalize() (Config, error) {
	switch {
	case c.Endpoint == "":
		return c, invalid("endpoint is required")
	case c.AccessKey == "" || c.SecretKey == "":
		return c, invalid("access key and secret key are required")
	case c.Region == "":
		return c, invalid("region is required")
	}
	if _, _, err := net.SplitHostPort(c.Endpoint); err != nil {
		c.Endpoint = net.JoinHostPort(c.Endpoint, defaultPort)
	}
	return c, nil
}

// checkBucket applies the S3 bucket naming rules that matter for generated names.
func checkBucket(bucket string) error {
	if n := len(bucket); n < 3 || n > 63 {
		return invalid("bucket %q must be 3 to 63 characters", bucket)
	}
	for _, r := range bucket {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return invalid("bucket %q may only hold lowercase letters, digits and hyphens", bucket)
		}
	}
	if bucket[0] == '-' || bucket[len(bucket)-1] == '-' || strings.Contains(bucket, "--") {
		return invalid("bucket %q has a misplaced hyphen", bucket)
	}
	return nil
}

func checkKey(key string) error {
	switch {
	case key == "":
		return invalid("object key is required")
	case strings.HasPrefix(key, "/") || strings.HasSuffix(key, "/"):
		return invalid("object key %q cannot start or end with /", key)
	case strings.Contains(key, `\`):
		return invalid("object key %q cannot contain backslashes", key)
	}
	return nil
}

func (o Object) validate() error {
	if err := checkBucket(o.Bucket); err != nil {
		return err
	}
	if err := checkKey(o.Key); err != nil {
		return err
	}
	switch {
	case len(o.Content) == 0:
		return invalid("document %q is empty", o.Key)
	case len(o.Content) > MaxDocumentBytes:
		return invalid("document %q exceeds %d bytes", o.Key, MaxDocumentBytes)
	case o.ContentType == "":
		return invalid("content type is required")
	}
	return nil
}

func (r SignRequest) validate() error {
	if err := checkBucket(r.Bucket); err != nil {
		return err
	}
	if err := checkKey(r.Key); err != nil {
		return err
	}
	if r.Expiry <= 0 || r.Expiry > MaxSignExpiry {
		return invalid("expiry %s outside (0, %s]", r.Expiry, time.Duration(MaxSignExpiry))
	}
	return nil
}
