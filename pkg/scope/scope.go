// Package scope carries the caller identity the API gateway forwards in the X-Scope header.
package scope

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"report-srv/internal/model"
)

// HeaderName carries the caller scope set by the API gateway.
const HeaderName = "X-Scope"

var (
	ErrMalformed  = errors.New("scope: malformed header")
	ErrEmptyScope = errors.New("scope: header has no user")
)

// EncodeHeader renders sc as base64 JSON.
func EncodeHeader(sc model.Scope) (string, error) {
	raw, err := json.Marshal(sc)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeHeader parses a header value in standard or URL-safe base64, padded or not.
func DecodeHeader(header string) (model.Scope, error) {
	header = strings.TrimSpace(header)
	raw, err := decodeBase64(header)
	if err != nil {
		return model.Scope{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var sc model.Scope
	if err := json.Unmarshal(raw, &sc); err != nil {
		return model.Scope{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if strings.TrimSpace(sc.UserID) == "" {
		return model.Scope{}, ErrEmptyScope
	}
	return sc, nil
}

func decodeBase64(s string) ([]byte, error) {
	enc := base64.StdEncoding
	if strings.ContainsAny(s, "-_") {
		enc = base64.URLEncoding
	}
	if !strings.HasSuffix(s, "=") && len(s)%4 != 0 {
		enc = enc.WithPadding(base64.NoPadding)
	}
	return enc.DecodeString(s)
}

type ctxKey struct{}

// WithScope stores sc in ctx.
func WithScope(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, sc)
}

// FromContext returns the scope in ctx and whether one was set.
func FromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(ctxKey{}).(model.Scope)
	return sc, ok
}
