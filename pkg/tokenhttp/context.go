package tokenhttp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dmitrymomot/sealkit/pkg/codec"
)

type contextKey struct{ name string }

func (c contextKey) String() string { return c.name }

var (
	tokenContextKey     = &contextKey{name: "token"}
	valueContextKey     = &contextKey{name: "token_value"}
	requestIDContextKey = &contextKey{name: "request_id"}
)

func withToken(ctx context.Context, token string, value []byte) context.Context {
	ctx = context.WithValue(ctx, tokenContextKey, token)
	return context.WithValue(ctx, valueContextKey, value)
}

// TokenFromContext returns the raw token accepted by Middleware.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

// ValueFromContext returns the decoded token value stored by Middleware.
// A cipher token sealing JSON null yields (nil, true).
func ValueFromContext(ctx context.Context) ([]byte, bool) {
	value, ok := ctx.Value(valueContextKey).([]byte)
	return value, ok
}

// ValueAs unmarshals the stored value into T. It is the counterpart of
// codec.Issue: values must have been issued as JSON.
func ValueAs[T any](ctx context.Context) (T, error) {
	var v T
	data, ok := ValueFromContext(ctx)
	if !ok {
		return v, ErrNoToken
	}
	if data == nil {
		return v, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Join(codec.ErrTokenInvalid, err)
	}
	return v, nil
}

// RequestIDFromContext returns the id assigned by the RequestID middleware.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}
