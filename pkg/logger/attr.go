package logger

import (
	"log/slog"

	"github.com/dmitrymomot/sealkit/pkg/codec"
)

// Error records err under "error". Nil yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Variant records the codec variant under "variant".
func Variant(v codec.Variant) slog.Attr {
	return slog.String("variant", string(v))
}

// FailureKind records the codec failure kind of err under "failure".
// Use it instead of Error for decode failures so token contents never reach logs.
func FailureKind(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("failure", codec.KindOf(err).String())
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}
