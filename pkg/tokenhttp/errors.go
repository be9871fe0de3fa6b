package tokenhttp

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/sealkit/pkg/codec"
)

var (
	ErrNoToken        = errors.New("tokenhttp: no token in request")
	ErrUnknownVariant = errors.New("tokenhttp: variant not served")
	ErrBadRequest     = errors.New("tokenhttp: bad request body")
)

// StatusFor maps a codec failure to the HTTP status returned for it.
func StatusFor(err error) int {
	switch codec.KindOf(err) {
	case codec.KindNone:
		return http.StatusOK
	case codec.KindMalformed, codec.KindInvalid:
		return http.StatusBadRequest
	case codec.KindTampered, codec.KindExpired:
		return http.StatusUnauthorized
	case codec.KindInvalidValue:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// messageFor returns a client-safe description of a codec failure.
func messageFor(kind codec.Kind) string {
	switch kind {
	case codec.KindMalformed:
		return "token is malformed"
	case codec.KindInvalid:
		return "token is invalid"
	case codec.KindTampered:
		return "token signature mismatch"
	case codec.KindExpired:
		return "token has expired"
	case codec.KindInvalidValue:
		return "value cannot be encoded"
	default:
		return "internal error"
	}
}
