package codec

import "errors"

var (
	// Construction errors. Every one of them also matches ErrConfig.
	ErrConfig           = errors.New("codec: invalid configuration")
	ErrInvalidKey       = errors.New("codec: invalid secret key")
	ErrNegativeMaxAge   = errors.New("codec: max age cannot be negative")
	ErrUnknownAlgorithm = errors.New("codec: unknown algorithm")
	ErrUnknownVariant   = errors.New("codec: unknown variant")

	// Decode errors.
	ErrMalformedToken = errors.New("codec: malformed token")
	ErrTokenInvalid   = errors.New("codec: token is invalid")
	ErrTokenTampered  = errors.New("codec: token has been tampered with")
	ErrTokenExpired   = errors.New("codec: token has expired")

	// ErrInvalidValue is returned by Encode for values the variant cannot carry.
	ErrInvalidValue = errors.New("codec: value cannot be encoded")
	// ErrInternal marks a failing primitive or random source after successful
	// construction. It is never a verdict about the token.
	ErrInternal = errors.New("codec: internal failure")
)

// Kind classifies codec failures into a closed set.
type Kind uint8

const (
	KindNone Kind = iota
	KindConfig
	KindMalformed
	KindInvalid
	KindTampered
	KindExpired
	KindInvalidValue
	KindInternal
	KindUnknown
)

// String returns the stable name of the kind, suitable for logs and API responses.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindConfig:
		return "config"
	case KindMalformed:
		return "malformed"
	case KindInvalid:
		return "invalid"
	case KindTampered:
		return "tampered"
	case KindExpired:
		return "expired"
	case KindInvalidValue:
		return "invalid_value"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// KindOf reports the failure kind of err. Malformed wins over invalid because
// every malformed token error is also an invalid token error.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrConfig):
		return KindConfig
	case errors.Is(err, ErrTokenExpired):
		return KindExpired
	case errors.Is(err, ErrTokenTampered):
		return KindTampered
	case errors.Is(err, ErrMalformedToken):
		return KindMalformed
	case errors.Is(err, ErrTokenInvalid):
		return KindInvalid
	case errors.Is(err, ErrInvalidValue):
		return KindInvalidValue
	case errors.Is(err, ErrInternal):
		return KindInternal
	default:
		return KindUnknown
	}
}

func configError(cause ...error) error {
	return errors.Join(append([]error{ErrConfig}, cause...)...)
}

func malformed(cause ...error) error {
	return errors.Join(append([]error{ErrTokenInvalid, ErrMalformedToken}, cause...)...)
}
