package cookie

import "errors"

var (
	ErrNoCodec           = errors.New("cookie.no_codec")
	ErrSignerNotSet      = errors.New("cookie.signer_not_set")
	ErrCipherNotSet      = errors.New("cookie.cipher_not_set")
	ErrCookieNotFound    = errors.New("cookie.not_found")
	ErrInvalidFlashValue = errors.New("cookie.invalid_flash_value")
)
