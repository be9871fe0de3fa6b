package codec

import (
	"encoding/base64"
	"strings"
)

var frameEncoding = base64.RawURLEncoding.Strict()

func encodeFrame(b []byte) string {
	return frameEncoding.EncodeToString(b)
}

// decodeFrame reverses encodeFrame. The stdlib decoder silently skips CR and LF,
// so they are rejected up front to keep one token text per byte sequence.
func decodeFrame(s string) ([]byte, error) {
	if strings.ContainsAny(s, "\r\n") {
		return nil, ErrMalformedToken
	}
	b, err := frameEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrMalformedToken
	}
	return b, nil
}
