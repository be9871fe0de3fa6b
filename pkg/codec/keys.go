package codec

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DefaultKeySize fits AES-256-GCM, ChaCha20-Poly1305 and every supported MAC.
const DefaultKeySize = 32

// GenerateKey returns size random bytes. size <= 0 means DefaultKeySize.
func GenerateKey(size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultKeySize
	}
	key := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveKey expands secret into a size-byte key with HKDF-SHA256.
func DeriveKey(secret []byte, info string, size int) ([]byte, error) {
	if len(secret) == 0 {
		return nil, configError(ErrInvalidKey)
	}
	if size <= 0 {
		size = DefaultKeySize
	}
	r := hkdf.New(sha256.New, secret, nil, []byte(info))
	key := make([]byte, size)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, configError(ErrInvalidKey, err)
	}
	return key, nil
}

// EncodeKey renders a key as standard base64 for configuration files.
func EncodeKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// DecodeKey parses a key produced by EncodeKey. URL-safe input is accepted too.
func DecodeKey(s string) ([]byte, error) {
	if s == "" {
		return nil, configError(ErrInvalidKey)
	}
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	} {
		if key, err := enc.DecodeString(s); err == nil {
			return key, nil
		}
	}
	return nil, configError(ErrInvalidKey, errors.New("key is not base64"))
}

func cloneKey(key []byte) []byte {
	out := make([]byte, len(key))
	copy(out, key)
	return out
}
