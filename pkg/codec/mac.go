package codec

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// MACAlgorithm names the keyed hash used by the Signer variant.
type MACAlgorithm string

const (
	HmacSHA256 MACAlgorithm = "HmacSHA256"
	HmacSHA384 MACAlgorithm = "HmacSHA384"
	HmacSHA512 MACAlgorithm = "HmacSHA512"
	// HmacSHA1 exists for tokens issued by older deployments.
	HmacSHA1 MACAlgorithm = "HmacSHA1"
	// Blake2b256 is keyed BLAKE2b with a 32-byte tag. Keys are limited to 64 bytes.
	Blake2b256 MACAlgorithm = "BLAKE2b-256"
)

// macEngine computes fixed-length tags. A fresh hash.Hash is built per call,
// so one engine is safe for concurrent use.
type macEngine struct {
	newHash func() (hash.Hash, error)
	size    int
}

func newMACEngine(alg MACAlgorithm, key []byte) (*macEngine, error) {
	if len(key) == 0 {
		return nil, configError(ErrInvalidKey)
	}
	key = cloneKey(key)

	var newHash func() (hash.Hash, error)
	switch alg {
	case HmacSHA256:
		newHash = hmacFactory(sha256.New, key)
	case HmacSHA384:
		newHash = hmacFactory(sha512.New384, key)
	case HmacSHA512:
		newHash = hmacFactory(sha512.New, key)
	case HmacSHA1:
		newHash = hmacFactory(sha1.New, key)
	case Blake2b256:
		newHash = func() (hash.Hash, error) { return blake2b.New256(key) }
	default:
		return nil, configError(ErrUnknownAlgorithm)
	}

	// Trial sign so misconfiguration surfaces here instead of in Encode.
	h, err := newHash()
	if err != nil {
		return nil, configError(ErrInvalidKey)
	}
	return &macEngine{newHash: newHash, size: h.Size()}, nil
}

func hmacFactory(fn func() hash.Hash, key []byte) func() (hash.Hash, error) {
	return func() (hash.Hash, error) { return hmac.New(fn, key), nil }
}

func (e *macEngine) sign(payload []byte) ([]byte, error) {
	h, err := e.newHash()
	if err != nil {
		return nil, err
	}
	h.Write(payload)
	return h.Sum(nil), nil
}

// verify compares in constant time. hmac.Equal also returns false on length mismatch.
func (e *macEngine) verify(payload, tag []byte) (bool, error) {
	expected, err := e.sign(payload)
	if err != nil {
		return false, err
	}
	return hmac.Equal(expected, tag), nil
}
