package codec

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// AEADAlgorithm names the authenticated cipher used by the Cipher variant.
type AEADAlgorithm string

const (
	// AESGCM accepts 16, 24 or 32 byte keys.
	AESGCM AEADAlgorithm = "AES-GCM"
	// ChaCha20Poly1305 requires a 32 byte key.
	ChaCha20Poly1305 AEADAlgorithm = "ChaCha20-Poly1305"
)

// Wire format constants. Both supported algorithms use exactly these sizes.
const (
	NonceSize = 12
	TagSize   = 16
)

var errUnexpectedSizes = errors.New("unexpected nonce or tag size")

type aeadEngine struct {
	aead cipher.AEAD
}

func newAEADEngine(alg AEADAlgorithm, key []byte) (*aeadEngine, error) {
	var (
		a   cipher.AEAD
		err error
	)
	switch alg {
	case AESGCM:
		var block cipher.Block
		if block, err = aes.NewCipher(key); err != nil {
			return nil, configError(ErrInvalidKey)
		}
		a, err = cipher.NewGCM(block)
	case ChaCha20Poly1305:
		a, err = chacha20poly1305.New(key)
		if err != nil {
			return nil, configError(ErrInvalidKey)
		}
	default:
		return nil, configError(ErrUnknownAlgorithm)
	}
	if err != nil {
		return nil, configError(err)
	}
	if a.NonceSize() != NonceSize || a.Overhead() != TagSize {
		return nil, configError(fmt.Errorf("%w: %s", errUnexpectedSizes, alg))
	}

	e := &aeadEngine{aead: a}
	// Trial round trip with a throwaway nonce, mirroring the MAC engine's trial sign.
	nonce := make([]byte, NonceSize)
	if _, err := e.open(nonce, e.seal(nonce, nil)); err != nil {
		return nil, configError(err)
	}
	return e, nil
}

// seal returns ciphertext with the tag appended.
func (e *aeadEngine) seal(nonce, plaintext []byte) []byte {
	return e.aead.Seal(nil, nonce, plaintext, nil)
}

// open fails identically for a wrong key, a wrong nonce and flipped bits.
func (e *aeadEngine) open(nonce, ciphertext []byte) ([]byte, error) {
	return e.aead.Open(nil, nonce, ciphertext, nil)
}
