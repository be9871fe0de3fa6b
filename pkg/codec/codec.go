package codec

import "fmt"

// Variant selects the cryptographic construction behind a Codec.
type Variant string

const (
	// VariantSigner keeps the value readable and detects modification.
	VariantSigner Variant = "signer"
	// VariantCipher hides the value and detects modification.
	VariantCipher Variant = "cipher"
)

// ParseVariant maps a configuration string to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantSigner, VariantCipher:
		return v, nil
	default:
		return "", configError(fmt.Errorf("%w: %q", ErrUnknownVariant, s))
	}
}

// Codec turns values into expiring, tamper-evident tokens and back.
// Implementations are immutable and safe for concurrent use.
type Codec interface {
	Encode(value []byte) (string, error)
	Decode(token string) ([]byte, error)
	Variant() Variant
}

var (
	_ Codec = (*Signer)(nil)
	_ Codec = (*Cipher)(nil)
)

// New builds a codec of the given variant. Every configuration problem is
// reported here as an error matching ErrConfig.
func New(variant Variant, key []byte, opts ...Option) (Codec, error) {
	switch variant {
	case VariantSigner:
		return NewSigner(key, opts...)
	case VariantCipher:
		return NewCipher(key, opts...)
	default:
		return nil, configError(fmt.Errorf("%w: %q", ErrUnknownVariant, variant))
	}
}
