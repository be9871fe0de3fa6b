package codec

import "time"

// Config holds codec settings loaded from the environment. Binaries embed it
// with an envPrefix, e.g. `envPrefix:"CIPHER_"`.
type Config struct {
	Secret        string        `env:"SECRET,required"`        // base64 encoded key
	MaxAge        time.Duration `env:"MAX_AGE" envDefault:"0"` // 0 disables expiry
	MACAlgorithm  string        `env:"MAC_ALGORITHM" envDefault:"HmacSHA256"`
	AEADAlgorithm string        `env:"AEAD_ALGORITHM" envDefault:"AES-GCM"`
	KeyInfo       string        `env:"KEY_INFO" envDefault:""` // non-empty enables HKDF derivation
}

// NewFromConfig builds a codec from cfg. Explicit opts are applied after the
// ones derived from cfg and win on conflict.
func NewFromConfig(variant Variant, cfg Config, opts ...Option) (Codec, error) {
	key, err := DecodeKey(cfg.Secret)
	if err != nil {
		return nil, err
	}

	configOpts := make([]Option, 0, 4+len(opts))
	if cfg.MaxAge != 0 {
		configOpts = append(configOpts, WithMaxAge(cfg.MaxAge))
	}
	if cfg.MACAlgorithm != "" {
		configOpts = append(configOpts, WithMACAlgorithm(MACAlgorithm(cfg.MACAlgorithm)))
	}
	if cfg.AEADAlgorithm != "" {
		configOpts = append(configOpts, WithAEADAlgorithm(AEADAlgorithm(cfg.AEADAlgorithm)))
	}
	if cfg.KeyInfo != "" {
		configOpts = append(configOpts, WithKeyDerivation(cfg.KeyInfo))
	}
	configOpts = append(configOpts, opts...)

	return New(variant, key, configOpts...)
}
