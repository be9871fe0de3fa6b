package codec

import (
	"crypto/rand"
	"io"
	"time"

	"github.com/dmitrymomot/sealkit/pkg/clock"
)

// Option configures a codec at construction time.
type Option func(*options)

type options struct {
	maxAge    time.Duration
	hasMaxAge bool
	clock     clock.Clock
	random    io.Reader
	mac       MACAlgorithm
	aead      AEADAlgorithm
	derive    bool
	keyInfo   string
}

func defaultOptions() *options {
	return &options{
		clock:  clock.New(),
		random: rand.Reader,
		mac:    HmacSHA256,
		aead:   AESGCM,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithMaxAge rejects tokens older than d. Zero means tokens are only valid
// within the millisecond they were issued; leave the option out for tokens
// that never expire. Negative values fail construction.
func WithMaxAge(d time.Duration) Option {
	return func(o *options) {
		o.maxAge = d
		o.hasMaxAge = true
	}
}

// WithClock replaces the system clock. Nil is ignored.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithRandom replaces crypto/rand as the nonce source of the Cipher variant.
// Nil is ignored.
func WithRandom(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.random = r
		}
	}
}

// WithMACAlgorithm selects the Signer's MAC. Defaults to HmacSHA256.
func WithMACAlgorithm(a MACAlgorithm) Option {
	return func(o *options) { o.mac = a }
}

// WithAEADAlgorithm selects the Cipher's AEAD. Defaults to AES-GCM.
func WithAEADAlgorithm(a AEADAlgorithm) Option {
	return func(o *options) { o.aead = a }
}

// WithKeyDerivation stretches the supplied secret with HKDF-SHA256 into a key of
// exactly the size the selected algorithm needs. info separates key domains, so
// one secret can back several codecs.
func WithKeyDerivation(info string) Option {
	return func(o *options) {
		o.derive = true
		o.keyInfo = info
	}
}

func (o *options) guard() (guard, error) {
	if o.hasMaxAge && o.maxAge < 0 {
		return guard{}, configError(ErrNegativeMaxAge)
	}
	return guard{clock: o.clock, maxAge: o.maxAge, bounded: o.hasMaxAge}, nil
}

func (o *options) resolveKey(key []byte, size int) ([]byte, error) {
	if len(key) == 0 {
		return nil, configError(ErrInvalidKey)
	}
	if !o.derive {
		return key, nil
	}
	return DeriveKey(key, o.keyInfo, size)
}
