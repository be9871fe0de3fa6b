package codec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sealkit/pkg/clock"
	"github.com/dmitrymomot/sealkit/pkg/codec"
)

func TestNew(t *testing.T) {
	t.Parallel()

	for _, v := range []codec.Variant{codec.VariantSigner, codec.VariantCipher} {
		t.Run(string(v), func(t *testing.T) {
			t.Parallel()
			c, err := codec.New(v, testKey)
			require.NoError(t, err)
			assert.Equal(t, v, c.Variant())

			tok, err := c.Encode([]byte(`"abc"`))
			require.NoError(t, err)
			got, err := c.Decode(tok)
			require.NoError(t, err)
			assert.Equal(t, `"abc"`, string(got))
		})
	}

	_, err := codec.New("jwt", testKey)
	require.ErrorIs(t, err, codec.ErrUnknownVariant)
	require.ErrorIs(t, err, codec.ErrConfig)
}

func TestParseVariant(t *testing.T) {
	t.Parallel()
	v, err := codec.ParseVariant("cipher")
	require.NoError(t, err)
	assert.Equal(t, codec.VariantCipher, v)

	_, err = codec.ParseVariant("Signer")
	require.ErrorIs(t, err, codec.ErrUnknownVariant)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	cfg := codec.Config{
		Secret:        codec.EncodeKey(testKey),
		MaxAge:        time.Second,
		MACAlgorithm:  string(codec.HmacSHA512),
		AEADAlgorithm: string(codec.ChaCha20Poly1305),
	}

	t.Run("max age applied", func(t *testing.T) {
		t.Parallel()
		clk := clock.Fixed(epoch)
		c, err := codec.NewFromConfig(codec.VariantCipher, cfg, codec.WithClock(clk))
		require.NoError(t, err)

		tok, err := c.Encode([]byte(`1`))
		require.NoError(t, err)
		clk.Advance(1001 * time.Millisecond)
		_, err = c.Decode(tok)
		require.ErrorIs(t, err, codec.ErrTokenExpired)
	})

	t.Run("algorithm applied", func(t *testing.T) {
		t.Parallel()
		c, err := codec.NewFromConfig(codec.VariantSigner, cfg)
		require.NoError(t, err)

		tok, err := c.Encode([]byte("v"))
		require.NoError(t, err)
		tag, err := b64.DecodeString(splitSigned(t, tok)[2])
		require.NoError(t, err)
		assert.Len(t, tag, 64)
	})

	t.Run("explicit options win", func(t *testing.T) {
		t.Parallel()
		c, err := codec.NewFromConfig(codec.VariantSigner, cfg, codec.WithMACAlgorithm(codec.HmacSHA256))
		require.NoError(t, err)

		tok, err := c.Encode([]byte("v"))
		require.NoError(t, err)
		tag, err := b64.DecodeString(splitSigned(t, tok)[2])
		require.NoError(t, err)
		assert.Len(t, tag, 32)
	})

	t.Run("key info derives", func(t *testing.T) {
		t.Parallel()
		derived := cfg
		derived.KeyInfo = "cookies"
		a, err := codec.NewFromConfig(codec.VariantCipher, derived)
		require.NoError(t, err)
		b, err := codec.NewFromConfig(codec.VariantCipher, cfg)
		require.NoError(t, err)

		tok, err := a.Encode([]byte(`1`))
		require.NoError(t, err)
		_, err = b.Decode(tok)
		require.ErrorIs(t, err, codec.ErrTokenInvalid)
	})

	t.Run("bad settings", func(t *testing.T) {
		t.Parallel()
		for name, bad := range map[string]codec.Config{
			"missing secret":   {},
			"negative max age": {Secret: cfg.Secret, MaxAge: -time.Second},
			"unknown mac":      {Secret: cfg.Secret, MACAlgorithm: "crc32"},
		} {
			_, err := codec.NewFromConfig(codec.VariantSigner, bad)
			require.ErrorIs(t, err, codec.ErrConfig, name)
		}
	})
}
