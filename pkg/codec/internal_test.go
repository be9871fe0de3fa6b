package codec

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sealkit/pkg/clock"
)

func TestFrame(t *testing.T) {
	t.Parallel()
	for _, in := range [][]byte{{}, {0}, {0xff, 0xfe}, []byte("hello world"), make([]byte, 33)} {
		text := encodeFrame(in)
		assert.NotContains(t, text, "=")
		assert.NotContains(t, text, "+")
		assert.NotContains(t, text, "/")

		out, err := decodeFrame(text)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}

	for _, bad := range []string{"a", "ab=", "a+b/", "ab\ncd", "ab\rcd", "ab c", "aB"} {
		_, err := decodeFrame(bad)
		require.ErrorIs(t, err, ErrMalformedToken, bad)
	}
}

func TestGuard(t *testing.T) {
	t.Parallel()
	now := time.UnixMilli(10_000)
	clk := clock.Fixed(now)

	unbounded := guard{clock: clk}
	assert.Equal(t, int64(10_000), unbounded.stamp())
	assert.NoError(t, unbounded.check(math.MinInt64))

	g := guard{clock: clk, maxAge: time.Second, bounded: true}
	assert.NoError(t, g.check(10_000))
	assert.NoError(t, g.check(9_000))
	assert.ErrorIs(t, g.check(8_999), ErrTokenExpired)
	assert.NoError(t, g.check(math.MaxInt64))
	assert.ErrorIs(t, g.check(math.MinInt64), ErrTokenExpired)
	assert.ErrorIs(t, g.check(-1), ErrTokenExpired)
}

func TestMACEngine(t *testing.T) {
	t.Parallel()
	e, err := newMACEngine(HmacSHA256, []byte("k"))
	require.NoError(t, err)

	a, err := e.sign([]byte("payload"))
	require.NoError(t, err)
	b, err := e.sign([]byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, e.size)

	ok, err := e.verify([]byte("payload"), a)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.verify([]byte("payload"), a[:len(a)-1])
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAEADEngine(t *testing.T) {
	t.Parallel()
	for _, alg := range []AEADAlgorithm{AESGCM, ChaCha20Poly1305} {
		e, err := newAEADEngine(alg, make([]byte, 32))
		require.NoError(t, err)

		nonce := make([]byte, NonceSize)
		sealed := e.seal(nonce, []byte("plain"))
		assert.Len(t, sealed, len("plain")+TagSize)

		out, err := e.open(nonce, sealed)
		require.NoError(t, err)
		assert.Equal(t, "plain", string(out))

		nonce[0] ^= 1
		_, err = e.open(nonce, sealed)
		assert.Error(t, err)
	}
}
