package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sealkit/pkg/clock"
	"github.com/dmitrymomot/sealkit/pkg/codec"
	"github.com/dmitrymomot/sealkit/pkg/cookie"
)

var (
	signKey = []byte("0123456789abcdef0123456789abcdef")
	encKey  = []byte("fedcba9876543210fedcba9876543210")
)

type flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func newManager(t *testing.T, clk clock.Clock, opts ...cookie.Option) *cookie.Manager {
	t.Helper()
	signer, err := codec.NewSigner(signKey, codec.WithClock(clk), codec.WithMaxAge(time.Hour))
	require.NoError(t, err)
	cipher, err := codec.NewCipher(encKey, codec.WithClock(clk), codec.WithMaxAge(time.Hour))
	require.NoError(t, err)
	m, err := cookie.New(signer, cipher, opts...)
	require.NoError(t, err)
	return m
}

// roundTrip turns the cookies written to rec into a request carrying them.
func roundTrip(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
	return req
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := cookie.New(nil, nil)
	require.ErrorIs(t, err, cookie.ErrNoCodec)

	signer, err := codec.NewSigner(signKey)
	require.NoError(t, err)
	m, err := cookie.New(signer, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.ErrorIs(t, m.SetEncrypted(rec, "x", "v"), cookie.ErrCipherNotSet)
	require.ErrorIs(t, m.GetEncrypted(roundTrip(rec), "x", new(string)), cookie.ErrCipherNotSet)

	m, err = cookie.New(nil, signer)
	require.NoError(t, err)
	require.ErrorIs(t, m.SetSigned(rec, "x", "v"), cookie.ErrSignerNotSet)
	_, err = m.GetSigned(roundTrip(rec), "x")
	require.ErrorIs(t, err, cookie.ErrSignerNotSet)
}

func TestManager_Plain(t *testing.T) {
	t.Parallel()
	m := newManager(t, clock.New())

	rec := httptest.NewRecorder()
	m.Set(rec, "theme", "dark", cookie.WithMaxAge(60))

	c := findCookie(t, rec, "theme")
	assert.Equal(t, "dark", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 60, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	v, err := m.Get(roundTrip(rec), "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	_, err = m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "theme")
	require.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()
	m := newManager(t, clock.New(), cookie.WithDomain("example.com"), cookie.WithSecure(true))

	rec := httptest.NewRecorder()
	m.Delete(rec, "uid")

	c := findCookie(t, rec, "uid")
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
	assert.Equal(t, "example.com", c.Domain)
	assert.True(t, c.Secure)
}

func TestManager_Signed(t *testing.T) {
	t.Parallel()
	clk := clock.Fixed(time.UnixMilli(1_700_000_000_000))
	m := newManager(t, clk)

	rec := httptest.NewRecorder()
	require.NoError(t, m.SetSigned(rec, "uid", "user-42"))
	assert.NotEqual(t, "user-42", findCookie(t, rec, "uid").Value)

	req := roundTrip(rec)
	v, err := m.GetSigned(req, "uid")
	require.NoError(t, err)
	assert.Equal(t, "user-42", v)

	t.Run("forged", func(t *testing.T) {
		forged := httptest.NewRequest(http.MethodGet, "/", nil)
		forged.AddCookie(&http.Cookie{Name: "uid", Value: findCookie(t, rec, "uid").Value + "AA"})
		_, err := m.GetSigned(forged, "uid")
		require.Error(t, err)
		assert.NotEqual(t, codec.KindNone, codec.KindOf(err))
	})

	t.Run("separator rejected", func(t *testing.T) {
		err := m.SetSigned(httptest.NewRecorder(), "uid", "a:b")
		require.ErrorIs(t, err, codec.ErrInvalidValue)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := m.GetSigned(httptest.NewRequest(http.MethodGet, "/", nil), "uid")
		require.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})
}

func TestManager_SignedExpires(t *testing.T) {
	t.Parallel()
	clk := clock.Fixed(time.UnixMilli(1_700_000_000_000))
	m := newManager(t, clk)

	rec := httptest.NewRecorder()
	require.NoError(t, m.SetSigned(rec, "uid", "user-42"))

	clk.Advance(time.Hour + time.Millisecond)
	_, err := m.GetSigned(roundTrip(rec), "uid")
	require.ErrorIs(t, err, codec.ErrTokenExpired)
	assert.Equal(t, codec.KindExpired, codec.KindOf(err))
}

func TestManager_Encrypted(t *testing.T) {
	t.Parallel()
	m := newManager(t, clock.New())

	in := flash{Level: "info", Message: "<saved> & done"}
	rec := httptest.NewRecorder()
	require.NoError(t, m.SetEncrypted(rec, "prefs", in))
	assert.NotContains(t, findCookie(t, rec, "prefs").Value, "saved")

	var out flash
	require.NoError(t, m.GetEncrypted(roundTrip(rec), "prefs", &out))
	assert.Equal(t, in, out)

	t.Run("type mismatch", func(t *testing.T) {
		var n int
		err := m.GetEncrypted(roundTrip(rec), "prefs", &n)
		require.ErrorIs(t, err, codec.ErrTokenInvalid)
	})

	t.Run("signed cookie is not readable as encrypted", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(rec, "prefs", "plain"))
		var s string
		err := m.GetEncrypted(roundTrip(rec), "prefs", &s)
		require.ErrorIs(t, err, codec.ErrTokenInvalid)
	})
}

func TestManager_Flash(t *testing.T) {
	t.Parallel()
	m := newManager(t, clock.New())

	rec := httptest.NewRecorder()
	require.NoError(t, m.SetFlash(rec, "notice", flash{Level: "ok", Message: "saved"}))
	require.ErrorIs(t, m.SetFlash(rec, "empty", nil), cookie.ErrInvalidFlashValue)

	req := roundTrip(rec)
	readRec := httptest.NewRecorder()
	var got flash
	require.NoError(t, m.GetFlash(readRec, req, "notice", &got))
	assert.Equal(t, "saved", got.Message)

	deleted := findCookie(t, readRec, "__flash_notice")
	assert.Equal(t, -1, deleted.MaxAge)

	err := m.GetFlash(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), "notice", &got)
	require.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManager_FlashDeletedWhenInvalid(t *testing.T) {
	t.Parallel()
	m := newManager(t, clock.New())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "__flash_notice", Value: "garbage"})

	rec := httptest.NewRecorder()
	var got flash
	err := m.GetFlash(rec, req, "notice", &got)
	require.ErrorIs(t, err, codec.ErrMalformedToken)
	assert.Equal(t, -1, findCookie(t, rec, "__flash_notice").MaxAge)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	signer, err := codec.NewSigner(signKey)
	require.NoError(t, err)

	cfg := cookie.DefaultConfig()
	cfg.Domain = "example.com"
	cfg.Secure = true
	cfg.MaxAge = 300
	cfg.SameSite = http.SameSiteStrictMode

	m, err := cookie.NewFromConfig(cfg, signer, nil, cookie.WithPath("/app"))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	m.Set(rec, "k", "v")
	c := findCookie(t, rec, "k")
	assert.Equal(t, "/app", c.Path)
	assert.Equal(t, "example.com", c.Domain)
	assert.Equal(t, 300, c.MaxAge)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)

	_, err = cookie.NewFromConfig(cfg, nil, nil)
	require.ErrorIs(t, err, cookie.ErrNoCodec)
}
