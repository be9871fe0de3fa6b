package tokenhttp_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sealkit/pkg/clock"
	"github.com/dmitrymomot/sealkit/pkg/codec"
	"github.com/dmitrymomot/sealkit/pkg/tokenhttp"
)

var (
	testKey = []byte("0123456789abcdef0123456789abcdef")
	epoch   = time.UnixMilli(1_700_000_000_000)
)

func codecs(t *testing.T, clk clock.Clock) (*codec.Signer, *codec.Cipher) {
	t.Helper()
	s, err := codec.NewSigner(testKey, codec.WithClock(clk), codec.WithMaxAge(time.Minute))
	require.NoError(t, err)
	c, err := codec.NewCipher(testKey, codec.WithClock(clk), codec.WithMaxAge(time.Minute))
	require.NoError(t, err)
	return s, c
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) (map[string]json.RawMessage, *tokenhttp.ErrorDetail) {
	t.Helper()
	var body struct {
		Data  map[string]json.RawMessage `json:"data"`
		Error *tokenhttp.ErrorDetail     `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Data, body.Error
}
