package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
)

// minSealedSize is a nonce plus at least one ciphertext byte.
const minSealedSize = NonceSize + 1

var jsonNull = []byte("null")

// Cipher issues tokens whose value is encrypted and authenticated with an AEAD.
//
// Token layout before base64url: nonce(12) || ciphertext || tag(16). The sealed
// plaintext is the JSON record {"timestamp":"<millis>","value":<value>}.
type Cipher struct {
	aead   *aeadEngine
	guard  guard
	random io.Reader
}

// record is the sealed plaintext. The timestamp is a string so that no JSON
// consumer rounds it through a float.
type record struct {
	Timestamp string          `json:"timestamp"`
	Value     json.RawMessage `json:"value"`
}

// NewCipher validates the key, algorithm and max age and performs a trial seal.
func NewCipher(key []byte, opts ...Option) (*Cipher, error) {
	o := applyOptions(opts)
	g, err := o.guard()
	if err != nil {
		return nil, err
	}
	if key, err = o.resolveKey(key, DefaultKeySize); err != nil {
		return nil, err
	}
	engine, err := newAEADEngine(o.aead, key)
	if err != nil {
		return nil, err
	}
	return &Cipher{aead: engine, guard: g, random: o.random}, nil
}

// Variant returns VariantCipher.
func (c *Cipher) Variant() Variant { return VariantCipher }

// Encode seals a JSON value. Empty input, invalid JSON and JSON null are rejected
// with ErrInvalidValue.
func (c *Cipher) Encode(value []byte) (string, error) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 || !json.Valid(value) || bytes.Equal(value, jsonNull) {
		return "", ErrInvalidValue
	}

	plaintext, err := marshalRecord(record{
		Timestamp: strconv.FormatInt(c.guard.stamp(), 10),
		Value:     value,
	})
	if err != nil {
		return "", errors.Join(ErrInternal, err)
	}

	out := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	if _, err := io.ReadFull(c.random, out); err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	out = append(out, c.aead.seal(out, plaintext)...)
	return encodeFrame(out), nil
}

// Decode opens the token and returns the sealed JSON value. A sealed JSON null
// comes back as a nil value with a nil error.
func (c *Cipher) Decode(token string) ([]byte, error) {
	if token == "" {
		return nil, malformed()
	}
	raw, err := decodeFrame(token)
	if err != nil || len(raw) < minSealedSize {
		return nil, malformed()
	}

	plaintext, err := c.aead.open(raw[:NonceSize], raw[NonceSize:])
	if err != nil {
		return nil, ErrTokenInvalid
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(plaintext, &fields); err != nil {
		return nil, ErrTokenInvalid
	}
	rawTS, hasTS := fields["timestamp"]
	value, hasValue := fields["value"]
	if !hasTS || !hasValue {
		return nil, ErrTokenInvalid
	}
	issuedAt, err := parseTimestamp(rawTS)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	if err := c.guard.check(issuedAt); err != nil {
		return nil, err
	}
	if bytes.Equal(value, jsonNull) {
		return nil, nil
	}
	return []byte(value), nil
}

// marshalRecord writes the canonical record: compact JSON without HTML escaping,
// so the value decodes to the same bytes it was encoded from.
func marshalRecord(r record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// parseTimestamp accepts the string form written by Encode and, for tokens
// sealed by other producers, a bare JSON integer.
func parseTimestamp(raw json.RawMessage) (int64, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		s = string(raw)
	}
	return strconv.ParseInt(s, 10, 64)
}
