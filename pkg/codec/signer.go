package codec

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
)

const partSeparator = ":"

// Signer issues tokens whose value travels in clear, protected by a keyed MAC.
//
// Token layout before the outer base64url wrap: value ":" millis ":" base64url(tag).
// Values must not contain ':' because decoding splits on it.
type Signer struct {
	mac   *macEngine
	guard guard
}

// NewSigner validates the key, algorithm and max age once so that Encode and
// Decode never fail on configuration grounds.
func NewSigner(key []byte, opts ...Option) (*Signer, error) {
	o := applyOptions(opts)
	g, err := o.guard()
	if err != nil {
		return nil, err
	}
	if key, err = o.resolveKey(key, DefaultKeySize); err != nil {
		return nil, err
	}
	mac, err := newMACEngine(o.mac, key)
	if err != nil {
		return nil, err
	}
	return &Signer{mac: mac, guard: g}, nil
}

// Variant returns VariantSigner.
func (s *Signer) Variant() Variant { return VariantSigner }

// Encode signs value together with the current time.
func (s *Signer) Encode(value []byte) (string, error) {
	if bytes.Contains(value, []byte(partSeparator)) {
		return "", ErrInvalidValue
	}
	payload := string(value) + partSeparator + strconv.FormatInt(s.guard.stamp(), 10)
	tag, err := s.mac.sign([]byte(payload))
	if err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	return encodeFrame([]byte(payload + partSeparator + encodeFrame(tag))), nil
}

// Decode checks structure first, then the MAC, then the age.
func (s *Signer) Decode(token string) ([]byte, error) {
	raw, err := decodeFrame(token)
	if err != nil {
		return nil, malformed()
	}

	parts := strings.Split(string(raw), partSeparator)
	if len(parts) != 3 {
		return nil, malformed()
	}
	issuedAt, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, malformed()
	}

	// An undecodable tag segment cannot match any tag: treat it as tampering.
	tag, err := decodeFrame(parts[2])
	if err != nil {
		return nil, ErrTokenTampered
	}
	ok, err := s.mac.verify([]byte(parts[0]+partSeparator+parts[1]), tag)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	if !ok {
		return nil, ErrTokenTampered
	}

	if err := s.guard.check(issuedAt); err != nil {
		return nil, err
	}
	return []byte(parts[0]), nil
}
