package cookie

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrymomot/sealkit/pkg/codec"
)

const flashPrefix = "__flash_"

// Manager reads and writes cookies whose values are codec tokens.
type Manager struct {
	signer   codec.Codec
	cipher   codec.Codec
	defaults Options
}

// New creates a Manager. Either codec may be nil, but not both; the signed
// and encrypted helpers fail with ErrSignerNotSet or ErrCipherNotSet when
// their codec is missing.
func New(signer, cipher codec.Codec, opts ...Option) (*Manager, error) {
	if signer == nil && cipher == nil {
		return nil, ErrNoCodec
	}

	defaults := applyOptions(Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, opts)

	return &Manager{
		signer:   signer,
		cipher:   cipher,
		defaults: defaults,
	}, nil
}

func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}

func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	})
}

// SetSigned stores value in clear with a MAC. The value must not contain ':'.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	if m.signer == nil {
		return ErrSignerNotSet
	}
	token, err := m.signer.Encode([]byte(value))
	if err != nil {
		return err
	}
	m.Set(w, name, token, opts...)
	return nil
}

// GetSigned returns the verified value. Codec errors are returned unchanged,
// so codec.KindOf tells expired cookies from forged ones.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	if m.signer == nil {
		return "", ErrSignerNotSet
	}
	token, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	data, err := m.signer.Decode(token)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SetEncrypted stores value as JSON sealed by the cipher codec.
func (m *Manager) SetEncrypted(w http.ResponseWriter, name string, value any, opts ...Option) error {
	if m.cipher == nil {
		return ErrCipherNotSet
	}
	token, err := codec.Issue(m.cipher, value)
	if err != nil {
		return err
	}
	m.Set(w, name, token, opts...)
	return nil
}

// GetEncrypted opens the cookie and unmarshals its value into dest. A sealed
// JSON null leaves dest untouched.
func (m *Manager) GetEncrypted(r *http.Request, name string, dest any) error {
	if m.cipher == nil {
		return ErrCipherNotSet
	}
	token, err := m.Get(r, name)
	if err != nil {
		return err
	}
	data, err := m.cipher.Decode(token)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return errors.Join(codec.ErrTokenInvalid, err)
	}
	return nil
}

// SetFlash stores a one-shot encrypted value under key.
func (m *Manager) SetFlash(w http.ResponseWriter, key string, value any) error {
	if value == nil {
		return ErrInvalidFlashValue
	}
	return m.SetEncrypted(w, flashPrefix+key, value)
}

// GetFlash reads the flash value for key into dest and deletes the cookie.
// The cookie is deleted even when it fails to open, so a bad flash is not
// retried on every request.
func (m *Manager) GetFlash(w http.ResponseWriter, r *http.Request, key string, dest any) error {
	name := flashPrefix + key
	err := m.GetEncrypted(r, name, dest)
	if errors.Is(err, ErrCookieNotFound) || errors.Is(err, ErrCipherNotSet) {
		return err
	}
	m.Delete(w, name)
	return err
}
