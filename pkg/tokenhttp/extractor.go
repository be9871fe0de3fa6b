package tokenhttp

import (
	"net/http"
	"strings"
)

// Extractor pulls a token out of a request. It returns ErrNoToken when the
// request carries none.
type Extractor func(r *http.Request) (string, error)

// Bearer extracts the token from an "Authorization: Bearer <token>" header.
func Bearer(r *http.Request) (string, error) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Cookie extracts the token from the named cookie.
func Cookie(name string) Extractor {
	return func(r *http.Request) (string, error) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", ErrNoToken
		}
		return c.Value, nil
	}
}

// Query extracts the token from a URL query parameter. Query strings end up
// in access logs; prefer headers for anything long lived.
func Query(param string) Extractor {
	return func(r *http.Request) (string, error) {
		if token := r.URL.Query().Get(param); token != "" {
			return token, nil
		}
		return "", ErrNoToken
	}
}

// Header extracts the token from a custom header.
func Header(name string) Extractor {
	return func(r *http.Request) (string, error) {
		if token := r.Header.Get(name); token != "" {
			return token, nil
		}
		return "", ErrNoToken
	}
}

// First tries extractors in order and returns the first token found.
func First(extractors ...Extractor) Extractor {
	return func(r *http.Request) (string, error) {
		for _, ex := range extractors {
			if token, err := ex(r); err == nil {
				return token, nil
			}
		}
		return "", ErrNoToken
	}
}
