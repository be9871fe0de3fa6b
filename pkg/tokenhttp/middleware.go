package tokenhttp

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sealkit/pkg/codec"
	"github.com/dmitrymomot/sealkit/pkg/logger"
)

// SkipFunc reports whether a request bypasses token checks.
type SkipFunc func(r *http.Request) bool

type middlewareOptions struct {
	extractor Extractor
	skip      SkipFunc
	log       *slog.Logger
}

type MiddlewareOption func(*middlewareOptions)

// WithExtractor sets where tokens are read from. Defaults to Bearer.
func WithExtractor(ex Extractor) MiddlewareOption {
	return func(o *middlewareOptions) {
		if ex != nil {
			o.extractor = ex
		}
	}
}

func WithSkip(fn SkipFunc) MiddlewareOption {
	return func(o *middlewareOptions) { o.skip = fn }
}

// WithLogger logs rejected tokens at info level with their failure kind.
func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(o *middlewareOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// Middleware decodes the request token with c and stores the token and its
// value in the request context. Requests without a valid token get 401.
func Middleware(c codec.Codec, opts ...MiddlewareOption) func(next http.Handler) http.Handler {
	o := middlewareOptions{extractor: Bearer, log: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if o.skip != nil && o.skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			token, err := o.extractor(r)
			if err != nil {
				writeError(w, r, http.StatusUnauthorized, "unauthorized", "token required")
				return
			}

			value, err := c.Decode(token)
			if err != nil {
				kind := codec.KindOf(err)
				o.log.InfoContext(r.Context(), "token rejected",
					logger.Component("tokenhttp.middleware"),
					logger.Variant(c.Variant()),
					logger.FailureKind(err),
				)
				writeError(w, r, http.StatusUnauthorized, kind.String(), messageFor(kind))
				return
			}

			next.ServeHTTP(w, r.WithContext(withToken(r.Context(), token, value)))
		})
	}
}
