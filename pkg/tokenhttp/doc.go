// Package tokenhttp exposes codecs over HTTP.
//
// Middleware guards handlers with a codec: it extracts a token (Bearer by
// default, or Cookie, Query, Header, First), decodes it and stores the token
// and value in the request context. Handlers read them back with
// TokenFromContext, ValueFromContext or ValueAs. Rejected requests get 401
// with a JSON error whose code is the codec failure kind.
//
//	r.With(tokenhttp.Middleware(cipher,
//		tokenhttp.WithExtractor(tokenhttp.Cookie("session")),
//	)).Get("/me", me)
//
// NewRouter serves a small token API for a set of codecs:
//
//	GET  /health                   {"data":{"status":"ok","variants":[...]}}
//	POST /tokens/{variant}         {"value":<json>} -> {"data":{"token":"..."}}
//	POST /tokens/{variant}/verify  {"token":"..."}  -> {"data":{"value":<json>}}
//
// Codec failures map to statuses through StatusFor: malformed and invalid
// tokens 400, tampered and expired tokens 401, unencodable values 422,
// anything else 500. Tokens and values are never logged.
package tokenhttp
