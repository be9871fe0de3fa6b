// Package codec turns application values into compact, tamper-evident,
// expiring tokens and back.
//
// Two variants share the Codec interface:
//
//   - Signer: the value travels in clear and is protected by a keyed MAC
//     (HMAC-SHA256 by default, HMAC-SHA384/512/SHA1 or keyed BLAKE2b-256).
//   - Cipher: the value is encrypted and authenticated with an AEAD
//     (AES-GCM by default, or ChaCha20-Poly1305) under a fresh random
//     12-byte nonce per token.
//
// Both embed the issue time in milliseconds and reject tokens older than the
// optional max age. Tokens are unpadded URL-safe base64.
//
// # Token Format
//
// Signer tokens are base64url(value ":" millis ":" base64url(tag)). The value
// must not contain ':'.
//
// Cipher tokens are base64url(nonce || ciphertext || tag) where the sealed
// plaintext is {"timestamp":"<millis>","value":<json value>}.
//
// # Usage
//
//	key, err := codec.GenerateKey(codec.DefaultKeySize)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	c, err := codec.NewCipher(key, codec.WithMaxAge(15*time.Minute))
//	if err != nil {
//		log.Fatal(err) // matches codec.ErrConfig
//	}
//
//	tok, err := codec.Issue(c, Invite{Email: "a@example.com"})
//	...
//	inv, err := codec.Open[Invite](c, tok)
//
// The raw byte API is c.Encode(value) and c.Decode(token).
//
// # Error Handling
//
// Construction fails only with errors matching ErrConfig. Decode fails with
// one of:
//
//   - ErrMalformedToken (also matches ErrTokenInvalid): not base64url, wrong
//     part count, non-numeric timestamp, truncated bytes
//   - ErrTokenTampered: Signer only, the MAC did not match
//   - ErrTokenInvalid: Cipher could not open or parse the token
//   - ErrTokenExpired: authentic but older than max age
//
// KindOf maps any error to a Kind for logging and API responses. Errors never
// contain key material or token contents.
//
// # Security Notes
//
// Future-dated tokens are accepted; the codec does not defend against issuer
// clock skew. Expiry bounds replay but does not prevent it within the max age.
// Codecs hold no mutable state and are safe for concurrent use.
package codec
