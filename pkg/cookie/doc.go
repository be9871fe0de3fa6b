// Package cookie stores codec tokens in HTTP cookies.
//
// A Manager wraps net/http cookies with helpers backed by the codec package:
//
//   - Set, Get, Delete: plain cookies
//   - SetSigned, GetSigned: value in clear, protected by a Signer codec
//   - SetEncrypted, GetEncrypted: JSON value sealed by a Cipher codec
//   - SetFlash, GetFlash: one-shot encrypted values, deleted on read
//
// Both codecs enforce their own max age, so a replayed cookie expires even if
// the browser keeps it.
//
//	signer, _ := codec.NewSigner(signKey, codec.WithMaxAge(24*time.Hour))
//	cipher, _ := codec.NewCipher(encKey, codec.WithMaxAge(24*time.Hour))
//	man, err := cookie.New(signer, cipher, cookie.WithSecure(true))
//
//	_ = man.SetSigned(w, "uid", "42")
//	uid, err := man.GetSigned(r, "uid")
//	if codec.KindOf(err) == codec.KindExpired {
//		// ask the user to sign in again
//	}
//
// Config can be loaded with pkg/config and passed to NewFromConfig.
//
// Codec failures are returned unchanged and match the codec sentinels with
// errors.Is. ErrCookieNotFound reports a missing cookie.
package cookie
