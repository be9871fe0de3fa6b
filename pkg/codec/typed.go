package codec

import (
	"encoding/json"
	"errors"
)

// Issue serializes v as JSON and encodes it with c.
//
// With a Signer the JSON text travels in clear and must not contain ':', so
// it suits scalars such as IDs; structured values belong in a Cipher.
func Issue[T any](c Codec, v T) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", errors.Join(ErrInvalidValue, err)
	}
	return c.Encode(data)
}

// Open decodes token with c and deserializes the value into T.
// A sealed JSON null yields the zero T.
func Open[T any](c Codec, token string) (T, error) {
	var v T
	data, err := c.Decode(token)
	if err != nil {
		return v, err
	}
	if data == nil {
		return v, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Join(ErrTokenInvalid, err)
	}
	return v, nil
}
