package cryptor

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

// EncryptText encrypts text and encodes the token with the URL-safe base64 alphabet, without padding.
func (c *Cryptor) EncryptText(text, password string) (string, error) {
	token, err := c.Encrypt([]byte(text), password)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(token), nil
}

// DecryptText reverses EncryptText.
// Padded and unpadded tokens are both accepted, but unused trailing bits must be zero.
func (c *Cryptor) DecryptText(token, password string) (string, error) {
	if rem := len(token) % 4; rem != 0 {
		token += strings.Repeat("=", 4-rem)
	}
	data, err := base64.URLEncoding.Strict().DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	plain, err := c.Decrypt(data, password)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plain) {
		return "", ErrInvalidText
	}
	return string(plain), nil
}
