package auth

import (
	"crypto/rand"
	"encoding/base64"
)

// RandomToken returns n random bytes encoded URL-safe without padding.
func RandomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// NewQRToken issues a barber QR token.
func NewQRToken() (string, error) {
	return RandomToken(32)
}
