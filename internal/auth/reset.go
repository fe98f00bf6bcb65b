package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// NewResetCredential returns a 40-character hex string from 20 bytes of
// crypto/rand. It carries no claims and cannot be derived from a login
// token; validity comes entirely from the copy stored on the account.
func NewResetCredential() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
