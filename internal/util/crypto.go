package util

import (
	"crypto/rand"
	"fmt"
	"unicode"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for backup key derivation.
const (
	keySaltSize = 16
	keyTime     = 1
	keyMemory   = 64 * 1024
	keyThreads  = 4
	keyLength   = 32
)

// NewSalt returns random bytes suitable for DeriveKey.
func NewSalt() ([]byte, error) {
	salt := make([]byte, keySaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey stretches a passphrase into an AES-256 key.
func DeriveKey(pass string, salt []byte) []byte {
	return argon2.IDKey([]byte(pass), salt, keyTime, keyMemory, keyThreads, keyLength)
}

func ValidatePassphrase(pass string) error {
	if len(pass) < 8 {
		return fmt.Errorf("passphrase must be at least 8 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range pass {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("passphrase must contain a letter and a digit")
	}
	return nil
}
