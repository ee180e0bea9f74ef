package client

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes    = 16
	hashBytes    = 32
	pbkdf2Rounds = 100000
)

// NewSalt returns a fresh random salt for password hashing.
func NewSalt() ([]byte, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// EncodeSalt returns the base64 form stored alongside the hash.
func EncodeSalt(salt []byte) string {
	return base64.StdEncoding.EncodeToString(salt)
}

// HashPassword derives a base64 PBKDF2-HMAC-SHA256 hash from the password
// and salt. The same password and salt always produce the same hash, which
// is how ConnectClient verifies credentials.
func HashPassword(password string, salt []byte) string {
	key := pbkdf2.Key([]byte(password), salt, pbkdf2Rounds, hashBytes, sha256.New)
	return base64.StdEncoding.EncodeToString(key)
}

// CheckPassword re-derives the hash from the candidate password and the
// stored salt and compares it to the stored hash in constant time.
func CheckPassword(stored Password, candidate string) (bool, error) {
	salt, err := base64.StdEncoding.DecodeString(stored.Salt)
	if err != nil {
		return false, fmt.Errorf("decode salt: %w", err)
	}
	hash, err := base64.StdEncoding.DecodeString(stored.Hash)
	if err != nil {
		return false, fmt.Errorf("decode hash: %w", err)
	}

	derived := pbkdf2.Key([]byte(candidate), salt, pbkdf2Rounds, hashBytes, sha256.New)
	return subtle.ConstantTimeCompare(derived, hash) == 1, nil
}
