package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const saltBytes = 32

// GenerateSalt returns a fresh random salt, hex encoded.
func GenerateSalt() (string, error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashPassword computes the salted password hash. The salt is stored next to
// the hash, so the same inputs always produce the same digest.
func HashPassword(password, salt string) string {
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil))
}

// CheckPasswordHash recomputes the salted hash and compares it to the stored one.
func CheckPasswordHash(password, salt, hash string) bool {
	return hmac.Equal([]byte(HashPassword(password, salt)), []byte(hash))
}
