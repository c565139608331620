package utils

import (
	"math/rand"
	"time"
)

// URL-safe alphabet, same space as nanoid's default.
const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

var seededRand *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

// ShortCodeLength is the default length of generated short codes.
const ShortCodeLength = 6

// GenerateShortCode generates a random string of fixed length
func GenerateShortCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[seededRand.Intn(len(charset))]
	}
	return string(b)
}
