package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestIssueAndVerify(t *testing.T) {
	service := NewService("test-secret")

	t.Run("Round trip", func(t *testing.T) {
		tokenString, err := service.Issue("user-123")
		assert.NoError(t, err)
		assert.NotEmpty(t, tokenString)

		userID, err := service.Verify(tokenString)
		assert.NoError(t, err)
		assert.Equal(t, "user-123", userID)
	})

	t.Run("Empty user id", func(t *testing.T) {
		_, err := service.Issue("")
		assert.ErrorIs(t, err, ErrEmptyUserID)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		other := NewService("other-secret")
		tokenString, _ := other.Issue("user-123")

		_, err := service.Verify(tokenString)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := service.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrMalformedPayload)
	})

	t.Run("Expired token", func(t *testing.T) {
		claims := Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
			UserID: "user-123",
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		assert.NoError(t, err)

		_, err = service.Verify(expired)
		assert.ErrorIs(t, err, ErrExpired)
	})

	t.Run("Missing user id in payload", func(t *testing.T) {
		empty, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{}).SignedString([]byte("test-secret"))
		assert.NoError(t, err)

		_, err = service.Verify(empty)
		assert.ErrorIs(t, err, ErrMalformedPayload)
	})

	t.Run("Wrong signing method", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-123"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		assert.NoError(t, err)

		_, err = service.Verify(unsigned)
		assert.Error(t, err)
	})
}
