// Package token issues and verifies the signed, stateless session tokens
// carried in Authorization headers. A token encodes only the user id; there
// is no server-side session state or revocation list.
package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrExpired          = errors.New("token is expired")
	ErrMalformedPayload = errors.New("token payload is malformed")
	ErrEmptyUserID      = errors.New("user id must not be empty")
)

type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

type Service struct {
	secret []byte
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue signs a token carrying the given user id. Matching the original
// contract, no expiry is set: the token lives until the secret rotates.
func (s *Service) Issue(userID string) (string, error) {
	if userID == "" {
		return "", ErrEmptyUserID
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: userID})

	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify checks the signature and the payload shape, returning the embedded
// user id. Failures are distinguishable via the package sentinel errors.
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidSignature
			}
			return s.secret, nil
		})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpired
		default:
			return "", ErrMalformedPayload
		}
	}

	if !t.Valid || claims.UserID == "" {
		return "", ErrMalformedPayload
	}

	return claims.UserID, nil
}
