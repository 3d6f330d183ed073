package handlers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

// NewSessionToken signs a session token for userID that expires after ttl.
// Exported so the external handler tests can mint tokens too.
func NewSessionToken(secret []byte, userID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func TestParseSessionToken(t *testing.T) {
	secret := []byte("s3cret")

	token, err := NewSessionToken(secret, "user-7", "guide", time.Hour)
	assert.NoError(t, err)

	claims, err := ParseSessionToken(secret, token)
	assert.NoError(t, err)
	assert.Equal(t, "user-7", claims.UserID)
	assert.Equal(t, "guide", claims.Role)

	expired, err := NewSessionToken(secret, "user-7", "", -time.Minute)
	assert.NoError(t, err)
	_, err = ParseSessionToken(secret, expired)
	assert.Error(t, err)

	_, err = ParseSessionToken(secret, "not-a-token")
	assert.Error(t, err)
}

func TestParseSessionToken_RejectsOtherSecret(t *testing.T) {
	token, err := NewSessionToken([]byte("s3cret"), "user-7", "guide", time.Hour)
	assert.NoError(t, err)

	_, err = ParseSessionToken([]byte("other"), token)
	assert.Error(t, err)
}
