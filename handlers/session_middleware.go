package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fadhlanhapp/trekshare-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionContextKey = "session"

// Claims carried by session tokens
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionMiddleware parses an optional Bearer token into a models.Session.
// Missing or invalid tokens leave the request anonymous.
func SessionMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := models.Session{}

		authHeader := c.GetHeader("Authorization")
		if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
			if claims, err := ParseSessionToken(secret, authHeader[7:]); err == nil {
				session = models.Session{
					Authenticated: true,
					UserID:        claims.UserID,
					Role:          claims.Role,
				}
			}
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// SessionFrom returns the session set by SessionMiddleware
func SessionFrom(c *gin.Context) models.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if session, ok := v.(models.Session); ok {
			return session
		}
	}
	return models.Session{}
}

// ParseSessionToken validates an HMAC-signed token
func ParseSessionToken(secret []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
