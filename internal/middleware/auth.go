package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"legal-board-api/internal/response"
)

// Context keys set by Auth
const (
	ContextUserID = "user_id"
	ContextToken  = "jwtToken"
)

// Errors returned by ParseToken
var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrNoSubject    = errors.New("user id not found in token")
)

// ParseToken validates an HMAC-signed JWT and returns the caller id,
// read from user_id, sub or uid, in that order.
func ParseToken(jwtSecret, tokenString string) (uuid.UUID, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	userID, ok := subjectOf(claims)
	if !ok {
		return uuid.Nil, ErrNoSubject
	}
	return userID, nil
}

// Auth returns a middleware that validates HMAC-signed JWT bearer tokens
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c, "Invalid authorization header format")
			return
		}
		tokenString := parts[1]

		userID, err := ParseToken(jwtSecret, tokenString)
		switch {
		case errors.Is(err, ErrNoSubject):
			unauthorized(c, "User ID not found in token")
			return
		case err != nil:
			unauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextToken, tokenString)
		c.Next()
	}
}

func subjectOf(claims jwt.MapClaims) (uuid.UUID, bool) {
	for _, key := range []string{"user_id", "sub", "uid"} {
		s, ok := claims[key].(string)
		if !ok {
			continue
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, false
		}
		return id, true
	}
	return uuid.Nil, false
}

func unauthorized(c *gin.Context, message string) {
	response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, message)
	c.Abort()
}
