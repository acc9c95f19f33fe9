package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legal-board-api/internal/response"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()
	future := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{
			name:       "valid user_id claim",
			header:     "Bearer " + signToken(t, testSecret, jwt.MapClaims{"user_id": userID.String(), "exp": future}),
			wantStatus: http.StatusOK,
		},
		{
			name:       "sub claim",
			header:     "Bearer " + signToken(t, testSecret, jwt.MapClaims{"sub": userID.String(), "exp": future}),
			wantStatus: http.StatusOK,
		},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{
			name:       "wrong secret",
			header:     "Bearer " + signToken(t, "other", jwt.MapClaims{"user_id": userID.String()}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired",
			header:     "Bearer " + signToken(t, testSecret, jwt.MapClaims{"user_id": userID.String(), "exp": time.Now().Add(-time.Hour).Unix()}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non uuid subject",
			header:     "Bearer " + signToken(t, testSecret, jwt.MapClaims{"sub": "google-123"}),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Auth(testSecret))
			router.GET("/private", func(c *gin.Context) {
				assert.Equal(t, userID, c.MustGet(ContextUserID))
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				var body response.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.False(t, body.Success)
				assert.Equal(t, response.ErrCodeUnauthorized, body.Error.Code)
				assert.NotEmpty(t, body.Message)
			}
		})
	}
}

func TestParseToken(t *testing.T) {
	userID := uuid.New()

	got, err := ParseToken(testSecret, signToken(t, testSecret, jwt.MapClaims{"uid": userID.String()}))
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = ParseToken(testSecret, "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken(testSecret, signToken(t, "other", jwt.MapClaims{"uid": userID.String()}))
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken(testSecret, signToken(t, testSecret, jwt.MapClaims{"name": "ana"}))
	assert.ErrorIs(t, err, ErrNoSubject)
}
