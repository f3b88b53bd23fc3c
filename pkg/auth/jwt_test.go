package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestGenerateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name           string
		sessionID      string
		expirationTime time.Time
	}{
		{
			name:           "Valid token",
			sessionID:      "7f9c2f4e-5b7a-4c39-9a51-5d1c0b2d8e11",
			expirationTime: time.Now().Add(time.Hour),
		},
		{
			name:           "Already expired token",
			sessionID:      "7f9c2f4e-5b7a-4c39-9a51-5d1c0b2d8e11",
			expirationTime: time.Now().Add(-time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateToken(tt.sessionID, tt.expirationTime)

			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectedErr error
	}{
		{
			name: "Valid token",
			setup: func() string {
				token, _ := jwtService.GenerateToken("session-1", time.Now().Add(time.Hour))
				return token
			},
		},
		{
			name:        "Malformed token",
			tokenString: "invalid.token.string",
			expectedErr: ErrInvalidToken,
		},
		{
			name: "Expired token",
			setup: func() string {
				token, _ := jwtService.GenerateToken("session-1", time.Now().Add(-time.Hour))
				return token
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name: "Signed with another secret",
			setup: func() string {
				token, _ := NewJWTService("other").GenerateToken("session-1", time.Now().Add(time.Hour))
				return token
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name: "No session id",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    issuer,
				})
				signed, _ := token.SignedString([]byte(testSecret))
				return signed
			},
			expectedErr: ErrInvalidClaims,
		},
		{
			name: "Foreign issuer",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					SessionID: "session-1",
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    "other-service",
					},
				})
				signed, _ := token.SignedString([]byte(testSecret))
				return signed
			},
			expectedErr: ErrInvalidClaims,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString := tt.tokenString
			if tt.setup != nil {
				tokenString = tt.setup()
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, claims)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "session-1", claims.SessionID)
		})
	}
}
