package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	valid, _ := jwtService.GenerateToken("session-1", time.Now().Add(time.Hour))

	tests := []struct {
		name          string
		header        string
		expectedCode  int
		expectedValue string
	}{
		{name: "Valid token", header: "Bearer " + valid, expectedCode: http.StatusOK, expectedValue: "session-1"},
		{name: "No header", expectedCode: http.StatusUnauthorized},
		{name: "Not a bearer", header: "Basic abc", expectedCode: http.StatusUnauthorized},
		{name: "Invalid token", header: "Bearer nope", expectedCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = SessionID(r.Context())
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodGet, "/api/registration", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			SessionMiddleware(jwtService)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedValue, got)
		})
	}
}
