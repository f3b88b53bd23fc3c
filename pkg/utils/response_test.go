package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		payload      interface{}
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Payload",
			code:         http.StatusCreated,
			payload:      map[string]string{"step": "personal"},
			expectedCode: http.StatusCreated,
			expectedBody: `{"step":"personal"}`,
		},
		{
			name:         "Payload can't be marshalled",
			code:         http.StatusOK,
			payload:      make(chan int),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			RespondWithJSON(w, tt.code, tt.payload)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithError(w, http.StatusNotFound, "Registration not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Registration not found"}`, w.Body.String())
}
