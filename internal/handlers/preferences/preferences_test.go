package preferences

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/elaccess/internal/domain"
	"github.com/GlebRadaev/elaccess/internal/service/preferenceservice"
)

const visitorID = "3b1f6a52-8c0e-4d7a-9e2b-1f4c5d6e7a8b"

func NewMock(t *testing.T) (*PreferenceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestGetPreferences(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		cookie        string
		colorScheme   string
		prepareMock   func()
		expectedCode  int
		expectedBody  string
		expectsCookie bool
	}{
		{
			name:        "Stored preference",
			cookie:      visitorID,
			colorScheme: "light",
			prepareMock: func() {
				service.EXPECT().Init(gomock.Any(), visitorID, false).
					Return(&domain.Preference{VisitorID: visitorID, DarkMode: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"dark_mode":true}`,
		},
		{
			name:        "Browser prefers dark",
			cookie:      visitorID,
			colorScheme: `"dark"`,
			prepareMock: func() {
				service.EXPECT().Init(gomock.Any(), visitorID, true).
					Return(&domain.Preference{VisitorID: visitorID, DarkMode: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"dark_mode":true}`,
		},
		{
			name: "New visitor gets a cookie",
			prepareMock: func() {
				service.EXPECT().Init(gomock.Any(), gomock.Any(), false).
					Return(&domain.Preference{DarkMode: false}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedBody:  `{"dark_mode":false}`,
			expectsCookie: true,
		},
		{
			name:   "Tampered cookie",
			cookie: "not-a-uuid",
			prepareMock: func() {
				service.EXPECT().Init(gomock.Any(), "not-a-uuid", false).
					Return(nil, preferenceservice.ErrInvalidVisitor)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"invalid visitor id"}`,
		},
		{
			name:   "Store failure",
			cookie: visitorID,
			prepareMock: func() {
				service.EXPECT().Init(gomock.Any(), visitorID, false).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodGet, "/api/preferences", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: tt.cookie})
			}
			if tt.colorScheme != "" {
				req.Header.Set(ColorSchemeHeader, tt.colorScheme)
			}
			w := httptest.NewRecorder()

			handler.GetPreferences(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())

			cookies := w.Result().Cookies()
			if !tt.expectsCookie {
				assert.Empty(t, cookies)
				return
			}
			require.Len(t, cookies, 1)
			assert.Equal(t, VisitorCookie, cookies[0].Name)
			assert.NoError(t, uuid.Validate(cookies[0].Value))
		})
	}
}

func TestUpdatePreferences(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Dark mode on",
			body: `{"dark_mode":true}`,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), visitorID, true).
					Return(&domain.Preference{VisitorID: visitorID, DarkMode: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"dark_mode":true}`,
		},
		{
			name:         "Missing flag",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid request body"}`,
		},
		{
			name:         "Malformed body",
			body:         `{"dark_mode":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid request body"}`,
		},
		{
			name: "Store failure",
			body: `{"dark_mode":false}`,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), visitorID, false).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPut, "/api/preferences", bytes.NewBufferString(tt.body))
			req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: visitorID})
			w := httptest.NewRecorder()

			handler.UpdatePreferences(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
