package preferenceservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/elaccess/internal/domain"
)

const visitorID = "0b7e3a52-8f1c-4a3e-9d6b-2f1e5c7a9b10"

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestInit(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		visitorID     string
		prefersDark   bool
		prepareMock   func()
		expected      *domain.Preference
		expectedError error
	}{
		{
			name:        "Stored preference wins over the system one",
			visitorID:   visitorID,
			prefersDark: false,
			prepareMock: func() {
				repo.EXPECT().Find(context.Background(), visitorID).
					Return(&domain.Preference{VisitorID: visitorID, DarkMode: true}, nil)
			},
			expected: &domain.Preference{VisitorID: visitorID, DarkMode: true},
		},
		{
			name:        "System preference when nothing is stored",
			visitorID:   visitorID,
			prefersDark: true,
			prepareMock: func() {
				repo.EXPECT().Find(context.Background(), visitorID).Return(nil, nil)
			},
			expected: &domain.Preference{VisitorID: visitorID, DarkMode: true},
		},
		{
			name:        "Repository failure",
			visitorID:   visitorID,
			prepareMock: func() {
				repo.EXPECT().Find(context.Background(), visitorID).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:          "Invalid visitor id",
			visitorID:     "not-a-uuid",
			prepareMock:   func() {},
			expectedError: ErrInvalidVisitor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			pref, err := service.Init(context.Background(), tt.visitorID, tt.prefersDark)

			assert.Equal(t, tt.expectedError, err)
			assert.Equal(t, tt.expected, pref)
		})
	}
}

func TestUpdate(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		visitorID     string
		darkMode      bool
		prepareMock   func()
		expected      *domain.Preference
		expectedError error
	}{
		{
			name:      "Preference saved",
			visitorID: visitorID,
			darkMode:  true,
			prepareMock: func() {
				repo.EXPECT().Save(context.Background(), &domain.Preference{VisitorID: visitorID, DarkMode: true}).Return(nil)
			},
			expected: &domain.Preference{VisitorID: visitorID, DarkMode: true},
		},
		{
			name:      "Repository failure",
			visitorID: visitorID,
			prepareMock: func() {
				repo.EXPECT().Save(context.Background(), gomock.Any()).Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:          "Invalid visitor id",
			visitorID:     "",
			prepareMock:   func() {},
			expectedError: ErrInvalidVisitor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			pref, err := service.Update(context.Background(), tt.visitorID, tt.darkMode)

			assert.Equal(t, tt.expectedError, err)
			assert.Equal(t, tt.expected, pref)
		})
	}
}
