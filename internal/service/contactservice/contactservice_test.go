package contactservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/elaccess/internal/domain"
)

var receivedAt = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockNotifier) {
	ctrl := gomock.NewController(t)
	notifier := NewMockNotifier(ctrl)
	service := New(notifier)
	service.now = func() time.Time { return receivedAt }
	return service, notifier
}

func TestSend(t *testing.T) {
	service, notifier := NewMock(t)

	tests := []struct {
		name          string
		message       domain.ContactMessage
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Message forwarded",
			message: domain.ContactMessage{
				Name:    " <b>Jane</b> Doe ",
				Email:   "jane@x.com",
				Message: "When does the next Python cohort start?",
			},
			prepareMock: func() {
				notifier.EXPECT().ContactReceived(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m domain.ContactMessage) error {
						assert.Equal(t, "Jane Doe", m.Name)
						assert.Equal(t, receivedAt, m.ReceivedAt)
						assert.NoError(t, uuid.Validate(m.ID))
						return nil
					})
			},
		},
		{
			name:          "Missing name",
			message:       domain.ContactMessage{Email: "jane@x.com", Message: "Hi"},
			prepareMock:   func() {},
			expectedError: ErrNameRequired,
		},
		{
			name:          "Blank email",
			message:       domain.ContactMessage{Name: "Jane", Email: "  ", Message: "Hi"},
			prepareMock:   func() {},
			expectedError: ErrEmailRequired,
		},
		{
			name:          "Markup only message",
			message:       domain.ContactMessage{Name: "Jane", Email: "jane@x.com", Message: "<script></script>"},
			prepareMock:   func() {},
			expectedError: ErrMessageRequired,
		},
		{
			name:    "Notifier unavailable",
			message: domain.ContactMessage{Name: "Jane", Email: "jane@x.com", Message: "Hi"},
			prepareMock: func() {
				notifier.EXPECT().ContactReceived(gomock.Any(), gomock.Any()).Return(errors.New("pool closed"))
			},
			expectedError: errors.New("pool closed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			msg, err := service.Send(context.Background(), tt.message)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Nil(t, msg)
				if errors.Is(tt.expectedError, ErrInvalidMessage) {
					assert.ErrorIs(t, err, tt.expectedError)
				} else {
					assert.EqualError(t, err, tt.expectedError.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Jane Doe", msg.Name)
			assert.Equal(t, receivedAt, msg.ReceivedAt)
		})
	}
}
