package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/elaccess/internal/domain"
	"github.com/GlebRadaev/elaccess/pkg/money"
)

func testReceipt() domain.Receipt {
	return domain.Receipt{
		ID:            "RCPTLOYW3V28AB12",
		TransactionID: "TRXLOYW3V28CD34",
		UserID:        "EL7K2M9QXZ",
		CreatedAt:     time.Date(2024, 5, 1, 14, 5, 0, 0, time.UTC),
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@x.com",
		CustomerPhone: "08011112222",
		Item:          "Python Basics",
		Amount:        money.FromNaira(30000),
		PaymentMethod: domain.PaymentBankTransfer,
		Status:        domain.ReceiptStatusCompleted,
	}
}

func TestNewReceiptEvent(t *testing.T) {
	event := NewReceiptEvent(testReceipt())

	assert.Equal(t, EventReceiptIssued, event.Type)
	assert.Equal(t, "RCPTLOYW3V28AB12", event.ReceiptID)
	assert.Equal(t, int64(3000000), event.AmountKobo)
	assert.Equal(t, "N30,000", event.Amount)
	assert.Equal(t, "bank_transfer", event.PaymentMethod)
	assert.Equal(t, "jane@x.com", event.Email)
}

func TestNotifier_ReceiptIssued(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(p *MockPublisher, done chan struct{})
	}{
		{
			name: "Published on first attempt",
			prepareMock: func(p *MockPublisher, done chan struct{}) {
				p.EXPECT().
					Publish(gomock.Any(), "EL7K2M9QXZ", NewReceiptEvent(testReceipt())).
					DoAndReturn(func(context.Context, string, any) error {
						close(done)
						return nil
					})
			},
		},
		{
			name: "Published after a retry",
			prepareMock: func(p *MockPublisher, done chan struct{}) {
				gomock.InOrder(
					p.EXPECT().Publish(gomock.Any(), "EL7K2M9QXZ", gomock.Any()).Return(errors.New("broker down")),
					p.EXPECT().Publish(gomock.Any(), "EL7K2M9QXZ", gomock.Any()).
						DoAndReturn(func(context.Context, string, any) error {
							close(done)
							return nil
						}),
				)
			},
		},
		{
			name: "Gives up after the last retry",
			prepareMock: func(p *MockPublisher, done chan struct{}) {
				calls := 0
				p.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(context.Context, string, any) error {
						calls++
						if calls == maxRetries {
							close(done)
						}
						return errors.New("broker down")
					}).Times(maxRetries)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			publisher := NewMockPublisher(ctrl)
			done := make(chan struct{})
			tt.prepareMock(publisher, done)

			n := New(publisher, 1)
			n.retryInterval = time.Millisecond

			require.NoError(t, n.ReceiptIssued(context.Background(), testReceipt()))

			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("receipt event was not published")
			}
			n.Close()
		})
	}
}

func TestNotifier_ReceiptIssuedAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	n := New(NewMockPublisher(ctrl), 1)
	n.Close()

	err := n.ReceiptIssued(context.Background(), testReceipt())

	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestNotifier_ContactReceived(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := NewMockPublisher(ctrl)
	msg := domain.ContactMessage{
		ID:         "4d8f0a1e-7c3b-4e2a-9f5d-6b1c2a3e4f50",
		Name:       "Jane Doe",
		Email:      "jane@x.com",
		Message:    "When does the next cohort start?",
		ReceivedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
	done := make(chan struct{})
	publisher.EXPECT().
		Publish(gomock.Any(), "jane@x.com", NewContactEvent(msg)).
		DoAndReturn(func(context.Context, string, any) error {
			close(done)
			return nil
		})

	n := New(publisher, 1)
	defer n.Close()

	require.NoError(t, n.ContactReceived(context.Background(), msg))
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("contact event was not published")
	}
	assert.Equal(t, EventContactReceived, NewContactEvent(msg).Type)
}
