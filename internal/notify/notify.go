package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/elaccess/internal/domain"
	"github.com/GlebRadaev/elaccess/internal/metrics"
)

const (
	EventReceiptIssued   = "receipt.issued"
	EventContactReceived = "contact.received"

	maxRetries = 3
)

//go:generate mockgen -destination=mock_publisher.go -source=notify.go -package=notify
type Publisher interface {
	Publish(ctx context.Context, key string, payload interface{}) error
}

// ReceiptEvent tells downstream mailers that a receipt is ready to be sent
// to the student.
type ReceiptEvent struct {
	Type          string    `json:"type"`
	ReceiptID     string    `json:"receipt_id"`
	TransactionID string    `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Item          string    `json:"item"`
	AmountKobo    int64     `json:"amount_kobo"`
	Amount        string    `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	IssuedAt      time.Time `json:"issued_at"`
}

func NewReceiptEvent(r domain.Receipt) ReceiptEvent {
	return ReceiptEvent{
		Type:          EventReceiptIssued,
		ReceiptID:     r.ID,
		TransactionID: r.TransactionID,
		UserID:        r.UserID,
		Name:          r.CustomerName,
		Email:         r.CustomerEmail,
		Phone:         r.CustomerPhone,
		Item:          r.Item,
		AmountKobo:    r.Amount.Kobo(),
		Amount:        r.Amount.String(),
		PaymentMethod: string(r.PaymentMethod),
		IssuedAt:      r.CreatedAt,
	}
}

// ContactEvent carries a contact form message to the support inbox.
type ContactEvent struct {
	Type       string    `json:"type"`
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

func NewContactEvent(m domain.ContactMessage) ContactEvent {
	return ContactEvent{
		Type:       EventContactReceived,
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Message:    m.Message,
		ReceivedAt: m.ReceivedAt,
	}
}

// Notifier publishes events from a worker pool so a slow broker
// never holds up a registration.
type Notifier struct {
	publisher     Publisher
	workerPool    WorkerPoolI
	retryInterval time.Duration
	timeout       time.Duration
}

func New(publisher Publisher, workers int) *Notifier {
	return &Notifier{
		publisher:     publisher,
		workerPool:    NewWorkerPool(workers),
		retryInterval: time.Second,
		timeout:       10 * time.Second,
	}
}

// ReceiptIssued queues the event. It blocks only while the queue is full.
func (n *Notifier) ReceiptIssued(ctx context.Context, r domain.Receipt) error {
	event := NewReceiptEvent(r)
	return n.enqueue(ctx, EventReceiptIssued, event.UserID, event.ReceiptID, event)
}

// ContactReceived queues a contact form message the same way.
func (n *Notifier) ContactReceived(ctx context.Context, m domain.ContactMessage) error {
	event := NewContactEvent(m)
	return n.enqueue(ctx, EventContactReceived, event.Email, event.ID, event)
}

func (n *Notifier) enqueue(ctx context.Context, eventType, key, ref string, payload interface{}) error {
	err := n.workerPool.AddTask(ctx, func() error {
		return n.publish(eventType, key, ref, payload)
	})
	if err != nil {
		metrics.EventsFailed.WithLabelValues(eventType).Inc()
		return fmt.Errorf("can't queue %s event %s: %w", eventType, ref, err)
	}
	return nil
}

func (n *Notifier) publish(eventType, key, ref string, payload interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = n.publisher.Publish(ctx, key, payload); err == nil {
			zap.L().Info("event published", zap.String("event", eventType), zap.String("ref", ref))
			return nil
		}
		zap.L().Warn("event not published, retrying",
			zap.String("event", eventType),
			zap.String("ref", ref),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt == maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			metrics.EventsFailed.WithLabelValues(eventType).Inc()
			return ctx.Err()
		case <-time.After(n.retryInterval * time.Duration(attempt)):
		}
	}
	metrics.EventsFailed.WithLabelValues(eventType).Inc()
	return fmt.Errorf("failed to publish %s %s after %d retries: %w", eventType, ref, maxRetries, err)
}

func (n *Notifier) Close() {
	n.workerPool.Close()
}
