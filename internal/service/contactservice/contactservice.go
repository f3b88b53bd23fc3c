package contactservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/elaccess/internal/domain"
	"github.com/GlebRadaev/elaccess/internal/metrics"
	"github.com/GlebRadaev/elaccess/pkg/validate"
)

var ErrInvalidMessage = errors.New("invalid contact message")

var (
	ErrNameRequired    = fmt.Errorf("%w: name is required", ErrInvalidMessage)
	ErrEmailRequired   = fmt.Errorf("%w: email is required", ErrInvalidMessage)
	ErrMessageRequired = fmt.Errorf("%w: message is required", ErrInvalidMessage)
)

//go:generate mockgen -destination=mock_notifier.go -source=contactservice.go -package=contactservice
type Notifier interface {
	ContactReceived(ctx context.Context, msg domain.ContactMessage) error
}

type Service struct {
	notifier Notifier
	now      func() time.Time
}

func New(notifier Notifier) *Service {
	return &Service{
		notifier: notifier,
		now:      time.Now,
	}
}

// Send checks and cleans a contact form message and hands it to the
// notifier.
func (s *Service) Send(ctx context.Context, m domain.ContactMessage) (*domain.ContactMessage, error) {
	msg := domain.ContactMessage{
		Name:    validate.Clean(m.Name),
		Email:   validate.Clean(m.Email),
		Phone:   validate.Clean(m.Phone),
		Message: validate.Clean(m.Message),
	}
	switch {
	case !validate.Required(msg.Name):
		return nil, ErrNameRequired
	case !validate.Required(msg.Email):
		return nil, ErrEmailRequired
	case !validate.Required(msg.Message):
		return nil, ErrMessageRequired
	}

	msg.ID = uuid.NewString()
	msg.ReceivedAt = s.now()
	if err := s.notifier.ContactReceived(ctx, msg); err != nil {
		zap.L().Error("can't forward contact message: ", zap.String("id", msg.ID), zap.Error(err))
		return nil, err
	}

	metrics.ContactMessagesReceived.Inc()
	zap.L().Info("contact message received", zap.String("id", msg.ID))
	return &msg, nil
}
