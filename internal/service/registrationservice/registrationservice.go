package registrationservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/elaccess/internal/domain"
	"github.com/GlebRadaev/elaccess/internal/metrics"
	"github.com/GlebRadaev/elaccess/internal/wizard"
)

const (
	tokenTTL       = 24 * time.Hour
	enqueueTimeout = 5 * time.Second
	closeTimeout   = 2 * enqueueTimeout
)

var ErrSessionNotFound = errors.New("registration session not found")

//go:generate mockgen -destination=mock_service.go -source=registrationservice.go -package=registrationservice
type Notifier interface {
	ReceiptIssued(ctx context.Context, r domain.Receipt) error
}

type TokenIssuer interface {
	GenerateToken(sessionID string, expirationTime time.Time) (string, error)
}

type Config struct {
	Wizard        wizard.Config
	SessionTTL    time.Duration
	SweepInterval time.Duration
}

// Session is a freshly opened registration together with the bearer token
// that gives access to it.
type Session struct {
	ID        string
	Token     string
	ExpiresAt time.Time
	State     domain.WizardState
}

type entry struct {
	wizard   *wizard.Wizard
	lastSeen time.Time
}

// Service keeps one registration wizard per visitor session and closes the
// ones left idle.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*entry

	cfg      Config
	catalog  wizard.Catalog
	ids      wizard.IDGenerator
	tokens   TokenIssuer
	notifier Notifier
	now      func() time.Time

	closeTimeout time.Duration
}

func New(cfg Config, catalog wizard.Catalog, ids wizard.IDGenerator, tokens TokenIssuer, notifier Notifier) *Service {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = time.Hour
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}
	return &Service{
		sessions: make(map[string]*entry),
		cfg:      cfg,
		catalog:  catalog,
		ids:      ids,
		tokens:   tokens,
		notifier: notifier,
		now:      time.Now,

		closeTimeout: closeTimeout,
	}
}

func (s *Service) Create(ctx context.Context) (*Session, error) {
	id := uuid.NewString()
	expiresAt := s.now().Add(tokenTTL)

	token, err := s.tokens.GenerateToken(id, expiresAt)
	if err != nil {
		zap.L().Error("can't generate session token: ", zap.Error(err))
		return nil, fmt.Errorf("can't generate session token: %w", err)
	}

	w := wizard.New(s.cfg.Wizard, s.catalog, s.ids,
		wizard.WithOnComplete(s.receiptIssued),
		wizard.WithOnExpire(metrics.PaymentWindowsExpired.Inc),
	)

	s.mu.Lock()
	s.sessions[id] = &entry{wizard: w, lastSeen: s.now()}
	s.mu.Unlock()

	metrics.RegistrationsStarted.Inc()
	metrics.ActiveRegistrations.Inc()
	zap.L().Info("registration started", zap.String("session_id", id), zap.String("user_id", w.UserID()))

	return &Session{
		ID:        id,
		Token:     token,
		ExpiresAt: expiresAt,
		State:     w.State(),
	}, nil
}

func (s *Service) receiptIssued(r domain.Receipt) {
	metrics.ReceiptsIssued.WithLabelValues(string(r.PaymentMethod)).Inc()
	if s.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), enqueueTimeout)
	defer cancel()
	if err := s.notifier.ReceiptIssued(ctx, r); err != nil {
		zap.L().Error("can't notify about receipt", zap.String("receipt_id", r.ID), zap.Error(err))
	}
}

func (s *Service) State(ctx context.Context, sessionID string) (domain.WizardState, error) {
	w, err := s.lookup(sessionID)
	if err != nil {
		return domain.WizardState{}, err
	}
	return w.State(), nil
}

func (s *Service) SubmitPersonalInfo(ctx context.Context, sessionID string, info domain.PersonalInfo) (domain.WizardState, error) {
	return s.apply(sessionID, func(w *wizard.Wizard) error {
		return w.SubmitPersonalInfo(info)
	})
}

func (s *Service) SelectCategory(ctx context.Context, sessionID, categoryID string) (domain.WizardState, error) {
	return s.apply(sessionID, func(w *wizard.Wizard) error {
		return w.SelectCategory(categoryID)
	})
}

func (s *Service) SelectOffering(ctx context.Context, sessionID string, sel domain.Selection) (domain.WizardState, error) {
	return s.apply(sessionID, func(w *wizard.Wizard) error {
		return w.SelectOffering(sel)
	})
}

func (s *Service) ContinueToPayment(ctx context.Context, sessionID string) (domain.WizardState, error) {
	return s.apply(sessionID, (*wizard.Wizard).ContinueToPayment)
}

func (s *Service) Back(ctx context.Context, sessionID string) (domain.WizardState, error) {
	return s.apply(sessionID, (*wizard.Wizard).Back)
}

func (s *Service) ChoosePaymentMethod(ctx context.Context, sessionID string, method domain.PaymentMethod) (domain.WizardState, error) {
	return s.apply(sessionID, func(w *wizard.Wizard) error {
		return w.ChoosePaymentMethod(method)
	})
}

func (s *Service) StartPayment(ctx context.Context, sessionID string) (domain.WizardState, error) {
	return s.apply(sessionID, (*wizard.Wizard).StartPayment)
}

func (s *Service) Submit(ctx context.Context, sessionID string) (domain.WizardState, error) {
	return s.apply(sessionID, (*wizard.Wizard).Submit)
}

func (s *Service) StartOver(ctx context.Context, sessionID string) (domain.WizardState, error) {
	return s.apply(sessionID, (*wizard.Wizard).StartOver)
}

func (s *Service) Receipt(ctx context.Context, sessionID string) (domain.Receipt, error) {
	w, err := s.lookup(sessionID)
	if err != nil {
		return domain.Receipt{}, err
	}
	return w.Receipt()
}

// Abandon closes the session right away, as if the visitor navigated away.
func (s *Service) Abandon(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	e, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	e.wizard.Close()
	metrics.ActiveRegistrations.Dec()
	zap.L().Info("registration abandoned", zap.String("session_id", sessionID))
	return nil
}

func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Service) apply(sessionID string, op func(*wizard.Wizard) error) (domain.WizardState, error) {
	w, err := s.lookup(sessionID)
	if err != nil {
		return domain.WizardState{}, err
	}
	if err := op(w); err != nil {
		zap.L().Debug("registration step refused", zap.String("session_id", sessionID), zap.Error(err))
		return w.State(), err
	}
	return w.State(), nil
}

func (s *Service) lookup(sessionID string) (*wizard.Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[sessionID]
	if !ok || e.wizard.Closed() {
		return nil, ErrSessionNotFound
	}
	e.lastSeen = s.now()
	return e.wizard, nil
}
