package preferenceservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/elaccess/internal/domain"
)

var ErrInvalidVisitor = errors.New("invalid visitor id")

//go:generate mockgen -destination=mock_repo.go -source=preferenceservice.go -package=preferenceservice
type Repo interface {
	Find(ctx context.Context, visitorID string) (*domain.Preference, error)
	Save(ctx context.Context, pref *domain.Preference) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Init returns the stored preference of the visitor, or the operating
// system preference when nothing is stored yet. Nothing is persisted.
func (s *Service) Init(ctx context.Context, visitorID string, prefersDark bool) (*domain.Preference, error) {
	if err := uuid.Validate(visitorID); err != nil {
		return nil, ErrInvalidVisitor
	}

	pref, err := s.repo.Find(ctx, visitorID)
	if err != nil {
		zap.L().Error("can't load preference: ", zap.Error(err))
		return nil, err
	}
	if pref != nil {
		return pref, nil
	}
	return &domain.Preference{VisitorID: visitorID, DarkMode: prefersDark}, nil
}

func (s *Service) Update(ctx context.Context, visitorID string, darkMode bool) (*domain.Preference, error) {
	if err := uuid.Validate(visitorID); err != nil {
		return nil, ErrInvalidVisitor
	}

	pref := &domain.Preference{VisitorID: visitorID, DarkMode: darkMode}
	if err := s.repo.Save(ctx, pref); err != nil {
		zap.L().Error("can't save preference: ", zap.Error(err))
		return nil, err
	}
	return pref, nil
}
