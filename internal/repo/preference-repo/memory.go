package preferencerepo

import (
	"context"
	"sync"
	"time"

	"github.com/GlebRadaev/elaccess/internal/domain"
)

// MemoryRepository keeps preferences for the life of the process. It is
// used when no database is configured.
type MemoryRepository struct {
	mu    sync.RWMutex
	prefs map[string]domain.Preference
	now   func() time.Time
}

func NewMemory() *MemoryRepository {
	return &MemoryRepository{
		prefs: make(map[string]domain.Preference),
		now:   time.Now,
	}
}

func (repo *MemoryRepository) Find(_ context.Context, visitorID string) (*domain.Preference, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	pref, ok := repo.prefs[visitorID]
	if !ok {
		return nil, nil
	}
	return &pref, nil
}

func (repo *MemoryRepository) Save(_ context.Context, pref *domain.Preference) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	pref.UpdatedAt = repo.now()
	repo.prefs[pref.VisitorID] = *pref
	return nil
}
