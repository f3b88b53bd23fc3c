package preferencerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/elaccess/internal/domain"
	"github.com/GlebRadaev/elaccess/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Find(ctx context.Context, visitorID string) (*domain.Preference, error) {
	var pref domain.Preference
	err := repo.db.QueryRow(ctx,
		"SELECT visitor_id, dark_mode, updated_at FROM preferences WHERE visitor_id = $1", visitorID,
	).Scan(&pref.VisitorID, &pref.DarkMode, &pref.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find preference", zap.Error(err))
		return nil, err
	}
	return &pref, nil
}

func (repo *Repository) Save(ctx context.Context, pref *domain.Preference) error {
	query := `
		INSERT INTO preferences (visitor_id, dark_mode, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (visitor_id) DO UPDATE
		SET dark_mode = EXCLUDED.dark_mode, updated_at = EXCLUDED.updated_at
		RETURNING updated_at
	`
	err := repo.db.QueryRow(ctx, query, pref.VisitorID, pref.DarkMode).Scan(&pref.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save preference", zap.Error(err))
		return err
	}
	return nil
}
