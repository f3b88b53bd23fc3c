package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	preferencerepo "github.com/GlebRadaev/elaccess/internal/repo/preference-repo"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repo := New(mockDB)

	assert.NotNil(t, repo.PreferenceRepo)
	assert.IsType(t, &preferencerepo.Repository{}, repo.PreferenceRepo)

	if err := mockDB.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

func TestNewInMemory(t *testing.T) {
	repo := New(nil)

	assert.IsType(t, &preferencerepo.MemoryRepository{}, repo.PreferenceRepo)
}
