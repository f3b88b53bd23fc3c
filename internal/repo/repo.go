package repo

import (
	"github.com/GlebRadaev/elaccess/internal/pg"
	preferencerepo "github.com/GlebRadaev/elaccess/internal/repo/preference-repo"
	"github.com/GlebRadaev/elaccess/internal/service/preferenceservice"
)

type Repositories struct {
	PreferenceRepo preferenceservice.Repo
}

// New backs the repositories with Postgres, or keeps everything in memory
// when no connection is given.
func New(conn pg.Database) *Repositories {
	if conn == nil {
		return &Repositories{
			PreferenceRepo: preferencerepo.NewMemory(),
		}
	}
	return &Repositories{
		PreferenceRepo: preferencerepo.New(conn),
	}
}
