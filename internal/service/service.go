package service

import (
	"github.com/GlebRadaev/elaccess/internal/catalog"
	catalogh "github.com/GlebRadaev/elaccess/internal/handlers/catalog"
	"github.com/GlebRadaev/elaccess/internal/handlers/contact"
	"github.com/GlebRadaev/elaccess/internal/handlers/preferences"
	"github.com/GlebRadaev/elaccess/internal/repo"
	"github.com/GlebRadaev/elaccess/internal/service/contactservice"
	"github.com/GlebRadaev/elaccess/internal/service/preferenceservice"
	"github.com/GlebRadaev/elaccess/internal/service/registrationservice"
	"github.com/GlebRadaev/elaccess/pkg/idgen"
)

// Notifier publishes both receipt and contact events.
type Notifier interface {
	registrationservice.Notifier
	contactservice.Notifier
}

type Services struct {
	CatalogService      catalogh.Service
	ContactService      contact.Service
	PreferenceService   preferences.Service
	RegistrationService *registrationservice.Service
}

func New(
	repo *repo.Repositories,
	cat *catalog.Catalog,
	cfg registrationservice.Config,
	tokens registrationservice.TokenIssuer,
	notifier Notifier,
) *Services {
	return &Services{
		CatalogService:      cat,
		ContactService:      contactservice.New(notifier),
		PreferenceService:   preferenceservice.New(repo.PreferenceRepo),
		RegistrationService: registrationservice.New(cfg, cat, idgen.New(), tokens, notifier),
	}
}
