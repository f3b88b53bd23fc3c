package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/elaccess/internal/catalog"
	"github.com/GlebRadaev/elaccess/internal/domain"
	"github.com/GlebRadaev/elaccess/internal/repo"
	"github.com/GlebRadaev/elaccess/internal/service/contactservice"
	"github.com/GlebRadaev/elaccess/internal/service/preferenceservice"
	"github.com/GlebRadaev/elaccess/internal/service/registrationservice"
	"github.com/GlebRadaev/elaccess/internal/wizard"
)

type notifier struct {
	receipts *registrationservice.MockNotifier
	contacts *contactservice.MockNotifier
}

func (n notifier) ReceiptIssued(ctx context.Context, r domain.Receipt) error {
	return n.receipts.ReceiptIssued(ctx, r)
}

func (n notifier) ContactReceived(ctx context.Context, msg domain.ContactMessage) error {
	return n.contacts.ContactReceived(ctx, msg)
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cat, err := catalog.New()
	require.NoError(t, err)

	repos := &repo.Repositories{
		PreferenceRepo: preferenceservice.NewMockRepo(ctrl),
	}
	cfg := registrationservice.Config{Wizard: wizard.DefaultConfig()}

	services := New(repos, cat, cfg,
		registrationservice.NewMockTokenIssuer(ctrl),
		notifier{registrationservice.NewMockNotifier(ctrl), contactservice.NewMockNotifier(ctrl)},
	)

	assert.NotNil(t, services.CatalogService)
	assert.NotNil(t, services.ContactService)
	assert.NotNil(t, services.PreferenceService)
	assert.NotNil(t, services.RegistrationService)
	assert.Equal(t, 0, services.RegistrationService.Len())
}
