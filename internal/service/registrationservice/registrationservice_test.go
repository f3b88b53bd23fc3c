package registrationservice

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/elaccess/internal/catalog"
	"github.com/GlebRadaev/elaccess/internal/domain"
	"github.com/GlebRadaev/elaccess/internal/wizard"
	"github.com/GlebRadaev/elaccess/pkg/idgen"
)

var jane = domain.PersonalInfo{FullName: "Jane Doe", Email: "jane@x.com", Phone: "08011112222"}

func testConfig() Config {
	return Config{
		Wizard: wizard.Config{
			PaymentWindow:      15 * time.Minute,
			CountdownInterval:  time.Second,
			ProcessingDuration: 10 * time.Millisecond,
			ProcessingTick:     time.Millisecond,
		},
		SessionTTL:    time.Hour,
		SweepInterval: time.Minute,
	}
}

func NewMock(t *testing.T) (*Service, *MockTokenIssuer, *MockNotifier) {
	ctrl := gomock.NewController(t)
	tokens := NewMockTokenIssuer(ctrl)
	notifier := NewMockNotifier(ctrl)
	c, err := catalog.New()
	require.NoError(t, err)

	service := New(testConfig(), c, idgen.New(), tokens, notifier)
	t.Cleanup(func() { _ = service.Close() })
	return service, tokens, notifier
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(tokens *MockTokenIssuer)
		expectedError bool
		expectedLen   int
	}{
		{
			name: "Session opened",
			prepareMock: func(tokens *MockTokenIssuer) {
				tokens.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return("signed-token", nil)
			},
			expectedLen: 1,
		},
		{
			name: "Token can't be signed",
			prepareMock: func(tokens *MockTokenIssuer) {
				tokens.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return("", errors.New("no key"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, tokens, _ := NewMock(t)
			tt.prepareMock(tokens)

			session, err := service.Create(context.Background())

			assert.Equal(t, tt.expectedLen, service.Len())
			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, session)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, session.ID)
			assert.Equal(t, "signed-token", session.Token)
			assert.Equal(t, domain.StepPersonalInfo, session.State.Step)
			assert.Regexp(t, `^EL[A-Z0-9]{8}$`, session.State.Payment.UserID)
		})
	}
}

func TestUnknownSession(t *testing.T) {
	service, _, _ := NewMock(t)
	ctx := context.Background()

	_, err := service.State(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = service.SubmitPersonalInfo(ctx, "missing", jane)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = service.Receipt(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, service.Abandon(ctx, "missing"), ErrSessionNotFound)
}

func TestRegistrationFlow(t *testing.T) {
	service, tokens, notifier := NewMock(t)
	ctx := context.Background()
	tokens.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return("signed-token", nil)

	var notified atomic.Int32
	notifier.EXPECT().
		ReceiptIssued(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r domain.Receipt) error {
			assert.Equal(t, "JavaScript Bundle", r.Item)
			notified.Add(1)
			return nil
		})

	session, err := service.Create(ctx)
	require.NoError(t, err)
	id := session.ID

	state, err := service.SubmitPersonalInfo(ctx, id, domain.PersonalInfo{})
	assert.ErrorIs(t, err, wizard.ErrFullNameRequired)
	assert.Equal(t, domain.StepPersonalInfo, state.Step)

	_, err = service.SubmitPersonalInfo(ctx, id, jane)
	require.NoError(t, err)
	_, err = service.SelectCategory(ctx, id, "javascript")
	require.NoError(t, err)
	_, err = service.SelectOffering(ctx, id, domain.BundleOffering{CategoryID: "javascript"})
	require.NoError(t, err)
	_, err = service.Back(ctx, id)
	require.NoError(t, err)
	_, err = service.SubmitPersonalInfo(ctx, id, jane)
	require.NoError(t, err)
	state, err = service.ContinueToPayment(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepPayment, state.Step)

	_, err = service.ChoosePaymentMethod(ctx, id, domain.PaymentUSSD)
	require.NoError(t, err)
	_, err = service.StartPayment(ctx, id)
	require.NoError(t, err)
	_, err = service.Submit(ctx, id)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		state, err := service.State(ctx, id)
		return err == nil && state.Step == domain.StepConfirmation
	}, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return notified.Load() == 1 }, time.Second, time.Millisecond)

	receipt, err := service.Receipt(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "N25,000", receipt.Amount.String())

	state, err = service.StartOver(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StepPersonalInfo, state.Step)
	assert.NotEqual(t, receipt.UserID, state.Payment.UserID)
}

func TestAbandon(t *testing.T) {
	service, tokens, _ := NewMock(t)
	ctx := context.Background()
	tokens.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return("signed-token", nil)
	session, err := service.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, service.Abandon(ctx, session.ID))

	assert.Equal(t, 0, service.Len())
	_, err = service.State(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSweep(t *testing.T) {
	service, tokens, _ := NewMock(t)
	ctx := context.Background()
	tokens.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return("signed-token", nil).Times(2)

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }
	idle, err := service.Create(ctx)
	require.NoError(t, err)

	now = now.Add(50 * time.Minute)
	active, err := service.Create(ctx)
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	assert.Equal(t, 1, service.Sweep())

	_, err = service.State(ctx, idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = service.State(ctx, active.ID)
	assert.NoError(t, err)

	now = now.Add(59 * time.Minute)
	assert.Equal(t, 0, service.Sweep(), "reading the state keeps the session alive")
}

func TestStart_ClosesSessionsOnShutdown(t *testing.T) {
	service, tokens, _ := NewMock(t)
	tokens.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return("signed-token", nil)
	_, err := service.Create(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)
	cancel()

	require.Eventually(t, func() bool { return service.Len() == 0 }, time.Second, time.Millisecond)
}

func TestClose_WaitsForReceiptNotification(t *testing.T) {
	service, tokens, notifier := NewMock(t)
	service.closeTimeout = 20 * time.Millisecond
	ctx := context.Background()
	tokens.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return("signed-token", nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	notifier.EXPECT().
		ReceiptIssued(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Receipt) error {
			close(entered)
			<-release
			return nil
		})

	session, err := service.Create(ctx)
	require.NoError(t, err)
	id := session.ID
	_, err = service.SubmitPersonalInfo(ctx, id, jane)
	require.NoError(t, err)
	_, err = service.SelectCategory(ctx, id, "python")
	require.NoError(t, err)
	_, err = service.SelectOffering(ctx, id, domain.CourseOffering{CourseID: "python-basics"})
	require.NoError(t, err)
	_, err = service.ContinueToPayment(ctx, id)
	require.NoError(t, err)
	_, err = service.ChoosePaymentMethod(ctx, id, domain.PaymentBankDeposit)
	require.NoError(t, err)
	_, err = service.StartPayment(ctx, id)
	require.NoError(t, err)
	_, err = service.Submit(ctx, id)
	require.NoError(t, err)

	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("receipt was not issued")
	}

	err = service.Close()
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 0, service.Len())

	close(release)
	assert.NoError(t, service.Close())
}
