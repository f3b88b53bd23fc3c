package wizard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/elaccess/internal/countdown"
	"github.com/GlebRadaev/elaccess/internal/domain"
	"github.com/GlebRadaev/elaccess/pkg/validate"
)

const (
	NoticeWindowClosed        = "payment window closed"
	NoticeOfferingUnavailable = "selected course is no longer available"
)

type Catalog interface {
	FindCategory(id string) (domain.Category, error)
	FindCourse(id string) (domain.Course, error)
	Resolve(sel domain.Selection) (domain.Offering, error)
}

type IDGenerator interface {
	UserID() string
	TransactionID() string
	ReceiptID() string
}

type Config struct {
	PaymentWindow      time.Duration
	CountdownInterval  time.Duration
	ProcessingDuration time.Duration
	ProcessingTick     time.Duration
	RequireAddress     bool
}

func DefaultConfig() Config {
	return Config{
		PaymentWindow:      15 * time.Minute,
		CountdownInterval:  time.Second,
		ProcessingDuration: 30 * time.Second,
		ProcessingTick:     time.Second,
	}
}

type Option func(*Wizard)

// WithOnComplete registers a hook called once per issued receipt, outside
// the wizard lock.
func WithOnComplete(fn func(domain.Receipt)) Option {
	return func(w *Wizard) {
		w.onComplete = fn
	}
}

// WithOnExpire registers a hook called each time the payment window closes.
func WithOnExpire(fn func()) Option {
	return func(w *Wizard) {
		w.onExpire = fn
	}
}

func WithClock(now func() time.Time) Option {
	return func(w *Wizard) {
		w.now = now
	}
}

// Wizard walks one visitor through personal info, course selection and a
// simulated payment, and issues the receipt.
type Wizard struct {
	mu      sync.Mutex
	cfg     Config
	catalog Catalog
	ids     IDGenerator
	now     func() time.Time

	onComplete func(domain.Receipt)
	onExpire   func()

	ctx    context.Context
	cancel context.CancelFunc
	closed bool
	// running counts processing goroutines, completion hook included.
	running sync.WaitGroup

	// gen is bumped whenever scheduled work is cancelled; callbacks carrying
	// an older value are ignored.
	gen              uint64
	timer            *countdown.Timer
	cancelProcessing context.CancelFunc

	step    domain.Step
	draft   domain.RegistrationDraft
	session domain.PaymentSession
	notice  string
	receipt *domain.Receipt
}

func New(cfg Config, catalog Catalog, ids IDGenerator, opts ...Option) *Wizard {
	defaults := DefaultConfig()
	if cfg.PaymentWindow <= 0 {
		cfg.PaymentWindow = defaults.PaymentWindow
	}
	if cfg.CountdownInterval <= 0 {
		cfg.CountdownInterval = defaults.CountdownInterval
	}
	if cfg.ProcessingDuration <= 0 {
		cfg.ProcessingDuration = defaults.ProcessingDuration
	}
	if cfg.ProcessingTick <= 0 {
		cfg.ProcessingTick = defaults.ProcessingTick
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Wizard{
		cfg:     cfg,
		catalog: catalog,
		ids:     ids,
		now:     time.Now,
		ctx:     ctx,
		cancel:  cancel,
		step:    domain.StepPersonalInfo,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.session = domain.PaymentSession{UserID: ids.UserID()}
	return w
}

func (w *Wizard) UserID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.session.UserID
}

func (w *Wizard) SubmitPersonalInfo(info domain.PersonalInfo) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireStepLocked(domain.StepPersonalInfo); err != nil {
		return err
	}

	info = domain.PersonalInfo{
		FullName: validate.Clean(info.FullName),
		Email:    validate.Clean(info.Email),
		Phone:    validate.Clean(info.Phone),
		Address:  validate.Clean(info.Address),
	}
	switch {
	case !validate.Required(info.FullName):
		return ErrFullNameRequired
	case !validate.Required(info.Email):
		return ErrEmailRequired
	case !validate.Required(info.Phone):
		return ErrPhoneRequired
	case w.cfg.RequireAddress && !validate.Required(info.Address):
		return ErrAddressRequired
	}

	w.draft.PersonalInfo = info
	w.step = domain.StepCourseSelection
	return nil
}

// SelectCategory picks the category and drops a course selection that does
// not belong to it.
func (w *Wizard) SelectCategory(categoryID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireStepLocked(domain.StepCourseSelection); err != nil {
		return err
	}
	if _, err := w.catalog.FindCategory(categoryID); err != nil {
		return err
	}

	w.draft.CategoryID = categoryID
	if w.draft.Selection != nil && !w.belongsLocked(w.draft.Selection, categoryID) {
		w.draft.Selection = nil
	}
	return nil
}

// SelectOffering rejects a course or bundle outside the selected category.
func (w *Wizard) SelectOffering(sel domain.Selection) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireStepLocked(domain.StepCourseSelection); err != nil {
		return err
	}
	if w.draft.CategoryID == "" {
		return ErrCategoryRequired
	}

	switch s := sel.(type) {
	case domain.CourseOffering:
		if _, err := w.catalog.FindCourse(s.CourseID); err != nil {
			return err
		}
	case domain.BundleOffering:
		if _, err := w.catalog.FindCategory(s.CategoryID); err != nil {
			return err
		}
	default:
		return ErrSelectionRequired
	}

	if !w.belongsLocked(sel, w.draft.CategoryID) {
		return ErrInconsistentSelection
	}
	w.draft.Selection = sel
	return nil
}

func (w *Wizard) ContinueToPayment() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireStepLocked(domain.StepCourseSelection); err != nil {
		return err
	}
	if w.draft.CategoryID == "" {
		return ErrCategoryRequired
	}
	if w.draft.Selection == nil {
		return ErrSelectionRequired
	}
	if !w.belongsLocked(w.draft.Selection, w.draft.CategoryID) {
		return ErrInconsistentSelection
	}

	w.cancelScheduledLocked()
	w.session = domain.PaymentSession{UserID: w.session.UserID}
	w.notice = ""
	w.step = domain.StepPayment
	return nil
}

func (w *Wizard) ChoosePaymentMethod(method domain.PaymentMethod) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireStepLocked(domain.StepPayment); err != nil {
		return err
	}
	if w.session.Processing {
		return ErrProcessing
	}
	if method == "" {
		return ErrPaymentMethodRequired
	}
	if !method.Valid() {
		return ErrUnknownPaymentMethod
	}
	w.draft.PaymentMethod = method
	return nil
}

// StartPayment opens the payment window. After the window has closed it
// resets the countdown and opens a new one.
func (w *Wizard) StartPayment() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireStepLocked(domain.StepPayment); err != nil {
		return err
	}
	if w.session.Processing {
		return ErrProcessing
	}
	if w.session.TimerStarted {
		return nil
	}

	if w.timer == nil {
		gen := w.gen
		w.timer = countdown.New(w.cfg.PaymentWindow, func() { w.expire(gen) },
			countdown.WithInterval(w.cfg.CountdownInterval))
	} else {
		w.timer.Reset(w.cfg.PaymentWindow)
	}
	w.timer.Start(w.ctx)

	w.session.TimerStarted = true
	w.session.TimerExpired = false
	w.notice = ""
	return nil
}

// Submit closes the payment window and starts the simulated processing.
func (w *Wizard) Submit() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireStepLocked(domain.StepPayment); err != nil {
		return err
	}
	switch {
	case w.session.Processing:
		return ErrProcessing
	case w.draft.PaymentMethod == "":
		return ErrPaymentMethodRequired
	case w.session.TimerExpired:
		return ErrPaymentWindowExpired
	case !w.session.TimerStarted:
		return ErrPaymentNotStarted
	}

	if w.timer != nil {
		w.timer.Stop()
	}
	w.gen++
	gen := w.gen

	ctx, cancel := context.WithCancel(w.ctx)
	w.cancelProcessing = cancel
	w.session.Processing = true
	w.session.Progress = 0

	w.running.Add(1)
	go func() {
		defer w.running.Done()
		w.process(ctx, gen)
	}()
	return nil
}

func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	switch w.step {
	case domain.StepCourseSelection:
		w.step = domain.StepPersonalInfo
	case domain.StepPayment:
		if w.session.Processing {
			return ErrProcessing
		}
		w.cancelScheduledLocked()
		w.session = domain.PaymentSession{UserID: w.session.UserID}
		w.notice = ""
		w.step = domain.StepCourseSelection
	case domain.StepConfirmation:
		return ErrRegistrationComplete
	default:
		return ErrNoPreviousStep
	}
	return nil
}

// StartOver discards everything, including an issued receipt, and begins a
// new registration under a new user id.
func (w *Wizard) StartOver() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	w.cancelScheduledLocked()
	w.draft = domain.RegistrationDraft{}
	w.session = domain.PaymentSession{UserID: w.ids.UserID()}
	w.receipt = nil
	w.notice = ""
	w.step = domain.StepPersonalInfo
	return nil
}

func (w *Wizard) Receipt() (domain.Receipt, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.receipt == nil {
		return domain.Receipt{}, ErrReceiptNotReady
	}
	return *w.receipt, nil
}

func (w *Wizard) State() domain.WizardState {
	w.mu.Lock()
	defer w.mu.Unlock()

	state := domain.WizardState{
		Step:      w.step,
		Draft:     w.draft,
		Payment:   w.session,
		Remaining: w.cfg.PaymentWindow,
		Urgency:   string(countdown.TierComfortable),
		Notice:    w.notice,
	}
	if w.timer != nil {
		state.Remaining = w.timer.Remaining()
		state.Urgency = string(w.timer.Tier())
	}
	state.Countdown = countdown.Format(state.Remaining)
	if w.receipt != nil {
		receipt := *w.receipt
		state.Receipt = &receipt
	}
	return state
}

// Close cancels every timer. The wizard refuses further changes.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.cancelScheduledLocked()
	w.closed = true
	w.cancel()
}

// Shutdown closes the wizard and waits until in-flight processing, a
// running completion hook included, has returned or ctx is done.
func (w *Wizard) Shutdown(ctx context.Context) error {
	w.Close()

	done := make(chan struct{})
	go func() {
		w.running.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("registration %s still processing: %w", w.UserID(), ctx.Err())
	}
}

func (w *Wizard) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

func (w *Wizard) requireStepLocked(step domain.Step) error {
	switch {
	case w.closed:
		return ErrClosed
	case w.step == step:
		return nil
	case w.step == domain.StepConfirmation:
		return ErrRegistrationComplete
	default:
		return ErrWrongStep
	}
}

func (w *Wizard) belongsLocked(sel domain.Selection, categoryID string) bool {
	switch s := sel.(type) {
	case domain.CourseOffering:
		course, err := w.catalog.FindCourse(s.CourseID)
		return err == nil && course.CategoryID == categoryID
	case domain.BundleOffering:
		return s.CategoryID == categoryID
	default:
		return false
	}
}

func (w *Wizard) cancelScheduledLocked() {
	w.gen++
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	if w.cancelProcessing != nil {
		w.cancelProcessing()
		w.cancelProcessing = nil
	}
	w.session.Processing = false
}

func (w *Wizard) expire(gen uint64) {
	w.mu.Lock()
	if gen != w.gen || w.closed || w.step != domain.StepPayment || w.timer == nil || !w.timer.Expired() {
		w.mu.Unlock()
		return
	}
	w.session.TimerStarted = false
	w.session.TimerExpired = true
	w.notice = NoticeWindowClosed
	userID := w.session.UserID
	onExpire := w.onExpire
	w.mu.Unlock()

	zap.L().Info("payment window closed", zap.String("user_id", userID))
	if onExpire != nil {
		onExpire()
	}
}
