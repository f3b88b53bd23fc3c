package registration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/elaccess/internal/catalog"
	"github.com/GlebRadaev/elaccess/internal/domain"
	"github.com/GlebRadaev/elaccess/internal/dto"
	"github.com/GlebRadaev/elaccess/internal/receipt"
	"github.com/GlebRadaev/elaccess/internal/service/registrationservice"
	"github.com/GlebRadaev/elaccess/internal/wizard"
	"github.com/GlebRadaev/elaccess/pkg/auth"
	"github.com/GlebRadaev/elaccess/pkg/utils"
)

//go:generate mockgen -destination=mock_service.go -source=registration.go -package=registration
type Service interface {
	Create(ctx context.Context) (*registrationservice.Session, error)
	State(ctx context.Context, sessionID string) (domain.WizardState, error)
	SubmitPersonalInfo(ctx context.Context, sessionID string, info domain.PersonalInfo) (domain.WizardState, error)
	SelectCategory(ctx context.Context, sessionID, categoryID string) (domain.WizardState, error)
	SelectOffering(ctx context.Context, sessionID string, sel domain.Selection) (domain.WizardState, error)
	ContinueToPayment(ctx context.Context, sessionID string) (domain.WizardState, error)
	Back(ctx context.Context, sessionID string) (domain.WizardState, error)
	ChoosePaymentMethod(ctx context.Context, sessionID string, method domain.PaymentMethod) (domain.WizardState, error)
	StartPayment(ctx context.Context, sessionID string) (domain.WizardState, error)
	Submit(ctx context.Context, sessionID string) (domain.WizardState, error)
	StartOver(ctx context.Context, sessionID string) (domain.WizardState, error)
	Receipt(ctx context.Context, sessionID string) (domain.Receipt, error)
	Abandon(ctx context.Context, sessionID string) error
}

type RegistrationHandler struct {
	registrationService Service
}

func New(registrationService Service) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
	}
}

// Create godoc
//
//	@Summary		Start a registration
//	@Description	Open a registration session. The bearer token in the Authorization header gives access to it.
//	@Tags			Registration
//	@Produce		json
//	@Success		201	{object}	dto.CreateRegistrationResponseDTO
//	@Header			201	{string}	Authorization	"Bearer token of the session"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/registrations [post]
func (h *RegistrationHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.registrationService.Create(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Authorization", "Bearer "+session.Token)
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateRegistrationResponseDTO{
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
		State:     toStateDTO(session.State),
	})
}

// GetState godoc
//
//	@Summary		Get the registration
//	@Description	Current step, form data, payment countdown and progress, and the receipt once issued
//	@Tags			Registration
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RegistrationStateDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Registration not found"
//	@Router			/api/registration [get]
func (h *RegistrationHandler) GetState(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.registrationService.State)
}

// SubmitPersonalInfo godoc
//
//	@Summary		Submit personal information
//	@Tags			Registration
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.PersonalInfoDTO	true	"Student details"
//	@Success		200		{object}	dto.RegistrationStateDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Registration not found"
//	@Failure		409		{object}	utils.Response	"Not allowed at the current step"
//	@Failure		422		{object}	utils.Response	"Missing or invalid field"
//	@Router			/api/registration/personal [post]
func (h *RegistrationHandler) SubmitPersonalInfo(w http.ResponseWriter, r *http.Request) {
	var req dto.PersonalInfoDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	info := domain.PersonalInfo{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	}
	h.respond(w, r, func(ctx context.Context, id string) (domain.WizardState, error) {
		return h.registrationService.SubmitPersonalInfo(ctx, id, info)
	})
}

// SelectCategory godoc
//
//	@Summary		Select a course category
//	@Tags			Registration
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CategoryRequestDTO	true	"Category"
//	@Success		200		{object}	dto.RegistrationStateDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Category not found"
//	@Failure		409		{object}	utils.Response	"Not allowed at the current step"
//	@Router			/api/registration/category [post]
func (h *RegistrationHandler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.respond(w, r, func(ctx context.Context, id string) (domain.WizardState, error) {
		return h.registrationService.SelectCategory(ctx, id, req.CategoryID)
	})
}

// SelectOffering godoc
//
//	@Summary		Select a course or the category bundle
//	@Tags			Registration
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.OfferingDTO	true	"Course or bundle"
//	@Success		200		{object}	dto.RegistrationStateDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Course not found"
//	@Failure		409		{object}	utils.Response	"Not allowed at the current step"
//	@Failure		422		{object}	utils.Response	"Course outside the selected category"
//	@Router			/api/registration/offering [post]
func (h *RegistrationHandler) SelectOffering(w http.ResponseWriter, r *http.Request) {
	var req dto.OfferingDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	sel := toSelection(req)
	h.respond(w, r, func(ctx context.Context, id string) (domain.WizardState, error) {
		return h.registrationService.SelectOffering(ctx, id, sel)
	})
}

// ContinueToPayment godoc
//
//	@Summary		Proceed to payment
//	@Tags			Registration
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RegistrationStateDTO
//	@Failure		409	{object}	utils.Response	"Not allowed at the current step"
//	@Failure		422	{object}	utils.Response	"Category or course missing"
//	@Router			/api/registration/continue [post]
func (h *RegistrationHandler) ContinueToPayment(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.registrationService.ContinueToPayment)
}

// Back godoc
//
//	@Summary		Go back one step
//	@Tags			Registration
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RegistrationStateDTO
//	@Failure		409	{object}	utils.Response	"No previous step, payment processing or registration completed"
//	@Router			/api/registration/back [post]
func (h *RegistrationHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.registrationService.Back)
}

// ChoosePaymentMethod godoc
//
//	@Summary		Choose the payment method used
//	@Tags			Payment
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.PaymentMethodRequestDTO	true	"Payment method"
//	@Success		200		{object}	dto.RegistrationStateDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Not allowed at the current step"
//	@Failure		422		{object}	utils.Response	"Unknown payment method"
//	@Router			/api/registration/payment/method [post]
func (h *RegistrationHandler) ChoosePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentMethodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.respond(w, r, func(ctx context.Context, id string) (domain.WizardState, error) {
		return h.registrationService.ChoosePaymentMethod(ctx, id, domain.PaymentMethod(req.Method))
	})
}

// StartPayment godoc
//
//	@Summary		Start the payment countdown
//	@Description	Opens the payment window. After it has closed, opens a new one.
//	@Tags			Payment
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RegistrationStateDTO
//	@Failure		409	{object}	utils.Response	"Not allowed at the current step"
//	@Router			/api/registration/payment/start [post]
func (h *RegistrationHandler) StartPayment(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.registrationService.StartPayment)
}

// Submit godoc
//
//	@Summary		Confirm the payment was made
//	@Description	Stops the countdown and starts processing. Poll the registration for progress and the receipt.
//	@Tags			Payment
//	@Produce		json
//	@Security		BearerAuth
//	@Success		202	{object}	dto.RegistrationStateDTO
//	@Failure		409	{object}	utils.Response	"Already processing or not at the payment step"
//	@Failure		422	{object}	utils.Response	"Payment method missing, countdown not started or expired"
//	@Router			/api/registration/payment/submit [post]
func (h *RegistrationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	state, err := h.registrationService.Submit(r.Context(), auth.SessionID(r.Context()))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, toStateDTO(state))
}

// StartOver godoc
//
//	@Summary		Start over
//	@Description	Discards the registration, including an issued receipt, and starts again with a new student id
//	@Tags			Registration
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RegistrationStateDTO
//	@Failure		404	{object}	utils.Response	"Registration not found"
//	@Router			/api/registration/restart [post]
func (h *RegistrationHandler) StartOver(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.registrationService.StartOver)
}

// Abandon godoc
//
//	@Summary		Leave the registration
//	@Tags			Registration
//	@Security		BearerAuth
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Registration not found"
//	@Router			/api/registration [delete]
func (h *RegistrationHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	if err := h.registrationService.Abandon(r.Context(), auth.SessionID(r.Context())); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetReceipt godoc
//
//	@Summary		Get the receipt
//	@Tags			Receipt
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	receipt.View
//	@Failure		404	{object}	utils.Response	"Receipt not ready"
//	@Router			/api/registration/receipt [get]
func (h *RegistrationHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	rec, err := h.registrationService.Receipt(r.Context(), auth.SessionID(r.Context()))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, receipt.Render(rec))
}

// PrintReceipt godoc
//
//	@Summary		Printable receipt
//	@Description	A standalone HTML page that opens the print dialog once loaded
//	@Tags			Receipt
//	@Produce		html
//	@Security		BearerAuth
//	@Success		200	{string}	string			"HTML document"
//	@Failure		404	{object}	utils.Response	"Receipt not ready"
//	@Router			/api/registration/receipt/print [get]
func (h *RegistrationHandler) PrintReceipt(w http.ResponseWriter, r *http.Request) {
	rec, err := h.registrationService.Receipt(r.Context(), auth.SessionID(r.Context()))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := receipt.Print(&buf, rec); err != nil {
		zap.L().Error("can't print receipt", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *RegistrationHandler) respond(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, sessionID string) (domain.WizardState, error)) {
	state, err := op(r.Context(), auth.SessionID(r.Context()))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toStateDTO(state))
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registrationservice.ErrSessionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Registration not found")
	case errors.Is(err, catalog.ErrCategoryNotFound),
		errors.Is(err, catalog.ErrCourseNotFound),
		errors.Is(err, wizard.ErrReceiptNotReady):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, wizard.ErrInvalidInput):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, wizard.ErrWrongStep),
		errors.Is(err, wizard.ErrNoPreviousStep),
		errors.Is(err, wizard.ErrProcessing),
		errors.Is(err, wizard.ErrRegistrationComplete),
		errors.Is(err, wizard.ErrClosed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		zap.L().Error("registration request failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toSelection(req dto.OfferingDTO) domain.Selection {
	switch req.Type {
	case dto.OfferingCourse:
		return domain.CourseOffering{CourseID: req.ID}
	case dto.OfferingBundle:
		return domain.BundleOffering{CategoryID: req.ID}
	default:
		return nil
	}
}

func toStateDTO(s domain.WizardState) dto.RegistrationStateDTO {
	state := dto.RegistrationStateDTO{
		Step: string(s.Step),
		PersonalInfo: dto.PersonalInfoDTO{
			FullName: s.Draft.FullName,
			Email:    s.Draft.Email,
			Phone:    s.Draft.Phone,
			Address:  s.Draft.Address,
		},
		CategoryID: s.Draft.CategoryID,
		Payment: dto.PaymentDTO{
			UserID:           s.Payment.UserID,
			Method:           string(s.Draft.PaymentMethod),
			TimerStarted:     s.Payment.TimerStarted,
			TimerExpired:     s.Payment.TimerExpired,
			Processing:       s.Payment.Processing,
			Progress:         s.Payment.Progress,
			RemainingSeconds: int(s.Remaining / time.Second),
			Countdown:        s.Countdown,
			Urgency:          s.Urgency,
		},
		Notice: s.Notice,
	}

	switch sel := s.Draft.Selection.(type) {
	case domain.CourseOffering:
		state.Offering = &dto.OfferingDTO{Type: dto.OfferingCourse, ID: sel.CourseID}
	case domain.BundleOffering:
		state.Offering = &dto.OfferingDTO{Type: dto.OfferingBundle, ID: sel.CategoryID}
	}
	if s.Receipt != nil {
		view := receipt.Render(*s.Receipt)
		state.Receipt = &view
	}
	return state
}
