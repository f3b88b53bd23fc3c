package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/elaccess/internal/domain"
	"github.com/GlebRadaev/elaccess/internal/dto"
	"github.com/GlebRadaev/elaccess/internal/service/contactservice"
	"github.com/GlebRadaev/elaccess/pkg/utils"
)

const Acknowledgement = "Thank you for reaching out! We'll get back to you soon."

//go:generate mockgen -destination=mock_service.go -source=contact.go -package=contact
type Service interface {
	Send(ctx context.Context, msg domain.ContactMessage) (*domain.ContactMessage, error)
}

type ContactHandler struct {
	contactService Service
}

func New(contactService Service) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// SendMessage godoc
//
//	@Summary		Send a contact form message
//	@Tags			Contact
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ContactRequestDTO	true	"Message to the team"
//	@Success		202		{object}	dto.ContactResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		422		{object}	utils.Response	"A required field is missing"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/contact [post]
func (h *ContactHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, err := h.contactService.Send(r.Context(), domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, contactservice.ErrInvalidMessage) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.ContactResponseDTO{ID: msg.ID, Message: Acknowledgement})
}
