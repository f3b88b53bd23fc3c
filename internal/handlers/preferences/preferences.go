package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/elaccess/internal/domain"
	"github.com/GlebRadaev/elaccess/internal/dto"
	"github.com/GlebRadaev/elaccess/internal/service/preferenceservice"
	"github.com/GlebRadaev/elaccess/pkg/utils"
)

const (
	VisitorCookie     = "el_visitor"
	ColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

	visitorCookieTTL = 365 * 24 * time.Hour
)

//go:generate mockgen -destination=mock_service.go -source=preferences.go -package=preferences
type Service interface {
	Init(ctx context.Context, visitorID string, prefersDark bool) (*domain.Preference, error)
	Update(ctx context.Context, visitorID string, darkMode bool) (*domain.Preference, error)
}

type PreferenceHandler struct {
	preferenceService Service
}

func New(preferenceService Service) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceService: preferenceService,
	}
}

// GetPreferences godoc
//
//	@Summary		Get the theme preference
//	@Description	Stored dark mode choice of the visitor, or the browser color scheme when none is stored
//	@Tags			Preferences
//	@Produce		json
//	@Param			Sec-CH-Prefers-Color-Scheme	header		string	false	"Browser color scheme"	Enums(light, dark)
//	@Success		200							{object}	dto.PreferenceDTO
//	@Failure		400							{object}	utils.Response	"Invalid visitor id"
//	@Failure		500							{object}	utils.Response	"Internal server error"
//	@Router			/api/preferences [get]
func (h *PreferenceHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	visitorID := visitor(w, r)
	prefersDark := strings.EqualFold(strings.Trim(r.Header.Get(ColorSchemeHeader), `"`), "dark")

	pref, err := h.preferenceService.Init(r.Context(), visitorID, prefersDark)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PreferenceDTO{DarkMode: pref.DarkMode})
}

// UpdatePreferences godoc
//
//	@Summary		Save the theme preference
//	@Tags			Preferences
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdatePreferenceRequestDTO	true	"Dark mode on or off"
//	@Success		200		{object}	dto.PreferenceDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/preferences [put]
func (h *PreferenceHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePreferenceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DarkMode == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pref, err := h.preferenceService.Update(r.Context(), visitor(w, r), *req.DarkMode)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PreferenceDTO{DarkMode: pref.DarkMode})
}

// visitor returns the visitor id from the cookie, issuing a new one when
// the request carries none.
func visitor(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(VisitorCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookie,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(visitorCookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, preferenceservice.ErrInvalidVisitor) {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
