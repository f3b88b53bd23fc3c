package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/elaccess/docs"
	cataloghandlers "github.com/GlebRadaev/elaccess/internal/handlers/catalog"
	contacthandlers "github.com/GlebRadaev/elaccess/internal/handlers/contact"
	preferencehandlers "github.com/GlebRadaev/elaccess/internal/handlers/preferences"
	registrationhandlers "github.com/GlebRadaev/elaccess/internal/handlers/registration"
	"github.com/GlebRadaev/elaccess/internal/service"
	"github.com/GlebRadaev/elaccess/pkg/auth"
)

//go:generate mockgen -destination=mock_handlers.go -source=handlers.go -package=handlers
type CatalogHandler interface {
	ListCategories(w http.ResponseWriter, r *http.Request)
	GetCategory(w http.ResponseWriter, r *http.Request)
	GetCourse(w http.ResponseWriter, r *http.Request)
	GetPaymentAccounts(w http.ResponseWriter, r *http.Request)
}

type RegistrationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetState(w http.ResponseWriter, r *http.Request)
	SubmitPersonalInfo(w http.ResponseWriter, r *http.Request)
	SelectCategory(w http.ResponseWriter, r *http.Request)
	SelectOffering(w http.ResponseWriter, r *http.Request)
	ContinueToPayment(w http.ResponseWriter, r *http.Request)
	Back(w http.ResponseWriter, r *http.Request)
	ChoosePaymentMethod(w http.ResponseWriter, r *http.Request)
	StartPayment(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	StartOver(w http.ResponseWriter, r *http.Request)
	Abandon(w http.ResponseWriter, r *http.Request)
	GetReceipt(w http.ResponseWriter, r *http.Request)
	PrintReceipt(w http.ResponseWriter, r *http.Request)
}

type PreferenceHandler interface {
	GetPreferences(w http.ResponseWriter, r *http.Request)
	UpdatePreferences(w http.ResponseWriter, r *http.Request)
}

type ContactHandler interface {
	SendMessage(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	CatalogHandler      CatalogHandler
	ContactHandler      ContactHandler
	RegistrationHandler RegistrationHandler
	PreferenceHandler   PreferenceHandler
	Tokens              auth.TokenService
}

func New(s *service.Services, tokens auth.TokenService) *Handlers {
	return &Handlers{
		CatalogHandler:      cataloghandlers.New(s.CatalogService),
		ContactHandler:      contacthandlers.New(s.ContactService),
		RegistrationHandler: registrationhandlers.New(s.RegistrationService),
		PreferenceHandler:   preferencehandlers.New(s.PreferenceService),
		Tokens:              tokens,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/categories", h.CatalogHandler.ListCategories)
			r.Get("/categories/{categoryID}", h.CatalogHandler.GetCategory)
			r.Get("/courses/{courseID}", h.CatalogHandler.GetCourse)
		})
		r.Get("/payment/accounts", h.CatalogHandler.GetPaymentAccounts)
		r.Post("/contact", h.ContactHandler.SendMessage)

		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", h.PreferenceHandler.GetPreferences)
			r.Put("/", h.PreferenceHandler.UpdatePreferences)
		})

		r.Post("/registrations", h.RegistrationHandler.Create)
		r.Group(func(r chi.Router) {
			r.Use(auth.SessionMiddleware(h.Tokens))
			r.Route("/registration", func(r chi.Router) {
				r.Get("/", h.RegistrationHandler.GetState)
				r.Delete("/", h.RegistrationHandler.Abandon)
				r.Post("/personal", h.RegistrationHandler.SubmitPersonalInfo)
				r.Post("/category", h.RegistrationHandler.SelectCategory)
				r.Post("/offering", h.RegistrationHandler.SelectOffering)
				r.Post("/continue", h.RegistrationHandler.ContinueToPayment)
				r.Post("/back", h.RegistrationHandler.Back)
				r.Post("/restart", h.RegistrationHandler.StartOver)
				r.Route("/payment", func(r chi.Router) {
					r.Post("/method", h.RegistrationHandler.ChoosePaymentMethod)
					r.Post("/start", h.RegistrationHandler.StartPayment)
					r.Post("/submit", h.RegistrationHandler.Submit)
				})
				r.Get("/receipt", h.RegistrationHandler.GetReceipt)
				r.Get("/receipt/print", h.RegistrationHandler.PrintReceipt)
			})
		})
	})

	return r
}
