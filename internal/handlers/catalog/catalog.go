package catalog

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/elaccess/internal/catalog"
	"github.com/GlebRadaev/elaccess/internal/domain"
	"github.com/GlebRadaev/elaccess/internal/dto"
	"github.com/GlebRadaev/elaccess/pkg/utils"
)

//go:generate mockgen -destination=mock_service.go -source=catalog.go -package=catalog
type Service interface {
	Categories() []domain.Category
	FindCategory(id string) (domain.Category, error)
	FindCourse(id string) (domain.Course, error)
	CoursesInCategory(categoryID string) []domain.Course
	BankAccounts() []domain.BankAccount
}

var paymentMethods = []domain.PaymentMethod{
	domain.PaymentBankTransfer,
	domain.PaymentBankDeposit,
	domain.PaymentMobileBanking,
	domain.PaymentUSSD,
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListCategories godoc
//
//	@Summary		List course categories
//	@Description	Every category with its bundle price and courses
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}	dto.CategoryDTO
//	@Router			/api/catalog/categories [get]
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.catalogService.Categories()
	response := make([]dto.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		response = append(response, h.toCategoryDTO(category))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetCategory godoc
//
//	@Summary		Get a course category
//	@Tags			Catalog
//	@Produce		json
//	@Param			categoryID	path		string	true	"Category id"	example(python)
//	@Success		200			{object}	dto.CategoryDTO
//	@Failure		404			{object}	utils.Response	"Category not found"
//	@Router			/api/catalog/categories/{categoryID} [get]
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.catalogService.FindCategory(chi.URLParam(r, "categoryID"))
	if err != nil {
		respondWithLookupError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toCategoryDTO(category))
}

// GetCourse godoc
//
//	@Summary		Get course details
//	@Description	The course, its category and the other courses of the same category
//	@Tags			Catalog
//	@Produce		json
//	@Param			courseID	path		string	true	"Course id"	example(python-basics)
//	@Success		200			{object}	dto.CourseDetailsDTO
//	@Failure		404			{object}	utils.Response	"Course not found"
//	@Router			/api/catalog/courses/{courseID} [get]
func (h *CatalogHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := h.catalogService.FindCourse(chi.URLParam(r, "courseID"))
	if err != nil {
		respondWithLookupError(w, err)
		return
	}
	category, err := h.catalogService.FindCategory(course.CategoryID)
	if err != nil {
		respondWithLookupError(w, err)
		return
	}

	related := make([]dto.CourseDTO, 0)
	for _, c := range h.catalogService.CoursesInCategory(course.CategoryID) {
		if c.ID != course.ID {
			related = append(related, toCourseDTO(c))
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CourseDetailsDTO{
		Course:   toCourseDTO(course),
		Category: category.Name,
		Related:  related,
	})
}

// GetPaymentAccounts godoc
//
//	@Summary		Payment details
//	@Description	Bank accounts to transfer the fee to, and the accepted payment methods
//	@Tags			Payment
//	@Produce		json
//	@Success		200	{object}	dto.PaymentAccountsDTO
//	@Router			/api/payment/accounts [get]
func (h *CatalogHandler) GetPaymentAccounts(w http.ResponseWriter, r *http.Request) {
	accounts := h.catalogService.BankAccounts()
	response := dto.PaymentAccountsDTO{
		Accounts: make([]dto.BankAccountDTO, 0, len(accounts)),
		Methods:  make([]dto.PaymentMethodDTO, 0, len(paymentMethods)),
	}
	for _, a := range accounts {
		response.Accounts = append(response.Accounts, dto.BankAccountDTO{Bank: a.Bank, Number: a.Number, Name: a.Name})
	}
	for _, m := range paymentMethods {
		response.Methods = append(response.Methods, dto.PaymentMethodDTO{ID: string(m), Label: m.Label()})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *CatalogHandler) toCategoryDTO(category domain.Category) dto.CategoryDTO {
	courses := h.catalogService.CoursesInCategory(category.ID)
	out := dto.CategoryDTO{
		ID:              category.ID,
		Name:            category.Name,
		Description:     category.Description,
		BundleName:      catalog.BundleName(category),
		BundlePrice:     category.BundlePrice.String(),
		BundlePriceKobo: category.BundlePrice.Kobo(),
		Courses:         make([]dto.CourseDTO, 0, len(courses)),
	}
	for _, c := range courses {
		out.Courses = append(out.Courses, toCourseDTO(c))
	}
	return out
}

func toCourseDTO(c domain.Course) dto.CourseDTO {
	return dto.CourseDTO{
		ID:         c.ID,
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Price:      c.Price.String(),
		PriceKobo:  c.Price.Kobo(),
	}
}

func respondWithLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrCategoryNotFound), errors.Is(err, catalog.ErrCourseNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
