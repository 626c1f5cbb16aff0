package transport

import (
	"net/http"
	"net/url"
	"strconv"

	"voyager-gear/internal/domain"
	"voyager-gear/internal/middleware"
	"voyager-gear/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductHandler serves the read-only catalog
type ProductHandler struct {
	catalog service.CatalogService
	logger  *zap.Logger
}

func NewProductHandler(catalog service.CatalogService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger,
	}
}

func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/categories", h.Categories)
		r.Get("/{id}", h.Get)
	})
}

// List handles GET /products with filters and pagination
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query, problems := parseProductQuery(r.URL.Query())
	if len(problems) > 0 {
		middleware.RespondWithValidationErrors(w, problems)
		return
	}

	page, err := h.catalog.ListProducts(r.Context(), query)
	if err != nil {
		respondWithServiceError(w, r, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, page)
}

// Get handles GET /products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Categories handles GET /products/categories
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.catalog.Categories(r.Context())
	if err != nil {
		respondWithServiceError(w, r, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, summaries)
}

// parseProductQuery reads the listing parameters. Absent values are left
// zero for the service defaults; malformed ones are reported per field.
func parseProductQuery(values url.Values) (service.ProductQuery, []middleware.ValidationError) {
	var (
		query    service.ProductQuery
		problems []middleware.ValidationError
	)

	intParam := func(name string, lo, hi int) int {
		raw := values.Get(name)
		if raw == "" {
			return 0
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < lo || (hi > 0 && n > hi) {
			message := "Value must be an integer greater than or equal to " + strconv.Itoa(lo)
			if hi > 0 {
				message = "Value must be an integer between " + strconv.Itoa(lo) + " and " + strconv.Itoa(hi)
			}
			problems = append(problems, middleware.ValidationError{Field: name, Message: message})
			return 0
		}
		return n
	}

	priceParam := func(name string) *decimal.Decimal {
		raw := values.Get(name)
		if raw == "" {
			return nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil || d.IsNegative() {
			problems = append(problems, middleware.ValidationError{
				Field:   name,
				Message: "Value must be a number greater than or equal to 0",
			})
			return nil
		}
		return &d
	}

	query.Page = intParam("page", 1, 0)
	query.PageSize = intParam("page_size", 1, service.MaxPageSize)
	query.MinPrice = priceParam("min_price")
	query.MaxPrice = priceParam("max_price")
	query.Search = values.Get("search")
	query.SortBy = values.Get("sort_by")
	query.SortOrder = values.Get("sort_order")

	// Category is an exact match; an unknown one simply matches nothing.
	if raw := values.Get("category"); raw != "" {
		category := domain.ProductCategory(raw)
		query.Category = &category
	}

	return query, problems
}
