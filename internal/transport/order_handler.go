package transport

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"voyager-gear/internal/domain"
	"voyager-gear/internal/middleware"
	"voyager-gear/internal/repository"
	"voyager-gear/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderHandler handles order placement and lookup
type OrderHandler struct {
	orders service.OrderService
	logger *zap.Logger
}

func NewOrderHandler(orders service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		logger: logger,
	}
}

// RegisterRoutes mounts /orders. Guest routes are public; the rest require
// authMiddleware.
func (h *OrderHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/guest", h.CreateGuest)
		r.Get("/guest/{id}", h.GetGuest)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/", h.Create)
			r.Get("/", h.List)
			r.Get("/{id}", h.Get)
		})
	})
}

// Create places an order for the authenticated user
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithServiceError(w, r, h.logger, service.ErrUnauthenticated)
		return
	}
	h.create(w, r, user)
}

// CreateGuest places an order without an account
func (h *OrderHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, nil)
}

func (h *OrderHandler) create(w http.ResponseWriter, r *http.Request, buyer *domain.User) {
	input := domain.NewOrderInput()
	if !decodeRequest(w, r, &input) {
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), input, buyer)
	if err != nil {
		// An unknown product inside an order is a bad request, not a missing resource.
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondWithServiceError(w, r, h.logger, err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, order)
}

// List returns the authenticated user's orders, newest first
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithServiceError(w, r, h.logger, service.ErrUnauthenticated)
		return
	}

	orders, err := h.orders.ListForUser(r.Context(), user.ID)
	if err != nil {
		respondWithServiceError(w, r, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, orders)
}

// Get returns one of the authenticated user's orders
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithServiceError(w, r, h.logger, service.ErrUnauthenticated)
		return
	}

	id, ok := orderID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.GetForUser(r.Context(), id, user.ID)
	if err != nil {
		respondWithServiceError(w, r, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, order)
}

// GetGuest returns a guest order when the email query parameter matches
func (h *OrderHandler) GetGuest(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		middleware.RespondWithValidationErrors(w, []middleware.ValidationError{
			{Field: "email", Message: "This field is required"},
		})
		return
	}

	order, err := h.orders.GetGuestOrder(r.Context(), id, email)
	if err != nil {
		respondWithServiceError(w, r, h.logger, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, order)
}

func orderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return 0, false
	}
	return id, true
}
