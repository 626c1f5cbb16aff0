package transport

import (
	"errors"
	"net/http"

	"voyager-gear/internal/middleware"
	"voyager-gear/internal/repository"
	"voyager-gear/internal/security"
	"voyager-gear/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// decodeRequest decodes and validates the body into v and writes the 400
// response itself when that fails.
func decodeRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := middleware.DecodeAndValidate(r, v)
	if err == nil {
		return true
	}
	if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
		middleware.RespondWithValidationErrors(w, validationErrors)
		return false
	}
	middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
	return false
}

// respondWithServiceError maps a service or repository error onto its HTTP
// status. Anything unrecognised is logged and reported as a 500.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	var stockErr *repository.InsufficientStockError
	var policyErr *security.PasswordPolicyError

	switch {
	case errors.As(err, &stockErr):
		middleware.RespondWithErrorDetails(w, http.StatusBadRequest, stockErr.Error(), map[string]interface{}{
			"product_id": stockErr.ProductID,
			"requested":  stockErr.Requested,
			"available":  stockErr.Available,
		})
	case errors.As(err, &policyErr):
		middleware.RespondWithError(w, http.StatusBadRequest, policyErr.Reason)
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrMissingGuestEmail):
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnauthenticated):
		w.Header().Set("WWW-Authenticate", "Bearer")
		middleware.RespondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrAccountInactive):
		middleware.RespondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, repository.ErrDuplicateUsername):
		middleware.RespondWithError(w, http.StatusConflict, "username already registered")
	case errors.Is(err, repository.ErrDuplicateEmail):
		middleware.RespondWithError(w, http.StatusConflict, "email already registered")
	case errors.Is(err, repository.ErrUserNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, repository.ErrProductNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
	case errors.Is(err, repository.ErrOrderNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "order not found")
	default:
		logger.Error("Request failed",
			zap.String("request_id", chimiddleware.GetReqID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
