package middleware

import (
	"context"
	"errors"
	"net/http"

	"voyager-gear/internal/domain"
	"voyager-gear/internal/repository"
	"voyager-gear/internal/service"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type contextKey string

const userKey contextKey = "user"

// AuthMiddleware resolves the bearer token to a user and stores it in the
// request context. Requests that fail the gate never reach next.
func AuthMiddleware(authenticator service.Authenticator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := authenticator.Authenticate(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				switch {
				case errors.Is(err, service.ErrUnauthenticated):
					logger.Debug("Unauthenticated request", zap.String("path", r.URL.Path))
					w.Header().Set("WWW-Authenticate", "Bearer")
					RespondWithError(w, http.StatusUnauthorized, err.Error())
				case errors.Is(err, service.ErrAccountInactive):
					RespondWithError(w, http.StatusUnauthorized, err.Error())
				case errors.Is(err, repository.ErrUserNotFound):
					RespondWithError(w, http.StatusNotFound, "user not found")
				default:
					logger.Error("Authentication failed",
						zap.String("request_id", middleware.GetReqID(r.Context())),
						zap.Error(err),
					)
					RespondWithError(w, http.StatusInternalServerError, "internal server error")
				}
				return
			}

			logger.Debug("User authenticated", zap.Int64("user_id", user.ID))
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the user stored by AuthMiddleware
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok && user != nil
}
