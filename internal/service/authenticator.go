package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"voyager-gear/internal/domain"
	"voyager-gear/internal/repository"
	"voyager-gear/internal/security"
)

const bearerPrefix = "Bearer "

// Authenticator resolves an Authorization header to the user it names.
type Authenticator interface {
	Authenticate(ctx context.Context, authorizationHeader string) (*domain.User, error)
}

type authenticator struct {
	tokens *security.TokenManager
	users  repository.UserRepository
}

func NewAuthenticator(tokens *security.TokenManager, users repository.UserRepository) Authenticator {
	return &authenticator{tokens: tokens, users: users}
}

// Authenticate fails with ErrUnauthenticated for a missing, malformed or
// invalid bearer token, repository.ErrUserNotFound when the subject no
// longer exists and ErrAccountInactive for a deactivated account.
func (a *authenticator) Authenticate(ctx context.Context, authorizationHeader string) (*domain.User, error) {
	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return nil, ErrUnauthenticated
	}

	claims, err := a.tokens.Decode(strings.TrimPrefix(authorizationHeader, bearerPrefix))
	if err != nil {
		return nil, ErrUnauthenticated
	}

	if claims.Subject == "" {
		return nil, ErrUnauthenticated
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := a.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve token subject: %w", err)
	}

	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	return user, nil
}
