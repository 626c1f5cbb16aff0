package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"voyager-gear/internal/domain"
	"voyager-gear/internal/repository"
	"voyager-gear/internal/security"

	"go.uber.org/zap"
)

const TokenTypeBearer = "bearer"

// AccountService defines the interface for registration and login
type AccountService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

// LoginResult is an issued access token with the user it belongs to.
type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // seconds
	User        *domain.User
}

type AccountOptions struct {
	PasswordMinLength int
	TokenTTL          time.Duration
}

type accountService struct {
	users  repository.UserRepository
	hasher *security.PasswordHasher
	tokens *security.TokenManager
	opts   AccountOptions
	logger *zap.Logger
}

// NewAccountService creates a new instance of AccountService
func NewAccountService(
	users repository.UserRepository,
	hasher *security.PasswordHasher,
	tokens *security.TokenManager,
	opts AccountOptions,
	logger *zap.Logger,
) AccountService {
	return &accountService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		opts:   opts,
		logger: logger,
	}
}

// Register checks the password policy, then username and email uniqueness
// in that order, and stores an active, unverified account.
func (s *accountService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if err := security.ValidatePasswordStrength(password, s.opts.PasswordMinLength); err != nil {
		return nil, err
	}

	if err := s.ensureAvailable(ctx, s.users.FindByUsername, username, repository.ErrDuplicateUsername); err != nil {
		return nil, err
	}
	if err := s.ensureAvailable(ctx, s.users.FindByEmail, email, repository.ErrDuplicateEmail); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:       username,
		Email:          email,
		HashedPassword: hashed,
		IsActive:       true,
		IsVerified:     false,
	}

	// The unique constraints still decide when two registrations race.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) || errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}

func (s *accountService) ensureAvailable(
	ctx context.Context,
	find func(context.Context, string) (*domain.User, error),
	value string,
	taken error,
) error {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return taken
	case errors.Is(err, repository.ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("failed to check existing user: %w", err)
	}
}

// Login accepts a username or an email as identifier. Unknown users, wrong
// passwords and inactive accounts all fail with ErrInvalidCredentials.
func (s *accountService) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	user, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.HashedPassword)
	if err != nil {
		s.logger.Warn("Stored password hash is unreadable", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if !ok || !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(strconv.FormatInt(user.ID, 10), s.opts.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	return &LoginResult{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		ExpiresIn:   int64(s.opts.TokenTTL.Seconds()),
		User:        user,
	}, nil
}

func (s *accountService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
