package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/deskflow/helpdesk/internal/auth"
	"github.com/deskflow/helpdesk/internal/config"
	"github.com/deskflow/helpdesk/internal/domain"
	"github.com/deskflow/helpdesk/internal/repository"
	apperrors "github.com/deskflow/helpdesk/pkg/util"
)

// AuthService coordinates the login flow. Tokens are stateless: there
// is no session table and validity is entirely signature plus expiry.
type AuthService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLHours),
	}
}

// Authenticate verifies (email, role, password) and returns the user
// with a signed token. Role is part of the lookup key, so an email
// cannot log in under a role it was not provisioned with. The two
// failure kinds carry distinct messages but the same 401 outcome.
func (s *AuthService) Authenticate(ctx context.Context, email string, role domain.Role, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmailAndRole(ctx, email, role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", apperrors.NewUnauthorized(fmt.Sprintf("No %s found with this email address.", role))
		}
		return nil, "", err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", apperrors.NewUnauthorized("Invalid password. Please try again.")
	}

	token, _, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ListUsers returns every account. Password hashes never serialize.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// TokenManager exposes the manager for the auth middleware.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
