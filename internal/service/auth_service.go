package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/helpdesk-br/chamados-api/internal/auth"
	"github.com/helpdesk-br/chamados-api/internal/config"
	"github.com/helpdesk-br/chamados-api/internal/domain"
	"github.com/helpdesk-br/chamados-api/internal/events"
	"github.com/helpdesk-br/chamados-api/internal/repository"
	apperrors "github.com/helpdesk-br/chamados-api/pkg/util/errorutil"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account and issues a token for it. The password is
// hashed before it ever reaches the store; the stored unique index on email
// settles races between concurrent registrations.
func (s *AuthService) Register(ctx context.Context, name, email, password, sector string) (*domain.User, string, time.Time, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewUserExists()
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Sector:       sector,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", time.Time{}, apperrors.NewUserExists()
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, domain.SubjectTypeUser)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserRegistered,
		SubjectID: user.ID,
		Timestamp: time.Now(),
		Payload:   events.UserRegisteredPayload{Email: user.Email, Sector: user.Sector},
	})

	return user, token, exp, nil
}

// Login authenticates an account. Unknown email and wrong password both map
// to the same invalid-credentials error, so callers cannot tell which field
// was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, domain.SubjectTypeUser)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// TokenManager exposes the underlying token manager.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
