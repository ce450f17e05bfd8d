package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/helpdesk-br/chamados-api/internal/auth"
	"github.com/helpdesk-br/chamados-api/internal/config"
	"github.com/helpdesk-br/chamados-api/internal/domain"
	"github.com/helpdesk-br/chamados-api/internal/events"
	"github.com/helpdesk-br/chamados-api/internal/repository"
)

const listCacheTTL = 30 * time.Second

// ListCache caches call listings. Implementations must degrade silently, a
// cache fault is never a request fault.
type ListCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

// CallService opens and lists support calls.
type CallService struct {
	repos      map[domain.CallVariant]repository.CallRepository
	tokenMgr   *auth.TokenManager
	cache      ListCache
	dispatcher events.Dispatcher
	now        func() time.Time
}

// CallDependencies encapsulates collaborators for the call service.
type CallDependencies struct {
	Repos      map[domain.CallVariant]repository.CallRepository
	Cache      ListCache
	Dispatcher events.Dispatcher
}

// NewCallService builds the service.
func NewCallService(cfg config.Config, deps CallDependencies) *CallService {
	return &CallService{
		repos:      deps.Repos,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// OpenCall persists a new call stamped with a deadline seven calendar days
// after creation and issues a token scoped to the created call.
func (s *CallService) OpenCall(ctx context.Context, variant domain.CallVariant, name, email, sector, description string) (*domain.Call, string, time.Time, error) {
	repo, err := s.repoFor(variant)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	createdAt := s.now()
	call := &domain.Call{
		Name:        name,
		Email:       email,
		Sector:      sector,
		Description: description,
		CreatedAt:   createdAt,
		Deadline:    domain.DeadlineFor(createdAt),
	}
	if err := repo.Create(ctx, call); err != nil {
		return nil, "", time.Time{}, err
	}

	s.invalidate(ctx, variant)

	token, exp, err := s.tokenMgr.GenerateToken(call.ID, domain.SubjectTypeCall)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publishCreated(ctx, variant, call)

	return call, token, exp, nil
}

// ListCalls returns every persisted call for the variant. Listings are
// served through a short-lived cache when one is configured; order is
// whatever the store returns.
func (s *CallService) ListCalls(ctx context.Context, variant domain.CallVariant) ([]domain.Call, error) {
	repo, err := s.repoFor(variant)
	if err != nil {
		return nil, err
	}

	key := cacheKey(variant)
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var cached []domain.Call
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	calls, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(calls); err == nil {
			s.cache.Set(ctx, key, raw, listCacheTTL)
		}
	}
	return calls, nil
}

func (s *CallService) repoFor(variant domain.CallVariant) (repository.CallRepository, error) {
	repo, ok := s.repos[variant]
	if !ok {
		return nil, fmt.Errorf("unknown call variant %q", variant)
	}
	return repo, nil
}

func (s *CallService) invalidate(ctx context.Context, variant domain.CallVariant) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(ctx, cacheKey(variant))
}

func (s *CallService) publishCreated(ctx context.Context, variant domain.CallVariant, call *domain.Call) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventCallCreated,
		SubjectID: call.ID,
		Timestamp: call.CreatedAt,
		Payload: events.CallCreatedPayload{
			Variant:  variant,
			Sector:   call.Sector,
			Deadline: call.Deadline,
		},
	})
}

func cacheKey(variant domain.CallVariant) string {
	return "calls:" + string(variant)
}
