package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/helpdesk-br/chamados-api/internal/domain"
	"github.com/helpdesk-br/chamados-api/internal/events"
	"github.com/helpdesk-br/chamados-api/internal/repository"
)

type fakeCallRepo struct {
	mu        sync.Mutex
	calls     []domain.Call
	seq       int
	listCount int
	createErr error
}

func (f *fakeCallRepo) Create(_ context.Context, call *domain.Call) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.seq++
	call.ID = fmt.Sprintf("call-%d", f.seq)
	f.calls = append(f.calls, *call)
	return nil
}

func (f *fakeCallRepo) List(_ context.Context) ([]domain.Call, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCount++
	return append([]domain.Call{}, f.calls...), nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	val, ok := f.entries[key]
	return val, ok
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = value
}

func (f *fakeCache) Delete(_ context.Context, key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func newCallFixture() (*CallService, *fakeCallRepo, *fakeCache, *recordingDispatcher) {
	tiRepo := &fakeCallRepo{}
	cache := newFakeCache()
	dispatcher := &recordingDispatcher{}
	svc := NewCallService(testConfig(), CallDependencies{
		Repos: map[domain.CallVariant]repository.CallRepository{
			domain.CallVariantTI:         tiRepo,
			domain.CallVariantManutencao: &fakeCallRepo{},
		},
		Cache:      cache,
		Dispatcher: dispatcher,
	})
	return svc, tiRepo, cache, dispatcher
}

func TestCallService_OpenCall_DeadlineSevenCalendarDays(t *testing.T) {
	svc, repo, _, _ := newCallFixture()
	createdAt := time.Date(2024, 3, 8, 12, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return createdAt }

	call, token, _, err := svc.OpenCall(context.Background(), domain.CallVariantTI, "Bob", "b@x.com", "Fin", "printer broken")
	require.NoError(t, err)
	require.Equal(t, "call-1", call.ID)
	require.True(t, call.CreatedAt.Equal(createdAt))
	require.True(t, call.Deadline.Equal(createdAt.AddDate(0, 0, 7)))
	require.NotEmpty(t, token)

	claims, err := svc.tokenMgr.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, call.ID, claims.SubjectID)
	require.Equal(t, domain.SubjectTypeCall, claims.Subject)

	require.Len(t, repo.calls, 1)
	require.Equal(t, "printer broken", repo.calls[0].Description)
}

func TestCallService_OpenCall_PublishesEvent(t *testing.T) {
	svc, _, _, dispatcher := newCallFixture()

	call, _, _, err := svc.OpenCall(context.Background(), domain.CallVariantTI, "Bob", "b@x.com", "Fin", "printer broken")
	require.NoError(t, err)

	require.Len(t, dispatcher.events, 1)
	event := dispatcher.events[0]
	require.Equal(t, events.EventCallCreated, event.Type)
	require.Equal(t, call.ID, event.SubjectID)
	payload, ok := event.Payload.(events.CallCreatedPayload)
	require.True(t, ok)
	require.Equal(t, domain.CallVariantTI, payload.Variant)
}

func TestCallService_OpenCall_UnknownVariant(t *testing.T) {
	svc, _, _, _ := newCallFixture()

	_, _, _, err := svc.OpenCall(context.Background(), domain.CallVariant("rh"), "Bob", "b@x.com", "Fin", "x")
	require.Error(t, err)
}

func TestCallService_ListCalls_CachesAndInvalidates(t *testing.T) {
	svc, repo, _, _ := newCallFixture()
	ctx := context.Background()

	_, _, _, err := svc.OpenCall(ctx, domain.CallVariantTI, "Bob", "b@x.com", "Fin", "printer broken")
	require.NoError(t, err)

	first, err := svc.ListCalls(ctx, domain.CallVariantTI)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Equal(t, 1, repo.listCount)

	// second read is served from cache
	second, err := svc.ListCalls(ctx, domain.CallVariantTI)
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.Equal(t, 1, repo.listCount)

	// opening a call invalidates, forcing a fresh read
	_, _, _, err = svc.OpenCall(ctx, domain.CallVariantTI, "Ana", "ana@x.com", "TI", "no network")
	require.NoError(t, err)

	third, err := svc.ListCalls(ctx, domain.CallVariantTI)
	require.NoError(t, err)
	require.Len(t, third, 2)
	require.Equal(t, 2, repo.listCount)
}

func TestCallService_ListCalls_NoCacheConfigured(t *testing.T) {
	repo := &fakeCallRepo{}
	svc := NewCallService(testConfig(), CallDependencies{
		Repos: map[domain.CallVariant]repository.CallRepository{
			domain.CallVariantManutencao: repo,
		},
	})
	ctx := context.Background()

	_, _, _, err := svc.OpenCall(ctx, domain.CallVariantManutencao, "Bob", "b@x.com", "Fin", "broken door")
	require.NoError(t, err)

	calls, err := svc.ListCalls(ctx, domain.CallVariantManutencao)
	require.NoError(t, err)
	require.Len(t, calls, 1)
}

func TestCallService_VariantsAreIsolated(t *testing.T) {
	svc, _, _, _ := newCallFixture()
	ctx := context.Background()

	_, _, _, err := svc.OpenCall(ctx, domain.CallVariantTI, "Bob", "b@x.com", "Fin", "printer broken")
	require.NoError(t, err)

	manutencao, err := svc.ListCalls(ctx, domain.CallVariantManutencao)
	require.NoError(t, err)
	require.Empty(t, manutencao)
}
