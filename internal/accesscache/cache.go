package accesscache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fleetgrid/backoffice/internal/adapter"
	"github.com/fleetgrid/backoffice/internal/domain"
	"github.com/fleetgrid/backoffice/internal/logger"
	"github.com/fleetgrid/backoffice/internal/store"
)

type cacheEntry struct {
	access    []domain.CompanyAccess
	expiresAt time.Time
}

// Service caches per-user company access with a TTL in front of the
// permissions store. Entries expire lazily on read; permission writes go
// through this service so the affected user's entry is always invalidated.
type Service struct {
	store store.Store
	clock adapter.Clock
	ttl   time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// New creates an access cache service. A zero ttl falls back to the default.
func New(s store.Store, clock adapter.Clock, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = domain.DEFAULT_ACCESS_CACHE_TTL
	}
	return &Service{
		store:   s,
		clock:   clock,
		ttl:     ttl,
		entries: map[string]cacheEntry{},
	}
}

// Get returns the user's company access, served from cache when the entry is
// still fresh. An expired or missing entry triggers a store read; store
// failure is returned to the caller rather than served stale. Callers get
// their own copy of the slice so the cached entry stays immutable.
func (s *Service) Get(ctx context.Context, userID string) ([]domain.CompanyAccess, error) {
	now := s.clock.Now()

	s.mu.RLock()
	entry, ok := s.entries[userID]
	s.mu.RUnlock()
	if ok && now.Before(entry.expiresAt) {
		return copyAccess(entry.access), nil
	}

	access, err := s.store.GetUserCompanyPermissions(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entries[userID] = cacheEntry{
		access:    access,
		expiresAt: now.Add(s.ttl),
	}
	s.mu.Unlock()

	return copyAccess(access), nil
}

func copyAccess(access []domain.CompanyAccess) []domain.CompanyAccess {
	out := make([]domain.CompanyAccess, len(access))
	copy(out, access)
	return out
}

// Invalidate drops a single user's cached access
func (s *Service) Invalidate(userID string) {
	s.mu.Lock()
	delete(s.entries, userID)
	s.mu.Unlock()
}

// InvalidateAll drops every cached entry
func (s *Service) InvalidateAll() {
	s.mu.Lock()
	s.entries = map[string]cacheEntry{}
	s.mu.Unlock()
}

// Len returns the number of cached entries, expired ones included
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Grant grants a user access to one company and invalidates their cache entry
func (s *Service) Grant(ctx context.Context, input store.GrantCompanyAccessInput) error {
	if err := s.store.GrantCompanyAccess(ctx, input); err != nil {
		return err
	}
	s.Invalidate(input.UserID)
	logger.InfoCtx(ctx, "company access granted",
		zap.String("userID", input.UserID),
		zap.String("companyID", input.CompanyID))
	return nil
}

// Revoke removes a user's access to one company and invalidates their cache entry
func (s *Service) Revoke(ctx context.Context, userID, companyID string) error {
	if err := s.store.RevokeCompanyAccess(ctx, userID, companyID); err != nil {
		return err
	}
	s.Invalidate(userID)
	logger.InfoCtx(ctx, "company access revoked",
		zap.String("userID", userID),
		zap.String("companyID", companyID))
	return nil
}

// BulkAssign replaces all of a user's grants and invalidates their cache entry
func (s *Service) BulkAssign(ctx context.Context, userID string, grants []store.GrantCompanyAccessInput) error {
	if err := s.store.SetUserCompanyAccess(ctx, userID, grants); err != nil {
		return err
	}
	s.Invalidate(userID)
	logger.InfoCtx(ctx, "company access replaced",
		zap.String("userID", userID),
		zap.Int("grantCount", len(grants)))
	return nil
}
