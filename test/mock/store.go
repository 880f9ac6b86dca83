package mock

import (
	"context"
	"sync"
	"time"

	"github.com/gp-senegal/smart-search/internal/domain"
)

// Store wraps a real domain.AdStore with configurable fault injection.
// It lets integration tests exercise store failure and slow-query paths
// against an otherwise fully functional store.
type Store struct {
	inner     domain.AdStore
	err       error
	delay     time.Duration
	callCount int
	filters   []domain.AdFilter
	mu        sync.Mutex
}

// NewStore wraps the given store.
func NewStore(inner domain.AdStore) *Store {
	return &Store{inner: inner}
}

// WithError configures the store to fail every query with the given error.
func (s *Store) WithError(err error) *Store {
	s.err = err
	return s
}

// WithDelay configures the store to wait before answering each query.
func (s *Store) WithDelay(d time.Duration) *Store {
	s.delay = d
	return s
}

// FindAds implements domain.AdStore.FindAds with the configured faults
// applied, recording every filter it receives.
func (s *Store) FindAds(ctx context.Context, filter domain.AdFilter) ([]domain.Ad, error) {
	s.mu.Lock()
	s.callCount++
	s.filters = append(s.filters, filter)
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	if s.err != nil {
		return nil, s.err
	}

	return s.inner.FindAds(ctx, filter)
}

// CallCount returns how many queries the store received.
func (s *Store) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Filters returns a copy of every filter the store received, in order.
func (s *Store) Filters() []domain.AdFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AdFilter, len(s.filters))
	copy(out, s.filters)
	return out
}

// Ensure Store implements domain.AdStore at compile time.
var _ domain.AdStore = (*Store)(nil)
