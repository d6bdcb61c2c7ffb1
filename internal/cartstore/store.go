// Package cartstore holds the last-fetched cart snapshot for one user
// session. It is the single local view of the cart: the gateways do I/O, the
// facade mutates, the store remembers.
package cartstore

import (
	"context"
	"sync"

	"github.com/mfetisov/storefront/internal/domain"
)

// CartFetcher is the slice of the cart gateway the store needs.
type CartFetcher interface {
	FetchCart(ctx context.Context, userID string) (*domain.Cart, error)
}

// Store is constructed once per session and passed by handle to consumers.
// The mutex exists because the HTTP surface can read while a refetch is in
// flight; there is no coordination across sessions, the server stays the sole
// consistency authority.
type Store struct {
	fetch CartFetcher

	mu      sync.RWMutex
	userID  string
	current *domain.Cart
	subs    []chan struct{}
}

func New(fetch CartFetcher) *Store {
	return &Store{fetch: fetch}
}

// Bind associates the store with the active user. It deliberately does not
// refetch: callers decide when to pay for the round-trip. Rebinding is only
// expected at login/logout boundaries.
func (s *Store) Bind(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
}

func (s *Store) BoundUser() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Refetch replaces the snapshot with the server's view. Unbound stores no-op.
// On failure the previous snapshot is kept: stale-but-available beats an
// erroneous "cart is empty" flash.
func (s *Store) Refetch(ctx context.Context) error {
	s.mu.RLock()
	userID := s.userID
	s.mu.RUnlock()
	if userID == "" {
		return nil
	}

	cart, err := s.fetch.FetchCart(ctx, userID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = cart
	s.mu.Unlock()
	s.notify()
	return nil
}

// ClearLocally resets the snapshot to an empty cart without a network
// round-trip. Used right after order placement so no still-mounted view shows
// a ghost full cart while the authoritative clear is in flight.
func (s *Store) ClearLocally() {
	s.mu.Lock()
	if s.current != nil {
		s.current = &domain.Cart{
			ID:     s.current.ID,
			UserID: s.current.UserID,
			Items:  []domain.CartLine{},
		}
	}
	s.mu.Unlock()
	s.notify()
}

// Current returns a deep copy of the snapshot, or nil before the first
// successful refetch.
func (s *Store) Current() *domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// ItemCount is derived on every read, never stored.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.ItemCount()
}

// Subscribe returns a channel that receives a signal after every snapshot
// change, plus a cancel func. Signals are best-effort: a slow consumer misses
// intermediate updates, never blocks the store.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub == ch {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
	return ch, cancel
}

func (s *Store) notify() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
