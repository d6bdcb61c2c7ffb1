// Package receipt persists the last-order snapshot between order placement
// and confirmation rendering. One fixed slot per session, overwritten on each
// new order, no history.
package receipt

import (
	"context"
	"errors"

	"github.com/mfetisov/storefront/internal/domain"
)

// ErrNoReceipt means no order has been placed in this session (or the slot
// expired). The confirmation renderer degrades instead of failing.
var ErrNoReceipt = errors.New("no receipt snapshot stored")

// Store is the keyed last-order slot: Put overwrites, Get reads back.
type Store interface {
	Put(ctx context.Context, r *domain.Receipt) error
	Get(ctx context.Context) (*domain.Receipt, error)
}

// MemoryStore keeps the snapshot in process memory. Suitable for tests and
// single-process sessions that do not need to survive a restart.
type MemoryStore struct {
	receipt *domain.Receipt
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Put(_ context.Context, r *domain.Receipt) error {
	cp := *r
	cp.Items = append([]domain.CartLine(nil), r.Items...)
	s.receipt = &cp
	return nil
}

func (s *MemoryStore) Get(_ context.Context) (*domain.Receipt, error) {
	if s.receipt == nil {
		return nil, ErrNoReceipt
	}
	cp := *s.receipt
	cp.Items = append([]domain.CartLine(nil), s.receipt.Items...)
	return &cp, nil
}
