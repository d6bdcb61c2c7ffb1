package httpapi

import (
	"context"
	"sync"

	"github.com/mfetisov/storefront/internal/cartops"
	"github.com/mfetisov/storefront/internal/cartstore"
	"github.com/mfetisov/storefront/internal/checkout"
	"github.com/mfetisov/storefront/internal/domain"
	"github.com/mfetisov/storefront/internal/receipt"
)

// CartGateway is everything the session layer needs from the cart client.
type CartGateway interface {
	FetchCart(ctx context.Context, userID string) (*domain.Cart, error)
	AddLine(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error)
	UpdateLine(ctx context.Context, cartItemID string, quantity int) error
	RemoveLine(ctx context.Context, cartItemID string) error
	ClearCart(ctx context.Context, cartID string) error
}

// ReceiptStoreFactory builds the per-session last-order slot.
type ReceiptStoreFactory func(scope string) receipt.Store

// Session bundles the per-user engine: one cart store, one operations
// facade, one receipt slot and at most one in-progress checkout.
type Session struct {
	Store    *cartstore.Store
	Ops      *cartops.Facade
	Receipts receipt.Store

	mu       sync.Mutex
	checkout *checkout.Orchestrator
}

// Checkout returns the in-progress orchestrator, or nil.
func (s *Session) Checkout() *checkout.Orchestrator {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout
}

func (s *Session) SetCheckout(o *checkout.Orchestrator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkout = o
}

// Sessions is the application-session registry: one Session per bound user,
// created lazily on first request.
type Sessions struct {
	carts    CartGateway
	receipts ReceiptStoreFactory

	mu     sync.Mutex
	byUser map[string]*Session
}

func NewSessions(carts CartGateway, receipts ReceiptStoreFactory) *Sessions {
	return &Sessions{
		carts:    carts,
		receipts: receipts,
		byUser:   make(map[string]*Session),
	}
}

// For returns the user's session, creating and binding it on first use.
func (s *Sessions) For(uid string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.byUser[uid]; ok {
		return sess
	}
	store := cartstore.New(s.carts)
	store.Bind(uid)
	sess := &Session{
		Store:    store,
		Ops:      cartops.New(s.carts, store),
		Receipts: s.receipts(uid),
	}
	s.byUser[uid] = sess
	return sess
}
