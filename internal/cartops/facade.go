// Package cartops wraps the cart gateway and the local store behind the
// write-then-resync discipline: every mutation is followed by an
// unconditional refetch, so the store always reflects server truth after a
// mutation attempt, successful or not.
package cartops

import (
	"context"

	"github.com/mfetisov/storefront/internal/cartstore"
	"github.com/mfetisov/storefront/internal/domain"
)

// CartGateway is the mutation surface of the cart REST boundary.
type CartGateway interface {
	AddLine(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error)
	UpdateLine(ctx context.Context, cartItemID string, quantity int) error
	RemoveLine(ctx context.Context, cartItemID string) error
	ClearCart(ctx context.Context, cartID string) error
}

type Facade struct {
	gateway CartGateway
	store   *cartstore.Store
}

func New(gateway CartGateway, store *cartstore.Store) *Facade {
	return &Facade{gateway: gateway, store: store}
}

// resync runs after every mutation. The mutation's own error wins; a resync
// failure only surfaces when the mutation itself succeeded, and in either
// case the store keeps its last known good snapshot.
func (f *Facade) resync(ctx context.Context, opErr error) error {
	refetchErr := f.store.Refetch(ctx)
	if opErr != nil {
		return opErr
	}
	return refetchErr
}

func (f *Facade) Add(ctx context.Context, productID string, quantity int) error {
	_, err := f.gateway.AddLine(ctx, f.store.BoundUser(), productID, quantity)
	return f.resync(ctx, err)
}

// UpdateQuantity changes a line's quantity. Decrement-to-zero routes to
// removal here: the gateway contract requires quantity >= 1, and this rule
// belongs to the facade, not the server.
func (f *Facade) UpdateQuantity(ctx context.Context, cartItemID string, quantity int) error {
	if quantity <= 0 {
		return f.Remove(ctx, cartItemID)
	}
	err := f.gateway.UpdateLine(ctx, cartItemID, quantity)
	return f.resync(ctx, err)
}

func (f *Facade) Remove(ctx context.Context, cartItemID string) error {
	err := f.gateway.RemoveLine(ctx, cartItemID)
	return f.resync(ctx, err)
}

// Clear empties the bound user's cart. Without a local snapshot there is no
// cart id to clear, so the call degrades to a refetch.
func (f *Facade) Clear(ctx context.Context) error {
	cart := f.store.Current()
	if cart == nil {
		return f.store.Refetch(ctx)
	}
	err := f.gateway.ClearCart(ctx, cart.ID)
	return f.resync(ctx, err)
}

func (f *Facade) ItemCount() int {
	return f.store.ItemCount()
}
