package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mfetisov/storefront/internal/domain"
)

// CartClient talks to the cart REST boundary at /api/v1/carts. It is a pure
// I/O layer: no caching, no retries, no local state.
type CartClient struct {
	c *client
}

func NewCartClient(baseURL string, httpClient *http.Client, tokens TokenSource) *CartClient {
	return &CartClient{c: newClient(baseURL, httpClient, tokens)}
}

type addLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type updateLineRequest struct {
	Quantity int `json:"quantity"`
}

func (g *CartClient) FetchCart(ctx context.Context, userID string) (*domain.Cart, error) {
	if userID == "" {
		return nil, fmt.Errorf("fetch cart: user id is empty")
	}
	var cart domain.Cart
	if err := g.c.do(ctx, http.MethodGet, "/api/v1/carts/"+url.PathEscape(userID), nil, &cart, nil); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddLine adds quantity of a product to the user's cart. The server merges
// into an existing line for the same product, so the caller never needs to
// check for duplicates first.
func (g *CartClient) AddLine(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("add line: quantity must be positive, got %d", quantity)
	}
	var cart domain.Cart
	path := "/api/v1/carts/" + url.PathEscape(userID) + "/items"
	body := addLineRequest{ProductID: productID, Quantity: quantity}
	if err := g.c.do(ctx, http.MethodPost, path, body, &cart, nil); err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateLine sets an existing line's quantity. Quantity must be >= 1; routing
// a decrement-to-zero to RemoveLine is the facade's job, not ours.
func (g *CartClient) UpdateLine(ctx context.Context, cartItemID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("update line: quantity must be >= 1, got %d", quantity)
	}
	path := "/api/v1/carts/items/" + url.PathEscape(cartItemID)
	return g.c.do(ctx, http.MethodPatch, path, updateLineRequest{Quantity: quantity}, nil, nil)
}

func (g *CartClient) RemoveLine(ctx context.Context, cartItemID string) error {
	path := "/api/v1/carts/items/" + url.PathEscape(cartItemID)
	return g.c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// ClearCart removes every line. Idempotent server-side.
func (g *CartClient) ClearCart(ctx context.Context, cartID string) error {
	path := "/api/v1/carts/" + url.PathEscape(cartID) + "/clear"
	return g.c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
