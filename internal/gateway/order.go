package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mfetisov/storefront/internal/domain"
)

// OrderClient talks to the order service. Orders are created from the user's
// current server-side cart; the client only sends the shipping address id.
type OrderClient struct {
	c *client
}

func NewOrderClient(baseURL string, httpClient *http.Client, tokens TokenSource) *OrderClient {
	return &OrderClient{c: newClient(baseURL, httpClient, tokens)}
}

type placeOrderRequest struct {
	ShippingAddressID string `json:"shippingAddressId"`
}

// PlaceOrder creates an order from the caller's current cart. idempotencyKey
// is a client-generated token letting the server deduplicate retried
// placements after a transient failure.
func (g *OrderClient) PlaceOrder(ctx context.Context, shippingAddressID, idempotencyKey string) (*domain.Order, error) {
	headers := http.Header{}
	if idempotencyKey != "" {
		headers.Set("Idempotency-Key", idempotencyKey)
	}
	var order domain.Order
	body := placeOrderRequest{ShippingAddressID: shippingAddressID}
	if err := g.c.do(ctx, http.MethodPost, "/api/v1/orders", body, &order, headers); err != nil {
		return nil, err
	}
	return &order, nil
}

func (g *OrderClient) FetchMyOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := g.c.do(ctx, http.MethodGet, "/api/v1/orders", nil, &orders, nil); err != nil {
		return nil, err
	}
	return orders, nil
}

func (g *OrderClient) FetchOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	if err := g.c.do(ctx, http.MethodGet, "/api/v1/orders/"+url.PathEscape(orderID), nil, &order, nil); err != nil {
		return nil, err
	}
	return &order, nil
}
