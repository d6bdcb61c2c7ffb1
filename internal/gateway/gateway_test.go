package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfetisov/storefront/internal/domain"
)

func testCart() domain.Cart {
	return domain.Cart{
		ID:     "cart-1",
		UserID: "user-1",
		Items: []domain.CartLine{
			{CartItemID: "ci-1", ProductID: "p-1", ProductName: "Mug", UnitPrice: 12.5, Quantity: 2, Subtotal: 25},
		},
		TotalPrice: 25,
	}
}

func TestFetchCart_Success(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(testCart())
	}))
	defer srv.Close()

	gw := NewCartClient(srv.URL, srv.Client(), StaticTokenSource("tok-123"))
	cart, err := gw.FetchCart(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "/api/v1/carts/user-1", gotPath)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "cart-1", cart.ID)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 25.0, cart.TotalPrice)
}

func TestFetchCart_NoToken(t *testing.T) {
	gw := NewCartClient("http://localhost:0", nil, StaticTokenSource(""))
	_, err := gw.FetchCart(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestFetchCart_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	gw := NewCartClient(srv.URL, srv.Client(), StaticTokenSource("expired"))
	_, err := gw.FetchCart(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestFetchCart_ServerErrorWithJSONMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "cart storage unavailable"})
	}))
	defer srv.Close()

	gw := NewCartClient(srv.URL, srv.Client(), StaticTokenSource("tok"))
	_, err := gw.FetchCart(context.Background(), "user-1")

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusInternalServerError, serverErr.StatusCode)
	assert.Equal(t, "cart storage unavailable", serverErr.Message)
}

func TestFetchCart_ServerErrorPlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	gw := NewCartClient(srv.URL, srv.Client(), StaticTokenSource("tok"))
	_, err := gw.FetchCart(context.Background(), "user-1")

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), serverErr.Message)
}

func TestFetchCart_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	gw := NewCartClient(srv.URL, nil, StaticTokenSource("tok"))
	_, err := gw.FetchCart(context.Background(), "user-1")

	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestAddLine_SendsBodyAndMethod(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody addLineRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(testCart())
	}))
	defer srv.Close()

	gw := NewCartClient(srv.URL, srv.Client(), StaticTokenSource("tok"))
	cart, err := gw.AddLine(context.Background(), "user-1", "p-9", 3)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/v1/carts/user-1/items", gotPath)
	assert.Equal(t, addLineRequest{ProductID: "p-9", Quantity: 3}, gotBody)
	assert.NotNil(t, cart)
}

func TestAddLine_RejectsNonPositiveQuantity(t *testing.T) {
	gw := NewCartClient("http://localhost:0", nil, StaticTokenSource("tok"))
	_, err := gw.AddLine(context.Background(), "user-1", "p-1", 0)
	assert.Error(t, err)
}

func TestUpdateLine_RejectsQuantityBelowOne(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	gw := NewCartClient(srv.URL, srv.Client(), StaticTokenSource("tok"))
	err := gw.UpdateLine(context.Background(), "ci-1", 0)

	assert.Error(t, err)
	assert.False(t, called, "gateway must not reach the network with quantity < 1")
}

func TestRemoveLine_UsesDelete(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	gw := NewCartClient(srv.URL, srv.Client(), StaticTokenSource("tok"))
	err := gw.RemoveLine(context.Background(), "ci-7")

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v1/carts/items/ci-7", gotPath)
}

func TestClearCart_UsesCartID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	gw := NewCartClient(srv.URL, srv.Client(), StaticTokenSource("tok"))
	require.NoError(t, gw.ClearCart(context.Background(), "cart-42"))
	assert.Equal(t, "/api/v1/carts/cart-42/clear", gotPath)
}

func TestPlaceOrder_SendsIdempotencyKey(t *testing.T) {
	var gotKey string
	var gotBody placeOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(domain.Order{ID: "ord-1", Status: domain.OrderStatusPending, TotalAmount: 53.2})
	}))
	defer srv.Close()

	gw := NewOrderClient(srv.URL, srv.Client(), StaticTokenSource("tok"))
	order, err := gw.PlaceOrder(context.Background(), "addr-1", "idem-abc")

	require.NoError(t, err)
	assert.Equal(t, "idem-abc", gotKey)
	assert.Equal(t, "addr-1", gotBody.ShippingAddressID)
	assert.Equal(t, "ord-1", order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
}

func TestPlaceOrder_FailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "cart changed"})
	}))
	defer srv.Close()

	gw := NewOrderClient(srv.URL, srv.Client(), StaticTokenSource("tok"))
	_, err := gw.PlaceOrder(context.Background(), "addr-1", "idem-abc")

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "cart changed", serverErr.Message)
}

func TestFetchOrder_ReadPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders/ord-5", r.URL.Path)
		json.NewEncoder(w).Encode(domain.Order{ID: "ord-5", Status: domain.OrderStatusShipped})
	}))
	defer srv.Close()

	gw := NewOrderClient(srv.URL, srv.Client(), StaticTokenSource("tok"))
	order, err := gw.FetchOrder(context.Background(), "ord-5")

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, order.Status)
}

func TestContextTokenSource(t *testing.T) {
	src := ContextTokenSource{}

	_, err := src.Token(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	ctx := WithToken(context.Background(), "passed-through")
	tok, err := src.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "passed-through", tok)
}

func TestErrorsAreDistinguishable(t *testing.T) {
	var netErr *NetworkError
	var serverErr *ServerError

	err := error(&NetworkError{Op: "GET /x", Err: errors.New("refused")})
	assert.ErrorAs(t, err, &netErr)
	assert.False(t, errors.As(err, &serverErr))
}
