package receipt

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfetisov/storefront/internal/domain"
)

func sampleReceipt(orderID string) *domain.Receipt {
	return &domain.Receipt{
		OrderID:  orderID,
		PlacedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		Items: []domain.CartLine{
			{CartItemID: "ci-1", ProductID: "p-1", ProductName: "Mug", Quantity: 2, UnitPrice: 20, Subtotal: 40},
		},
		Address:        domain.Address{ID: "addr-1", RecipientName: "Ada Lovelace", City: "London"},
		ShippingMethod: domain.ShippingMethod{ID: "standard", Name: "Standard", Days: "3-5 days"},
		PaymentMethod:  domain.PaymentMethodCashOnDelivery,
		Pricing:        domain.Breakdown{Subtotal: 40, Shipping: 10, Tax: 3.2, Total: 53.2},
	}
}

func TestMemoryStore_GetBeforePut(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, ErrNoReceipt)
}

func TestMemoryStore_PutOverwrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, sampleReceipt("ord-1")))
	require.NoError(t, store.Put(ctx, sampleReceipt("ord-2")))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ord-2", got.OrderID, "the slot holds only the last order")
}

func TestMemoryStore_ReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, sampleReceipt("ord-1")))

	first, err := store.Get(ctx)
	require.NoError(t, err)
	first.Items[0].Quantity = 99

	second, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Items[0].Quantity)
}

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisStore(rdb, "user-1")
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	want := sampleReceipt("ord-7")
	require.NoError(t, store.Put(ctx, want))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRedisStore_MissingSlot(t *testing.T) {
	store := newRedisStore(t)
	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, ErrNoReceipt)
}

func TestRedisStore_Overwrite(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, sampleReceipt("ord-1")))
	require.NoError(t, store.Put(ctx, sampleReceipt("ord-2")))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ord-2", got.OrderID)
}

func TestRedisStore_ScopedPerSession(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	ctx := context.Background()

	alice := NewRedisStore(rdb, "alice")
	bob := NewRedisStore(rdb, "bob")

	require.NoError(t, alice.Put(ctx, sampleReceipt("ord-a")))

	_, err := bob.Get(ctx)
	assert.ErrorIs(t, err, ErrNoReceipt)
}
