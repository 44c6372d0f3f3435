package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emorozco/podesk/internal/domain/order"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func mustCreate(t *testing.T, store *Store, number, supplier string, status order.Status, amount string, currency order.Currency) *order.PurchaseOrder {
	t.Helper()
	date, err := order.ParseDate("2025-06-01")
	require.NoError(t, err)

	created, err := store.CreateOrder(order.PurchaseOrder{
		OrderNumber:          number,
		SupplierName:         supplier,
		Status:               status,
		TotalAmount:          decimal.RequireFromString(amount),
		Currency:             currency,
		ExpectedDeliveryDate: date,
	})
	require.NoError(t, err)
	return created
}

func TestCreateAndGetOrder(t *testing.T) {
	store := newTestStore(t)

	created := mustCreate(t, store, "OC-1", "Acme", order.StatusDraft, "10.50", order.CurrencyUSD)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := store.GetOrder(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "OC-1", got.OrderNumber)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("10.50")))
	assert.Equal(t, "2025-06-01", got.ExpectedDeliveryDate.String())
}

func TestGetOrderMissing(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetOrder(12345)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreateOrderDuplicateNumber(t *testing.T) {
	store := newTestStore(t)
	mustCreate(t, store, "OC-1", "Acme", order.StatusDraft, "10", order.CurrencyUSD)

	date, _ := order.ParseDate("2025-06-01")
	_, err := store.CreateOrder(order.PurchaseOrder{
		OrderNumber:          "OC-1",
		SupplierName:         "Other",
		Status:               order.StatusDraft,
		TotalAmount:          decimal.NewFromInt(1),
		Currency:             order.CurrencyUSD,
		ExpectedDeliveryDate: date,
	})
	assert.ErrorIs(t, err, ErrDuplicateOrderNumber)
}

func TestListOrdersFilters(t *testing.T) {
	store := newTestStore(t)
	mustCreate(t, store, "OC-1", "Acme Corp", order.StatusDraft, "50", order.CurrencyUSD)
	mustCreate(t, store, "OC-2", "Globex", order.StatusApproved, "150", order.CurrencyUSD)
	mustCreate(t, store, "OC-3", "Initech", order.StatusApproved, "300", order.CurrencyEUR)

	t.Run("no filters returns everything in insertion order", func(t *testing.T) {
		orders, err := store.ListOrders(Filters{})
		require.NoError(t, err)
		require.Len(t, orders, 3)
		assert.Equal(t, "OC-1", orders[0].OrderNumber)
		assert.Equal(t, "OC-3", orders[2].OrderNumber)
	})

	t.Run("search is case-insensitive over number and supplier", func(t *testing.T) {
		orders, err := store.ListOrders(Filters{Search: "acme"})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "OC-1", orders[0].OrderNumber)

		orders, err = store.ListOrders(Filters{Search: "oc-"})
		require.NoError(t, err)
		assert.Len(t, orders, 3)
	})

	t.Run("status and currency are equality filters", func(t *testing.T) {
		orders, err := store.ListOrders(Filters{Status: order.StatusApproved})
		require.NoError(t, err)
		assert.Len(t, orders, 2)

		orders, err = store.ListOrders(Filters{Status: order.StatusApproved, Currency: order.CurrencyEUR})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "OC-3", orders[0].OrderNumber)
	})

	t.Run("amount bounds are inclusive", func(t *testing.T) {
		min := decimal.NewFromInt(150)
		orders, err := store.ListOrders(Filters{MinTotal: &min})
		require.NoError(t, err)
		assert.Len(t, orders, 2)

		max := decimal.NewFromInt(150)
		orders, err = store.ListOrders(Filters{MaxTotal: &max})
		require.NoError(t, err)
		assert.Len(t, orders, 2)

		both := decimal.NewFromInt(150)
		orders, err = store.ListOrders(Filters{MinTotal: &both, MaxTotal: &both})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "OC-2", orders[0].OrderNumber)
	})

	t.Run("created-at bounds", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		orders, err := store.ListOrders(Filters{From: &future})
		require.NoError(t, err)
		assert.Empty(t, orders)

		past := time.Now().Add(-time.Hour)
		orders, err = store.ListOrders(Filters{From: &past, To: &future})
		require.NoError(t, err)
		assert.Len(t, orders, 3)
	})

	t.Run("no match yields an empty, non-nil collection", func(t *testing.T) {
		orders, err := store.ListOrders(Filters{Search: "nonexistent"})
		require.NoError(t, err)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
	})
}

func TestUpdateOrder(t *testing.T) {
	store := newTestStore(t)
	created := mustCreate(t, store, "OC-1", "Acme", order.StatusDraft, "10", order.CurrencyUSD)

	date, _ := order.ParseDate("2025-07-15")
	updated, err := store.UpdateOrder(created.ID, order.PurchaseOrder{
		OrderNumber:          "OC-1",
		SupplierName:         "Acme International",
		Status:               order.StatusSubmitted,
		TotalAmount:          decimal.RequireFromString("99.99"),
		Currency:             order.CurrencyEUR,
		ExpectedDeliveryDate: date,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Acme International", updated.SupplierName)
	assert.Equal(t, order.StatusSubmitted, updated.Status)
	assert.Equal(t, "2025-07-15", updated.ExpectedDeliveryDate.String())
	// createdAt is immutable
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestUpdateOrderMissing(t *testing.T) {
	store := newTestStore(t)

	date, _ := order.ParseDate("2025-07-15")
	updated, err := store.UpdateOrder(999, order.PurchaseOrder{
		OrderNumber:          "OC-X",
		SupplierName:         "Nobody",
		Status:               order.StatusDraft,
		TotalAmount:          decimal.NewFromInt(1),
		Currency:             order.CurrencyUSD,
		ExpectedDeliveryDate: date,
	})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteOrder(t *testing.T) {
	store := newTestStore(t)
	created := mustCreate(t, store, "OC-1", "Acme", order.StatusDraft, "10", order.CurrencyUSD)

	found, err := store.DeleteOrder(created.ID)
	require.NoError(t, err)
	assert.True(t, found)

	got, err := store.GetOrder(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	found, err = store.DeleteOrder(created.ID)
	require.NoError(t, err)
	assert.False(t, found)
}
