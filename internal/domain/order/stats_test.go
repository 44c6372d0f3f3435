package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emorozco/podesk/internal/domain/order"
)

func TestSummarize(t *testing.T) {
	orders := []order.PurchaseOrder{
		{Status: order.StatusDraft, Currency: order.CurrencyUSD},
		{Status: order.StatusSubmitted, Currency: order.CurrencyUSD},
		{Status: order.StatusApproved, Currency: order.CurrencyEUR},
		{Status: order.StatusRejected, Currency: order.CurrencyUSD},
		{Status: order.StatusRejected, Currency: order.CurrencyEUR},
	}

	stats := order.Summarize(orders)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, stats.Approved)
	assert.Equal(t, 2, stats.Rejected)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 3, stats.USD)
	assert.Equal(t, 2, stats.EUR)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, order.Stats{}, order.Summarize(nil))
}

func TestSummarizeCancelledIsNeitherPendingNorDecided(t *testing.T) {
	stats := order.Summarize([]order.PurchaseOrder{
		{Status: order.StatusCancelled, Currency: order.CurrencyUSD},
	})

	assert.Equal(t, 1, stats.Total)
	assert.Zero(t, stats.Approved)
	assert.Zero(t, stats.Rejected)
	assert.Zero(t, stats.Pending)
}

func TestHighlights(t *testing.T) {
	var orders []order.PurchaseOrder
	for i := int64(1); i <= 9; i++ {
		orders = append(orders, order.PurchaseOrder{ID: i})
	}

	top := order.Highlights(orders)
	assert.Len(t, top, 6)
	assert.Equal(t, int64(1), top[0].ID)
	assert.Equal(t, int64(6), top[5].ID)

	short := order.Highlights(orders[:2])
	assert.Len(t, short, 2)
}
