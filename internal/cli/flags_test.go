package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emorozco/podesk/internal/domain/order"
)

func TestParseListFlags(t *testing.T) {
	t.Run("maps flags to criteria fields", func(t *testing.T) {
		flags, err := ParseListFlags([]string{
			"-q", "acme",
			"-status", "approved",
			"-currency", "usd",
			"-min-total", "10",
			"-max-total", "500",
			"-from", "2025-01-01",
			"-to", "2025-12-31",
		})
		require.NoError(t, err)

		criteria, err := flags.Criteria()
		require.NoError(t, err)

		assert.Equal(t, "acme", criteria.Search)
		assert.Equal(t, "approved", criteria.Status)
		assert.Equal(t, "usd", criteria.Currency)
		assert.Equal(t, "10", criteria.MinTotal)
		assert.Equal(t, "500", criteria.MaxTotal)
		assert.Equal(t, "2025-01-01", criteria.From)
		assert.Equal(t, "2025-12-31", criteria.To)
	})

	t.Run("no flags yields empty criteria", func(t *testing.T) {
		flags, err := ParseListFlags(nil)
		require.NoError(t, err)

		criteria, err := flags.Criteria()
		require.NoError(t, err)
		assert.True(t, criteria.IsZero())
	})

	t.Run("clear wins over other flags", func(t *testing.T) {
		flags, err := ParseListFlags([]string{"-q", "acme", "-status", "APPROVED", "-clear"})
		require.NoError(t, err)

		criteria, err := flags.Criteria()
		require.NoError(t, err)
		assert.True(t, criteria.IsZero())
		assert.Empty(t, criteria.QueryString())
	})
}

func TestParseFormFlags(t *testing.T) {
	t.Run("captures only flags that were set", func(t *testing.T) {
		form, rest, err := ParseFormFlags("edit", []string{"-supplier", "New Supplier"})
		require.NoError(t, err)
		assert.Empty(t, rest)

		base := order.Draft{
			OrderNumber:  "PO-1",
			SupplierName: "Old Supplier",
			Status:       "APPROVED",
			TotalAmount:  "99.50",
			Currency:     "EUR",
		}
		draft, err := form.ApplyTo(base)
		require.NoError(t, err)

		assert.Equal(t, "New Supplier", draft.SupplierName)
		assert.Equal(t, "PO-1", draft.OrderNumber)
		assert.Equal(t, "APPROVED", draft.Status)
		assert.Equal(t, "99.50", draft.TotalAmount)
		assert.Equal(t, "EUR", draft.Currency)
	})

	t.Run("applies every form field", func(t *testing.T) {
		form, _, err := ParseFormFlags("create", []string{
			"-number", "PO-7",
			"-supplier", "Acme",
			"-status", "SUBMITTED",
			"-amount", "120.00",
			"-currency", "EUR",
			"-delivery", "2025-09-15",
		})
		require.NoError(t, err)

		draft, err := form.ApplyTo(order.NewDraft())
		require.NoError(t, err)

		assert.Equal(t, "PO-7", draft.OrderNumber)
		assert.Equal(t, "Acme", draft.SupplierName)
		assert.Equal(t, "SUBMITTED", draft.Status)
		assert.Equal(t, "120.00", draft.TotalAmount)
		assert.Equal(t, "EUR", draft.Currency)
		assert.Equal(t, "2025-09-15", draft.ExpectedDeliveryDate)
	})
}
