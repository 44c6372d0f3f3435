package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emorozco/podesk/internal/domain/order"
)

func TestCriteriaQueryString(t *testing.T) {
	t.Run("empty criteria encodes to empty string", func(t *testing.T) {
		assert.Equal(t, "", order.Criteria{}.QueryString())
		assert.True(t, order.Criteria{}.IsZero())
	})

	t.Run("only non-empty fields appear", func(t *testing.T) {
		c := order.Criteria{Status: "APPROVED", Currency: "USD"}
		assert.Equal(t, "status=APPROVED&currency=USD", c.QueryString())
	})

	t.Run("fields keep the fixed order regardless of which are set", func(t *testing.T) {
		c := order.Criteria{
			To:       "2025-06-30",
			Search:   "acme",
			MaxTotal: "500",
			Status:   "SUBMITTED",
		}
		assert.Equal(t, "q=acme&status=SUBMITTED&maxTotal=500&to=2025-06-30", c.QueryString())
	})

	t.Run("all fields set", func(t *testing.T) {
		c := order.Criteria{
			Search:   "oc",
			Status:   "DRAFT",
			Currency: "EUR",
			MinTotal: "10",
			MaxTotal: "99.99",
			From:     "2025-01-01",
			To:       "2025-12-31",
		}
		assert.Equal(t,
			"q=oc&status=DRAFT&currency=EUR&minTotal=10&maxTotal=99.99&from=2025-01-01&to=2025-12-31",
			c.QueryString())
	})

	t.Run("values are escaped", func(t *testing.T) {
		c := order.Criteria{Search: "acme & sons"}
		assert.Equal(t, "q=acme+%26+sons", c.QueryString())
	})
}

func TestFilterDraft(t *testing.T) {
	t.Run("with replaces only the named field", func(t *testing.T) {
		var draft order.FilterDraft
		draft, err := draft.With("status", "APPROVED")
		require.NoError(t, err)
		draft, err = draft.With("currency", "USD")
		require.NoError(t, err)

		applied := draft.Apply()
		assert.Equal(t, "APPROVED", applied.Status)
		assert.Equal(t, "USD", applied.Currency)
		assert.Empty(t, applied.Search)
		assert.Empty(t, applied.MinTotal)
	})

	t.Run("update returns a new draft, original is untouched", func(t *testing.T) {
		var base order.FilterDraft
		updated, err := base.With("q", "acme")
		require.NoError(t, err)

		assert.True(t, base.Apply().IsZero())
		assert.Equal(t, "acme", updated.Apply().Search)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		var draft order.FilterDraft
		_, err := draft.With("supplier", "acme")
		assert.Error(t, err)
	})

	t.Run("clear yields an unconstrained fetch", func(t *testing.T) {
		var draft order.FilterDraft
		draft, err := draft.With("status", "REJECTED")
		require.NoError(t, err)
		draft, err = draft.With("minTotal", "100")
		require.NoError(t, err)

		cleared := draft.Clear()
		assert.True(t, cleared.Apply().IsZero())
		assert.Equal(t, "", cleared.Apply().QueryString())
	})

	t.Run("setting a field back to empty removes the constraint", func(t *testing.T) {
		var draft order.FilterDraft
		draft, err := draft.With("status", "REJECTED")
		require.NoError(t, err)
		draft, err = draft.With("status", "")
		require.NoError(t, err)

		assert.Equal(t, "", draft.Apply().QueryString())
	})
}
