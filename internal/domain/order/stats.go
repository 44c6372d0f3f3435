package order

// Stats are the dashboard aggregates, derived wholesale from one fetched
// collection. They are never updated incrementally.
type Stats struct {
	Total    int
	Approved int
	Rejected int
	Pending  int // DRAFT or SUBMITTED
	USD      int
	EUR      int
}

// Summarize counts the collection into dashboard stats.
func Summarize(orders []PurchaseOrder) Stats {
	var s Stats
	s.Total = len(orders)
	for _, po := range orders {
		switch po.Status {
		case StatusApproved:
			s.Approved++
		case StatusRejected:
			s.Rejected++
		case StatusDraft, StatusSubmitted:
			s.Pending++
		}
		switch po.Currency {
		case CurrencyUSD:
			s.USD++
		case CurrencyEUR:
			s.EUR++
		}
	}
	return s
}

// highlightCount is how many records the dashboard spotlights.
const highlightCount = 6

// Highlights returns the first records of the collection, in server order,
// for the dashboard's highlighted cards.
func Highlights(orders []PurchaseOrder) []PurchaseOrder {
	if len(orders) <= highlightCount {
		return orders
	}
	return orders[:highlightCount]
}
