// Package order holds the purchase-order domain model: the record itself,
// its closed enumerations, filter criteria for list fetches, and the form
// draft used when creating or editing a record.
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts travel as JSON numbers, matching the service's wire format.
	decimal.MarshalJSONWithoutQuotes = true
}

// Status is the lifecycle state of a purchase order.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// AllStatuses lists every valid status, in lifecycle order.
var AllStatuses = []Status{StatusDraft, StatusSubmitted, StatusApproved, StatusRejected, StatusCancelled}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus converts a string to a Status, case-insensitively.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("invalid status %q: allowed values are DRAFT, SUBMITTED, APPROVED, REJECTED, CANCELLED", raw)
	}
	return s, nil
}

// Currency is the currency a purchase order is denominated in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// AllCurrencies lists every supported currency.
var AllCurrencies = []Currency{CurrencyUSD, CurrencyEUR}

// Valid reports whether c is one of the supported currencies.
func (c Currency) Valid() bool {
	for _, known := range AllCurrencies {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCurrency converts a string to a Currency, case-insensitively.
func ParseCurrency(raw string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", fmt.Errorf("invalid currency %q: allowed values are USD, EUR", raw)
	}
	return c, nil
}

const dateLayout = "2006-01-02"

// Date is a calendar date (no time component) that marshals as "2006-01-02".
type Date struct {
	time.Time
}

// ParseDate parses a "2006-01-02" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// String returns the date in "2006-01-02" form.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. It tolerates a trailing time
// component so "2025-01-01T00:00:00" also decodes.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if idx := strings.IndexByte(s, 'T'); idx > 0 {
		s = s[:idx]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// PurchaseOrder is the business record tracked by the desk.
type PurchaseOrder struct {
	ID                   int64           `json:"id"`
	OrderNumber          string          `json:"orderNumber"`
	SupplierName         string          `json:"supplierName"`
	Status               Status          `json:"status"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	Currency             Currency        `json:"currency"`
	ExpectedDeliveryDate Date            `json:"expectedDeliveryDate"`
	CreatedAt            time.Time       `json:"createdAt,omitzero"` // server-assigned, read-only
}
