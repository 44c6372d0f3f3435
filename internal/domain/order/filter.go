package order

import (
	"fmt"
	"net/url"
	"strings"
)

// Criteria narrows which purchase orders a list fetch returns. All fields are
// raw strings straight from user input; an empty field means "unconstrained".
// Parsing numeric and date bounds is the service's concern, not the caller's.
type Criteria struct {
	Search   string // matched against order number and supplier name
	Status   string
	Currency string
	MinTotal string
	MaxTotal string
	From     string // createdAt lower bound
	To       string // createdAt upper bound
}

// filterKeys is the fixed set of query parameters, in emission order.
var filterKeys = []string{"q", "status", "currency", "minTotal", "maxTotal", "from", "to"}

func (c Criteria) get(key string) string {
	switch key {
	case "q":
		return c.Search
	case "status":
		return c.Status
	case "currency":
		return c.Currency
	case "minTotal":
		return c.MinTotal
	case "maxTotal":
		return c.MaxTotal
	case "from":
		return c.From
	case "to":
		return c.To
	}
	return ""
}

// IsZero reports whether no constraint is set.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// QueryString encodes the criteria as a query string. Only non-empty fields
// are included, always in the order q, status, currency, minTotal, maxTotal,
// from, to. An unconstrained criteria encodes to the empty string.
//
// url.Values is deliberately not used here: its Encode sorts keys
// alphabetically and the service's parameter order is part of the contract.
func (c Criteria) QueryString() string {
	var b strings.Builder
	for _, key := range filterKeys {
		value := c.get(key)
		if value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}
	return b.String()
}

// FilterDraft is the in-progress filter state before it is applied. Updates
// return a new draft; the draft a caller holds never changes underneath it.
type FilterDraft struct {
	criteria Criteria
}

// With returns a copy of the draft with the named field replaced. Every other
// field is preserved by value. Unknown field names are rejected.
func (d FilterDraft) With(field, value string) (FilterDraft, error) {
	next := d
	switch field {
	case "q":
		next.criteria.Search = value
	case "status":
		next.criteria.Status = value
	case "currency":
		next.criteria.Currency = value
	case "minTotal":
		next.criteria.MinTotal = value
	case "maxTotal":
		next.criteria.MaxTotal = value
	case "from":
		next.criteria.From = value
	case "to":
		next.criteria.To = value
	default:
		return d, fmt.Errorf("unknown filter field %q", field)
	}
	return next, nil
}

// Apply commits the draft: it returns a copy of the criteria for the owner of
// the authoritative filter state. Empty fields are already "absent"; nothing
// downstream ever emits them.
func (d FilterDraft) Apply() Criteria {
	return d.criteria
}

// Clear returns an empty draft. Applying a cleared draft yields an
// unconstrained fetch.
func (d FilterDraft) Clear() FilterDraft {
	return FilterDraft{}
}
