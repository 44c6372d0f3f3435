package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Draft is the form state for creating or editing a purchase order. Fields
// hold raw user input as strings; nothing is parsed until validation. Updates
// return a new draft, leaving the original untouched.
type Draft struct {
	OrderNumber          string
	SupplierName         string
	Status               string
	TotalAmount          string
	Currency             string
	ExpectedDeliveryDate string
}

// NewDraft returns an empty draft with status and currency defaulted.
func NewDraft() Draft {
	return Draft{
		Status:   string(StatusDraft),
		Currency: string(CurrencyUSD),
	}
}

// DraftOf returns a draft pre-populated from an existing record, for editing.
func DraftOf(po PurchaseOrder) Draft {
	return Draft{
		OrderNumber:          po.OrderNumber,
		SupplierName:         po.SupplierName,
		Status:               string(po.Status),
		TotalAmount:          po.TotalAmount.String(),
		Currency:             string(po.Currency),
		ExpectedDeliveryDate: po.ExpectedDeliveryDate.String(),
	}
}

// WithField returns a copy of the draft with the named field replaced.
func (d Draft) WithField(field, value string) (Draft, error) {
	next := d
	switch field {
	case "orderNumber":
		next.OrderNumber = value
	case "supplierName":
		next.SupplierName = value
	case "status":
		next.Status = value
	case "totalAmount":
		next.TotalAmount = value
	case "currency":
		next.Currency = value
	case "expectedDeliveryDate":
		next.ExpectedDeliveryDate = value
	default:
		return d, fmt.Errorf("unknown form field %q", field)
	}
	return next, nil
}

// ValidationError is a user-visible form validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks the draft, short-circuiting on the first failure:
// order number, then supplier name, then total amount, then delivery date.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.OrderNumber) == "" {
		return &ValidationError{Message: "order number is required"}
	}
	if strings.TrimSpace(d.SupplierName) == "" {
		return &ValidationError{Message: "supplier name is required"}
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(d.TotalAmount))
	if err != nil || !amount.IsPositive() {
		return &ValidationError{Message: "total amount must be greater than zero"}
	}
	if strings.TrimSpace(d.ExpectedDeliveryDate) == "" {
		return &ValidationError{Message: "expected delivery date is required"}
	}
	return nil
}

// Record coerces a validated draft into a purchase order: the amount becomes
// a true decimal, the date a calendar date, and empty status/currency fall
// back to their defaults. Callers must run Validate first; Record re-checks
// only what coercion itself can surface.
func (d Draft) Record() (PurchaseOrder, error) {
	if err := d.Validate(); err != nil {
		return PurchaseOrder{}, err
	}

	status := StatusDraft
	if strings.TrimSpace(d.Status) != "" {
		parsed, err := ParseStatus(d.Status)
		if err != nil {
			return PurchaseOrder{}, &ValidationError{Message: err.Error()}
		}
		status = parsed
	}

	currency := CurrencyUSD
	if strings.TrimSpace(d.Currency) != "" {
		parsed, err := ParseCurrency(d.Currency)
		if err != nil {
			return PurchaseOrder{}, &ValidationError{Message: err.Error()}
		}
		currency = parsed
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(d.TotalAmount))
	if err != nil {
		return PurchaseOrder{}, &ValidationError{Message: "total amount must be greater than zero"}
	}

	date, err := ParseDate(strings.TrimSpace(d.ExpectedDeliveryDate))
	if err != nil {
		return PurchaseOrder{}, &ValidationError{Message: "expected delivery date must be a date in YYYY-MM-DD form"}
	}

	return PurchaseOrder{
		OrderNumber:          strings.TrimSpace(d.OrderNumber),
		SupplierName:         strings.TrimSpace(d.SupplierName),
		Status:               status,
		TotalAmount:          amount,
		Currency:             currency,
		ExpectedDeliveryDate: date,
	}, nil
}

// SubmitFunc persists a coerced record: create or update, chosen by the caller.
type SubmitFunc func(ctx context.Context, po PurchaseOrder) (*PurchaseOrder, error)

// Outcome is the result of a form submission. Exactly one of Saved or Message
// is meaningful: Saved on success, Message (plus Err for logging) on failure.
type Outcome struct {
	Saved   *PurchaseOrder
	Message string
	Err     error
}

// OK reports whether the submission succeeded.
func (o Outcome) OK() bool {
	return o.Saved != nil
}

// serverMessager is implemented by errors carrying a structured
// server-supplied message worth showing to the user.
type serverMessager interface {
	ServerMessage() string
}

const genericSubmitMessage = "could not save the purchase order"

// Submit validates, coerces and persists the draft through submit. Validation
// failures never reach submit. Persistence failures keep the draft intact and
// produce a user-visible message, preferring a structured server message over
// the generic one.
func (d Draft) Submit(ctx context.Context, submit SubmitFunc) Outcome {
	record, err := d.Record()
	if err != nil {
		return Outcome{Message: err.Error(), Err: err}
	}

	saved, err := submit(ctx, record)
	if err != nil {
		return Outcome{Message: submitFailureMessage(err), Err: err}
	}

	return Outcome{Saved: saved}
}

func submitFailureMessage(err error) string {
	var sm serverMessager
	if errors.As(err, &sm) && sm.ServerMessage() != "" {
		return sm.ServerMessage()
	}
	return genericSubmitMessage
}
