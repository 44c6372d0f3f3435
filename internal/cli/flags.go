package cli

import (
	"flag"

	"github.com/emorozco/podesk/internal/domain/order"
)

// ListFlags are the filter panel fields for the list command.
type ListFlags struct {
	Search   string
	Status   string
	Currency string
	MinTotal string
	MaxTotal string
	From     string
	To       string
	Clear    bool
}

// ParseListFlags parses list command flags.
func ParseListFlags(args []string) (*ListFlags, error) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	flags := &ListFlags{}
	fs.StringVar(&flags.Search, "q", "", "Match order number or supplier name")
	fs.StringVar(&flags.Status, "status", "", "Filter by status (DRAFT, SUBMITTED, APPROVED, REJECTED, CANCELLED)")
	fs.StringVar(&flags.Currency, "currency", "", "Filter by currency (USD, EUR)")
	fs.StringVar(&flags.MinTotal, "min-total", "", "Minimum total amount")
	fs.StringVar(&flags.MaxTotal, "max-total", "", "Maximum total amount")
	fs.StringVar(&flags.From, "from", "", "Created-at lower bound")
	fs.StringVar(&flags.To, "to", "", "Created-at upper bound")
	fs.BoolVar(&flags.Clear, "clear", false, "Ignore all filters and fetch everything")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return flags, nil
}

// Criteria turns the flags into committed filter criteria. --clear wins over
// everything else and yields an unconstrained fetch.
func (f *ListFlags) Criteria() (order.Criteria, error) {
	var draft order.FilterDraft
	if f.Clear {
		return draft.Clear().Apply(), nil
	}

	fields := []struct {
		name  string
		value string
	}{
		{"q", f.Search},
		{"status", f.Status},
		{"currency", f.Currency},
		{"minTotal", f.MinTotal},
		{"maxTotal", f.MaxTotal},
		{"from", f.From},
		{"to", f.To},
	}

	var err error
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		draft, err = draft.With(field.name, field.value)
		if err != nil {
			return order.Criteria{}, err
		}
	}

	return draft.Apply(), nil
}

// FormFlags capture which order form fields a command invocation set, so an
// edit touches only what the user actually passed.
type FormFlags struct {
	fields map[string]string
}

// ParseFormFlags parses create/edit form flags from args and returns the
// remaining positional arguments.
func ParseFormFlags(name string, args []string) (*FormFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var orderNumber, supplier, status, amount, currency, delivery string
	fs.StringVar(&orderNumber, "number", "", "Order number")
	fs.StringVar(&supplier, "supplier", "", "Supplier name")
	fs.StringVar(&status, "status", "", "Status (DRAFT, SUBMITTED, APPROVED, REJECTED, CANCELLED)")
	fs.StringVar(&amount, "amount", "", "Total amount")
	fs.StringVar(&currency, "currency", "", "Currency (USD, EUR)")
	fs.StringVar(&delivery, "delivery", "", "Expected delivery date (YYYY-MM-DD)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	flagToField := map[string]string{
		"number":   "orderNumber",
		"supplier": "supplierName",
		"status":   "status",
		"amount":   "totalAmount",
		"currency": "currency",
		"delivery": "expectedDeliveryDate",
	}

	form := &FormFlags{fields: make(map[string]string)}
	fs.Visit(func(f *flag.Flag) {
		if field, ok := flagToField[f.Name]; ok {
			form.fields[field] = f.Value.String()
		}
	})

	return form, fs.Args(), nil
}

// ApplyTo sets every provided field on the draft, returning the new draft.
func (f *FormFlags) ApplyTo(draft order.Draft) (order.Draft, error) {
	var err error
	for field, value := range f.fields {
		draft, err = draft.WithField(field, value)
		if err != nil {
			return draft, err
		}
	}
	return draft, nil
}
