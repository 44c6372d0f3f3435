// Package cli implements the terminal frontend of the purchase-order desk:
// the list, create, edit, delete and dashboard commands, plus the shared
// flag parsing and rendering helpers they use.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/emorozco/podesk/internal/client"
	"github.com/emorozco/podesk/internal/domain/order"
)

// App wires the commands to the service client and the terminal. Each
// command invocation owns its own fetched collection; nothing is cached
// between runs.
type App struct {
	Client *client.Client
	Logger *slog.Logger
	In     io.Reader
	Out    io.Writer
}

// RunList fetches and renders the order collection, constrained by the
// filter flags.
func (a *App) RunList(ctx context.Context, flags *ListFlags) error {
	criteria, err := flags.Criteria()
	if err != nil {
		return err
	}

	PrintLoading(a.Out)
	orders, err := a.Client.ListOrders(ctx, criteria)
	if err != nil {
		return fmt.Errorf("could not load purchase orders: %w", err)
	}

	RenderList(a.Out, orders)
	return nil
}

// RunShow fetches and renders a single order.
func (a *App) RunShow(ctx context.Context, id int64) error {
	po, err := a.Client.GetOrder(ctx, id)
	if err != nil {
		if client.IsNotFound(err) {
			return fmt.Errorf("purchase order %d not found", id)
		}
		return fmt.Errorf("could not load purchase order %d: %w", id, err)
	}

	RenderOrder(a.Out, po)
	return nil
}

// RunCreate submits a new order built from the form flags. On success the
// desk returns to the list view.
func (a *App) RunCreate(ctx context.Context, form *FormFlags) error {
	draft, err := form.ApplyTo(order.NewDraft())
	if err != nil {
		return err
	}

	outcome := draft.Submit(ctx, func(ctx context.Context, po order.PurchaseOrder) (*order.PurchaseOrder, error) {
		return a.Client.CreateOrder(ctx, po)
	})
	if !outcome.OK() {
		fmt.Fprintln(a.Out, outcome.Message)
		if outcome.Err != nil {
			return outcome.Err
		}
		return fmt.Errorf("%s", outcome.Message)
	}

	fmt.Fprintf(a.Out, "Created purchase order %s (#%d)\n\n", outcome.Saved.OrderNumber, outcome.Saved.ID)
	return a.RunList(ctx, &ListFlags{})
}

// RunEdit loads an existing order, applies the provided form fields on top
// of it and submits the result. Fields the user did not pass keep their
// current values.
func (a *App) RunEdit(ctx context.Context, id int64, form *FormFlags) error {
	existing, err := a.Client.GetOrder(ctx, id)
	if err != nil {
		if client.IsNotFound(err) {
			return fmt.Errorf("purchase order %d not found", id)
		}
		return fmt.Errorf("could not load purchase order %d: %w", id, err)
	}

	draft, err := form.ApplyTo(order.DraftOf(*existing))
	if err != nil {
		return err
	}

	outcome := draft.Submit(ctx, func(ctx context.Context, po order.PurchaseOrder) (*order.PurchaseOrder, error) {
		return a.Client.UpdateOrder(ctx, id, po)
	})
	if !outcome.OK() {
		fmt.Fprintln(a.Out, outcome.Message)
		if outcome.Err != nil {
			return outcome.Err
		}
		return fmt.Errorf("%s", outcome.Message)
	}

	fmt.Fprintf(a.Out, "Updated purchase order %s (#%d)\n\n", outcome.Saved.OrderNumber, outcome.Saved.ID)
	return a.RunList(ctx, &ListFlags{})
}

// RunDelete removes an order after explicit confirmation naming its order
// number. Declining leaves everything untouched and issues no request.
func (a *App) RunDelete(ctx context.Context, id int64) error {
	po, err := a.Client.GetOrder(ctx, id)
	if err != nil {
		if client.IsNotFound(err) {
			return fmt.Errorf("purchase order %d not found", id)
		}
		return fmt.Errorf("could not load purchase order %d: %w", id, err)
	}

	if !ConfirmDelete(a.In, a.Out, po.OrderNumber) {
		fmt.Fprintln(a.Out, "Deletion cancelled.")
		return nil
	}

	if err := a.Client.DeleteOrder(ctx, id); err != nil {
		fmt.Fprintf(a.Out, "Could not delete purchase order %s.\n", po.OrderNumber)
		return err
	}

	fmt.Fprintf(a.Out, "Deleted purchase order %s.\n\n", po.OrderNumber)
	return a.RunList(ctx, &ListFlags{})
}

// RunDashboard fetches the unfiltered collection and renders the aggregate
// view.
func (a *App) RunDashboard(ctx context.Context) error {
	PrintLoading(a.Out)
	orders, err := a.Client.ListOrders(ctx, order.Criteria{})
	if err != nil {
		return fmt.Errorf("could not load purchase orders: %w", err)
	}

	RenderDashboard(a.Out, order.Summarize(orders), order.Highlights(orders))
	return nil
}
