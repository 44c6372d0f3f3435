package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/emorozco/podesk/internal/domain/order"
)

// PrintLoading prints the progress indicator shown while a fetch is in
// flight.
func PrintLoading(w io.Writer) {
	fmt.Fprintln(w, "Loading purchase orders...")
}

// RenderList renders the order collection as a table, or an empty-state
// message when there is nothing to show.
func RenderList(w io.Writer, orders []order.PurchaseOrder) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No purchase orders found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tORDER\tSUPPLIER\tSTATUS\tTOTAL\tCURRENCY\tDELIVERY\tCREATED")
	for _, po := range orders {
		created := ""
		if !po.CreatedAt.IsZero() {
			created = po.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			po.ID,
			po.OrderNumber,
			po.SupplierName,
			po.Status,
			po.TotalAmount.StringFixed(2),
			po.Currency,
			po.ExpectedDeliveryDate.String(),
			created,
		)
	}
	_ = tw.Flush()
}

// RenderOrder renders one record in detail.
func RenderOrder(w io.Writer, po *order.PurchaseOrder) {
	fmt.Fprintf(w, "Purchase order #%d\n", po.ID)
	fmt.Fprintf(w, "  Order number:  %s\n", po.OrderNumber)
	fmt.Fprintf(w, "  Supplier:      %s\n", po.SupplierName)
	fmt.Fprintf(w, "  Status:        %s\n", po.Status)
	fmt.Fprintf(w, "  Total:         %s %s\n", po.TotalAmount.StringFixed(2), po.Currency)
	fmt.Fprintf(w, "  Delivery:      %s\n", po.ExpectedDeliveryDate.String())
	if !po.CreatedAt.IsZero() {
		fmt.Fprintf(w, "  Created:       %s\n", po.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// RenderDashboard renders the aggregate stats and the highlighted cards.
func RenderDashboard(w io.Writer, stats order.Stats, highlights []order.PurchaseOrder) {
	fmt.Fprintln(w, "Purchase order dashboard")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "Total: %d | Approved: %d | Rejected: %d | Pending: %d\n",
		stats.Total, stats.Approved, stats.Rejected, stats.Pending)
	fmt.Fprintf(w, "USD: %d | EUR: %d\n", stats.USD, stats.EUR)

	if len(highlights) == 0 {
		return
	}

	fmt.Fprintln(w, "\nRecent orders:")
	for _, po := range highlights {
		fmt.Fprintf(w, "  [%s] %s / %s (%s %s), delivery %s\n",
			po.Status,
			po.OrderNumber,
			po.SupplierName,
			po.TotalAmount.StringFixed(2),
			po.Currency,
			po.ExpectedDeliveryDate.String(),
		)
	}
}
