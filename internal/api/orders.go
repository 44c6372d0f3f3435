package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/emorozco/podesk/internal/api/dto"
	"github.com/emorozco/podesk/internal/domain/order"
	"github.com/emorozco/podesk/internal/infrastructure/storage"
)

// OrdersHandler handles purchase-order HTTP requests.
type OrdersHandler struct {
	store *storage.Store
}

// NewOrdersHandler creates a new orders handler.
func NewOrdersHandler(store *storage.Store) *OrdersHandler {
	return &OrdersHandler{store: store}
}

// List handles GET /api/v1/purchase-orders with optional filters
// q, status, currency, minTotal, maxTotal, from, to.
func (h *OrdersHandler) List(c *gin.Context) {
	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.InvalidFilterError(err.Error()))
		return
	}

	orders, err := h.store.ListOrders(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}

	c.JSON(http.StatusOK, orders)
}

// Get handles GET /api/v1/purchase-orders/:id.
func (h *OrdersHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	po, err := h.store.GetOrder(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}
	if po == nil {
		c.JSON(http.StatusNotFound, dto.NotFoundError("purchase order"))
		return
	}

	c.JSON(http.StatusOK, po)
}

// Create handles POST /api/v1/purchase-orders.
func (h *OrdersHandler) Create(c *gin.Context) {
	record, ok := bindOrder(c)
	if !ok {
		return
	}

	created, err := h.store.CreateOrder(record)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/v1/purchase-orders/:id. The whole record is
// replaced; createdAt stays untouched.
func (h *OrdersHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, ok := bindOrder(c)
	if !ok {
		return
	}

	updated, err := h.store.UpdateOrder(id, record)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, dto.NotFoundError("purchase order"))
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/purchase-orders/:id.
func (h *OrdersHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.store.DeleteOrder(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, dto.NotFoundError("purchase order"))
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("id must be an integer"))
		return 0, false
	}
	return id, true
}

// timestampLayouts are the accepted from/to formats: full date-times as the
// API documents, plus the shorter forms browser date inputs emit.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

func parseFilters(c *gin.Context) (storage.Filters, error) {
	var f storage.Filters

	f.Search = strings.TrimSpace(c.Query("q"))

	if raw := c.Query("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return f, err
		}
		f.Status = status
	}

	if raw := c.Query("currency"); raw != "" {
		currency, err := order.ParseCurrency(raw)
		if err != nil {
			return f, err
		}
		f.Currency = currency
	}

	if raw := c.Query("minTotal"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil || min.IsNegative() {
			return f, fmt.Errorf("minTotal must be a number greater than or equal to 0")
		}
		f.MinTotal = &min
	}

	if raw := c.Query("maxTotal"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil || max.IsNegative() {
			return f, fmt.Errorf("maxTotal must be a number greater than or equal to 0")
		}
		f.MaxTotal = &max
	}

	if raw := c.Query("from"); raw != "" {
		from, err := parseTimestamp(raw)
		if err != nil {
			return f, err
		}
		f.From = &from
	}

	if raw := c.Query("to"); raw != "" {
		to, err := parseTimestamp(raw)
		if err != nil {
			return f, err
		}
		f.To = &to
	}

	if f.MinTotal != nil && f.MaxTotal != nil && f.MinTotal.GreaterThan(*f.MaxTotal) {
		return f, fmt.Errorf("minTotal cannot be greater than maxTotal")
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return f, fmt.Errorf("from cannot be later than to")
	}

	return f, nil
}

// orderRequest is the inbound record shape for create and update.
type orderRequest struct {
	OrderNumber          string          `json:"orderNumber"`
	SupplierName         string          `json:"supplierName"`
	Status               string          `json:"status"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	Currency             string          `json:"currency"`
	ExpectedDeliveryDate order.Date      `json:"expectedDeliveryDate"`
}

// bindOrder decodes and validates the request body; on failure it writes the
// error response itself and reports false.
func bindOrder(c *gin.Context) (order.PurchaseOrder, bool) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("invalid request body"))
		return order.PurchaseOrder{}, false
	}

	record, err := req.validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationError(err.Error()))
		return order.PurchaseOrder{}, false
	}
	return record, true
}

func (r orderRequest) validate() (order.PurchaseOrder, error) {
	var po order.PurchaseOrder

	po.OrderNumber = strings.TrimSpace(r.OrderNumber)
	if po.OrderNumber == "" {
		return po, fmt.Errorf("orderNumber is required")
	}

	po.SupplierName = strings.TrimSpace(r.SupplierName)
	if po.SupplierName == "" {
		return po, fmt.Errorf("supplierName is required")
	}

	po.Status = order.StatusDraft
	if r.Status != "" {
		status, err := order.ParseStatus(r.Status)
		if err != nil {
			return po, err
		}
		po.Status = status
	}

	if !r.TotalAmount.IsPositive() {
		return po, fmt.Errorf("totalAmount must be greater than zero")
	}
	po.TotalAmount = r.TotalAmount

	po.Currency = order.CurrencyUSD
	if r.Currency != "" {
		currency, err := order.ParseCurrency(r.Currency)
		if err != nil {
			return po, err
		}
		po.Currency = currency
	}

	if r.ExpectedDeliveryDate.IsZero() {
		return po, fmt.Errorf("expectedDeliveryDate is required")
	}
	po.ExpectedDeliveryDate = r.ExpectedDeliveryDate

	return po, nil
}

func writeStoreError(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrDuplicateOrderNumber) {
		c.JSON(http.StatusConflict, dto.ConflictError("order number already exists"))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.InternalError())
}
