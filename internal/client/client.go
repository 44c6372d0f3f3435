// Package client is the typed client for the purchase-order service.
//
// It owns query-string construction for list fetches and the translation of
// transport and HTTP failures into errors the caller can inspect. It never
// retains fetched records and never swallows an error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/emorozco/podesk/internal/domain/order"
)

// Client talks to one purchase-order service instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a client for the service at baseURL
// (e.g. "http://localhost:8083/api/v1").
func New(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No client-side timeout: a request is allowed to wait as long as the
		// caller's context does.
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// ListOrders fetches the collection, constrained by criteria. Only non-empty
// criteria fields become query parameters, in the order q, status, currency,
// minTotal, maxTotal, from, to. Records come back in server order.
func (c *Client) ListOrders(ctx context.Context, criteria order.Criteria) ([]order.PurchaseOrder, error) {
	path := "/purchase-orders"
	if qs := criteria.QueryString(); qs != "" {
		path += "?" + qs
	}

	var orders []order.PurchaseOrder
	if err := c.do(ctx, http.MethodGet, path, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches a single record by id. A missing record surfaces as an
// *APIError for which IsNotFound reports true.
func (c *Client) GetOrder(ctx context.Context, id int64) (*order.PurchaseOrder, error) {
	var po order.PurchaseOrder
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/purchase-orders/%d", id), nil, &po); err != nil {
		return nil, err
	}
	return &po, nil
}

// CreateOrder persists a new record and returns it with the server-assigned
// id and createdAt.
func (c *Client) CreateOrder(ctx context.Context, po order.PurchaseOrder) (*order.PurchaseOrder, error) {
	var created order.PurchaseOrder
	if err := c.do(ctx, http.MethodPost, "/purchase-orders", po, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateOrder replaces the record with the given id and returns the updated
// record.
func (c *Client) UpdateOrder(ctx context.Context, id int64, po order.PurchaseOrder) (*order.PurchaseOrder, error) {
	var updated order.PurchaseOrder
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/purchase-orders/%d", id), po, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteOrder removes the record with the given id. Any non-2xx response is
// a failure; callers must not drop the record locally when an error returns.
func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/purchase-orders/%d", id), nil, nil)
}

// do issues one request and decodes the response into out (when out is
// non-nil). Failures are logged and returned unmodified to the caller.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("api request", "method", method, "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("no response from service", "method", method, "url", url, "error", err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeAPIError(resp.StatusCode, respBody)
		c.logger.Error("service returned error",
			"method", method, "url", url,
			"status", resp.StatusCode, "body", strings.TrimSpace(string(respBody)))
		return apiErr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
