// Package apiclient provides a typed HTTP client for the sales API. It is
// the single place that understands the wire format, so callers work with
// model types and never touch JSON.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/model"
)

// Client talks to the sales API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// New creates a Client for the API at baseURL. A nil httpClient falls back
// to a client with a sane default timeout.
func New(baseURL string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		logger:  logger.With().Str("component", "apiclient").Logger(),
	}
}

// APIError is a non-2xx response from the API. Message carries the server's
// own error text when the body provided one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug().
			Int("status", resp.StatusCode).
			Str("path", path).
			Msg("API request failed")
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw, resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(normalizeList(raw), out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// errorMessage extracts the server-provided error text from an error body,
// falling back to a generic message built from the status code.
func errorMessage(raw []byte, status int) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return fmt.Sprintf("HTTP error, status %d", status)
}

// normalizeList unwraps the {"value": [...]} envelope some deployments put
// around list responses. Bare arrays and objects pass through untouched.
func normalizeList(raw []byte) []byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return raw
	}
	var envelope struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Value) == 0 {
		return raw
	}
	inner := bytes.TrimLeft(envelope.Value, " \t\r\n")
	if len(inner) > 0 && inner[0] == '[' {
		return envelope.Value
	}
	return raw
}

// ListCustomers returns all customers. The result is never nil.
func (c *Client) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	customers := []model.Customer{}
	if err := c.do(ctx, http.MethodGet, "/api/customers", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) GetCustomer(ctx context.Context, id int) (*model.Customer, error) {
	var customer model.Customer
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/customers/%d", id), nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) CreateCustomer(ctx context.Context, req model.CustomerRequest) (*model.Customer, error) {
	var customer model.Customer
	if err := c.do(ctx, http.MethodPost, "/api/customers", req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id int, req model.CustomerUpdate) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/customers/%d", id), req, nil)
}

func (c *Client) DeleteCustomer(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/customers/%d", id), nil, nil)
}

// ListProducts returns all products. The result is never nil.
func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	var product model.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, req model.ProductRequest) (*model.Product, error) {
	var product model.Product
	if err := c.do(ctx, http.MethodPost, "/api/products", req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int, req model.ProductUpdate) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", id), req, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, nil)
}

// ListOrders returns all orders with their items. The result is never nil.
func (c *Client) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id int) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CreateOrder(ctx context.Context, req model.OrderRequest) (*model.OrderCreated, error) {
	var created model.OrderCreated
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id int, req model.OrderUpdate) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/orders/%d", id), req, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/orders/%d", id), nil, nil)
}

func (c *Client) SalesSummary(ctx context.Context) (*model.SalesSummary, error) {
	var summary model.SalesSummary
	if err := c.do(ctx, http.MethodGet, "/api/reports/sales-summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// PendingOrders returns orders still in progress. The result is never nil.
func (c *Client) PendingOrders(ctx context.Context) ([]model.PendingOrder, error) {
	pending := []model.PendingOrder{}
	if err := c.do(ctx, http.MethodGet, "/api/reports/pending-orders", nil, &pending); err != nil {
		return nil, err
	}
	return pending, nil
}

// TopCustomers returns customers ranked by order count. The result is never nil.
func (c *Client) TopCustomers(ctx context.Context) ([]model.TopCustomer, error) {
	top := []model.TopCustomer{}
	if err := c.do(ctx, http.MethodGet, "/api/reports/top-customers", nil, &top); err != nil {
		return nil, err
	}
	return top, nil
}

func (c *Client) Analyze(ctx context.Context, text string) (*model.AnalyzeResult, error) {
	var result model.AnalyzeResult
	if err := c.do(ctx, http.MethodPost, "/api/analyze", model.AnalyzeRequest{Text: text}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
