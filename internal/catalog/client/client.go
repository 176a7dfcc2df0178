// Package client provides an HTTP client for the product API: the product
// listing, single products and order submission.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/internal/cart/domain"
)

// FetchError is a network failure or a status outside {200, 201}.
type FetchError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s returned %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the product API answered 404.
func (e *FetchError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Contact is the buyer block of an order, keyed by form field name.
type Contact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Email     string `json:"email"`
}

// OrderRequest is the body of POST products/order.
type OrderRequest struct {
	Contact  Contact  `json:"contact"`
	Products []string `json:"products"`
}

// OrderResponse is the product API's answer to an order.
type OrderResponse struct {
	OrderID string `json:"orderId"`
}

// Config configures the product API client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is an HTTP client for the product API. Calls are single-shot: no retry.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a product API client. BaseURL is joined with relative paths
// such as "products", so it normally ends with a slash.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	base := strings.TrimSpace(cfg.BaseURL)
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	return &Client{baseURL: base, httpClient: httpClient}
}

// ListProducts fetches GET {baseUrl}products.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "products", nil, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// GetProduct fetches GET {baseUrl}products/{id}.
func (c *Client) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodGet, "products/"+url.PathEscape(id), nil, &product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

// SubmitOrder posts an order to {baseUrl}products/order.
func (c *Client) SubmitOrder(ctx context.Context, req OrderRequest) (OrderResponse, error) {
	var resp OrderResponse
	if err := c.do(ctx, http.MethodPost, "products/order", req, &resp); err != nil {
		return OrderResponse{}, err
	}
	if strings.TrimSpace(resp.OrderID) == "" {
		return OrderResponse{}, &FetchError{
			Method:     http.MethodPost,
			URL:        c.baseURL + "products/order",
			StatusCode: http.StatusOK,
			Err:        fmt.Errorf("response carries no orderId"),
		}
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	endpoint := c.baseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &FetchError{Method: method, URL: endpoint, Err: err}
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return &FetchError{Method: method, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &FetchError{Method: method, URL: endpoint, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Method: method, URL: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
