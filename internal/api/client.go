// Package api is the admin console's HTTP client adapter for the
// product-catalog backend. It owns the 1-based to 0-based page index
// translation, wire field alias normalization, and the conversion of
// every possible failure into a single human-readable message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/linhqtruong/productcatalogmanager/internal/catalog"
)

// Doer executes HTTP requests. Satisfied by both httpclient.Client and
// httpclient.CircuitBreakerClient.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Client is the typed catalog API client.
type Client struct {
	baseURL string
	http    Doer
	logger  *slog.Logger
	debug   bool
}

// New creates a Client. baseURL must not have a trailing slash; one is
// trimmed if present. When debug is enabled, every request and response
// is logged at debug level.
func New(baseURL string, doer Doer, logger *slog.Logger, debug bool) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
		logger:  logger,
		debug:   debug,
	}
}

// ListProducts fetches one page of the product list. The 1-based page
// in req is translated to the backend's 0-based index here and nowhere
// else.
func (c *Client) ListProducts(ctx context.Context, req catalog.PageRequest) (catalog.PageResult, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(req.Page-1))
	q.Set("size", strconv.Itoa(req.Size))
	q.Set("search", req.Search)
	if req.SortField != "" {
		q.Set("sort", sortParam[req.SortField]+","+string(req.SortDirection))
	}

	var page wirePage
	if err := c.do(ctx, http.MethodGet, "/products?"+q.Encode(), nil, &page); err != nil {
		return catalog.PageResult{}, err
	}
	return page.normalize(), nil
}

// GetProduct fetches a single product by key.
func (c *Client) GetProduct(ctx context.Context, key int64) (catalog.Product, error) {
	var p wireProduct
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", key), nil, &p); err != nil {
		return catalog.Product{}, err
	}
	return p.normalize(), nil
}

// CreateProduct creates a product and returns the stored record,
// including the backend-assigned key.
func (c *Client) CreateProduct(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	body := wireProductBody{
		Name:        p.Name,
		Description: p.Description,
		Retailer:    p.Retailer,
		Brand:       p.Brand,
		Model:       p.Model,
		Price:       p.Price,
	}
	var created wireProduct
	if err := c.do(ctx, http.MethodPost, "/products", body, &created); err != nil {
		return catalog.Product{}, err
	}
	return created.normalize(), nil
}

// UpdateProduct replaces the product stored under key.
func (c *Client) UpdateProduct(ctx context.Context, key int64, p catalog.Product) (catalog.Product, error) {
	body := wireProductBody{
		Name:        p.Name,
		Description: p.Description,
		Retailer:    p.Retailer,
		Brand:       p.Brand,
		Model:       p.Model,
		Price:       p.Price,
	}
	var updated wireProduct
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", key), body, &updated); err != nil {
		return catalog.Product{}, err
	}
	return updated.normalize(), nil
}

// DeleteProduct removes the product stored under key.
func (c *Client) DeleteProduct(ctx context.Context, key int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", key), nil, nil)
}

// BrandSummary fetches the full brand aggregate in one call.
func (c *Client) BrandSummary(ctx context.Context) ([]catalog.BrandCount, error) {
	var rows []catalog.BrandCount
	if err := c.do(ctx, http.MethodGet, "/products/brand-summary", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// do performs one round trip and decodes the response into out (when
// out is non-nil). Every failure path returns an *Error with a
// non-empty message; no raw transport error escapes.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader = http.NoBody
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return normalizeLocal(err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return normalizeLocal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.debug {
		c.logger.Debug("api request",
			slog.String("method", method),
			slog.String("path", path),
		)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		apiErr := normalizeTransport(err)
		c.logger.Warn("api call failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", apiErr.Message),
		)
		return apiErr
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return normalizeLocal(err)
	}

	if c.debug {
		c.logger.Debug("api response",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int("bytes", len(respBody)),
		)
	}

	if resp.StatusCode >= 400 {
		apiErr := normalizeStatus(resp.StatusCode, respBody)
		c.logger.Warn("api call failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("error", apiErr.Message),
		)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return normalizeLocal(err)
		}
	}
	return nil
}
