// Package catalog reads live product data from the storefront's product
// JSON endpoint and resolves which variant and image to display.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 8 * time.Second

// ErrEmptyHandle is returned when a mapping's product reference resolves to
// nothing usable.
var ErrEmptyHandle = errors.New("catalog: empty product handle")

// Client fetches product JSON from the storefront. When baseURL is empty,
// the client serves the built-in demo catalog.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewClient constructs a catalog client rooted at the storefront base URL.
func NewClient(baseURL string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		log: log,
	}
}

// Product fetches the full product JSON for a configured product reference.
// Any transport, status or parse failure is returned as an error; callers
// drop the product and render nothing.
func (c *Client) Product(ctx context.Context, ref string) (Product, error) {
	handle := Handle(ref)
	if handle == "" {
		return Product{}, ErrEmptyHandle
	}
	if c == nil || c.baseURL == "" {
		return fakeProduct(handle)
	}

	endpoint, err := url.JoinPath(c.baseURL, "products", handle+".js")
	if err != nil {
		return Product{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Product{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Product{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Product{}, fmt.Errorf("catalog: product %s status %d: %s", handle, resp.StatusCode, drainError(resp.Body))
	}

	var p Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return Product{}, fmt.Errorf("catalog: decode product %s: %w", handle, err)
	}
	return p, nil
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}
