// Package cart submits add-to-cart requests to the storefront's cart
// endpoint and decodes its AJAX reply contract.
package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 8 * time.Second

// ErrMissingVariant is returned when no variant id is provided.
var ErrMissingVariant = errors.New("cart: missing variant id")

// AddRequest carries one line to add to the cart.
type AddRequest struct {
	VariantID int64
	Quantity  int
	// SectionID asks the endpoint to return a pre-rendered fragment for
	// that page region alongside the cart items.
	SectionID string
}

// AddResult is the endpoint's JSON reply. A set Status marks an
// application-level error (e.g. sold out); Items and Sections are only
// present on success.
type AddResult struct {
	Status   StatusCode                 `json:"status,omitempty"`
	Message  string                     `json:"message,omitempty"`
	Items    []json.RawMessage          `json:"items,omitempty"`
	Sections map[string]json.RawMessage `json:"sections,omitempty"`
}

// Err reports whether the reply carries an application-level error flag.
func (r AddResult) Err() bool { return r.Status != "" }

// ErrorMessage returns the shopper-facing message for a failed add.
func (r AddResult) ErrorMessage() string {
	if m := strings.TrimSpace(r.Message); m != "" {
		return m
	}
	return "Failed to add product to cart"
}

// StatusCode tolerates both string and numeric status encodings in the
// cart reply.
type StatusCode string

func (s *StatusCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = StatusCode(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = StatusCode(n.String())
	return nil
}

// Client posts cart mutations. When addURL is empty, the client serves the
// built-in demo cart.
type Client struct {
	addURL string
	http   *http.Client
	log    *zap.Logger
}

// NewClient constructs a cart client for the configured cart-add endpoint.
func NewClient(addURL string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		addURL: strings.TrimSpace(addURL),
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		log: log,
	}
}

// Add submits a form-encoded add-to-cart request with the AJAX submission
// headers the storefront expects. Transport failures are returned as
// errors; application-level failures come back inside the result.
func (c *Client) Add(ctx context.Context, req AddRequest) (AddResult, error) {
	if req.VariantID == 0 {
		return AddResult{}, ErrMissingVariant
	}
	qty := req.Quantity
	if qty <= 0 {
		qty = 1
	}
	if c == nil || c.addURL == "" {
		return fakeAddResult(req.VariantID, qty, req.SectionID), nil
	}

	form := url.Values{}
	form.Set("id", strconv.FormatInt(req.VariantID, 10))
	form.Set("quantity", strconv.Itoa(qty))
	if req.SectionID != "" {
		form.Set("sections", req.SectionID)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.addURL, strings.NewReader(form.Encode()))
	if err != nil {
		return AddResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("X-Requested-With", "XMLHttpRequest")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return AddResult{}, err
	}
	defer resp.Body.Close()

	// Application errors arrive as JSON with a status flag, often on a
	// non-2xx response; decode the body either way.
	var result AddResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return AddResult{}, fmt.Errorf("cart: decode add reply status %d: %w", resp.StatusCode, err)
	}
	return result, nil
}
