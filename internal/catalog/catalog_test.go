package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"travel-document-check", "travel-document-check"},
		{"products/travel-document-check", "travel-document-check"},
		{"/collections/all/products/flight-delay-coverage/", "flight-delay-coverage"},
		{"  trip-cancellation-insurance  ", "trip-cancellation-insurance"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Handle(c.in); got != c.want {
			t.Fatalf("Handle(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPriceDecoding(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{`"50.00"`, 50},   // decimal string
		{`5000`, 50},      // minor units
		{`50`, 50},        // already major units
		{`"1999.99"`, 1999.99},
		{`999`, 999},
	}
	for _, c := range cases {
		var p Price
		if err := json.Unmarshal([]byte(c.raw), &p); err != nil {
			t.Fatalf("decode %s: %v", c.raw, err)
		}
		if !p.Set() {
			t.Fatalf("decode %s: expected price set", c.raw)
		}
		if got := p.Amount(); got != c.want {
			t.Fatalf("decode %s: Amount() = %v, want %v", c.raw, got, c.want)
		}
	}

	var p Price
	if err := json.Unmarshal([]byte(`"call us"`), &p); err != nil {
		t.Fatalf("unparsable price string should not error: %v", err)
	}
	if p.Set() {
		t.Fatalf("unparsable price string should behave as unset")
	}
}

func TestImageDecodingBothShapes(t *testing.T) {
	var fromString Image
	if err := json.Unmarshal([]byte(`"https://cdn.example.com/a.jpg"`), &fromString); err != nil {
		t.Fatalf("decode string image: %v", err)
	}
	if fromString.URL() != "https://cdn.example.com/a.jpg" {
		t.Fatalf("unexpected url %q", fromString.URL())
	}

	var fromObject Image
	if err := json.Unmarshal([]byte(`{"id":7,"src":"https://cdn.example.com/b.jpg"}`), &fromObject); err != nil {
		t.Fatalf("decode object image: %v", err)
	}
	if fromObject.ID != 7 || fromObject.URL() != "https://cdn.example.com/b.jpg" {
		t.Fatalf("unexpected image %+v", fromObject)
	}
}

func variantFixture() Product {
	return Product{
		ID:    1,
		Title: "Trip Cover",
		Image: &Image{ID: 10, Src: "https://cdn.example.com/product.jpg"},
		Images: []Image{
			{ID: 10, Src: "https://cdn.example.com/product.jpg"},
			{ID: 11, Src: "https://cdn.example.com/premium.jpg"},
		},
		Variants: []Variant{
			{ID: 100, Title: "Standard Plan", Available: false},
			{ID: 101, Title: "Premium Plan", Available: true, ImageID: 11},
		},
	}
}

func TestPickVariantPrecedence(t *testing.T) {
	p := variantFixture()

	if v, ok := PickVariant(p, "100", "Premium"); !ok || v.ID != 100 {
		t.Fatalf("id match should win: got %+v ok=%v", v, ok)
	}
	if v, ok := PickVariant(p, "", "premium plan"); !ok || v.ID != 101 {
		t.Fatalf("exact name match failed: got %+v ok=%v", v, ok)
	}
	if v, ok := PickVariant(p, "", "standard"); !ok || v.ID != 100 {
		t.Fatalf("substring name match failed: got %+v ok=%v", v, ok)
	}
	if v, ok := PickVariant(p, "999", "no-such-name"); !ok || v.ID != 101 {
		t.Fatalf("expected first available fallback: got %+v ok=%v", v, ok)
	}

	none := Product{Variants: []Variant{{ID: 100, Available: false}, {ID: 101, Available: false}}}
	if v, ok := PickVariant(none, "", ""); !ok || v.ID != 100 {
		t.Fatalf("expected first variant fallback: got %+v ok=%v", v, ok)
	}
	if _, ok := PickVariant(Product{}, "", ""); ok {
		t.Fatalf("expected no variant for empty product")
	}
}

func TestPickImagePriority(t *testing.T) {
	p := variantFixture()
	v := p.Variants[1]

	if src, ok := PickImage(p, v, "11"); !ok || src != "https://cdn.example.com/premium.jpg" {
		t.Fatalf("mapping image id should win: %q ok=%v", src, ok)
	}
	if src, ok := PickImage(p, v, ""); !ok || src != "https://cdn.example.com/premium.jpg" {
		t.Fatalf("variant image id should win next: %q ok=%v", src, ok)
	}

	featured := Variant{ID: 102, FeaturedImage: &Image{Src: "https://cdn.example.com/featured.jpg"}}
	if src, ok := PickImage(Product{}, featured, ""); !ok || src != "https://cdn.example.com/featured.jpg" {
		t.Fatalf("featured image fallback failed: %q ok=%v", src, ok)
	}
	if src, ok := PickImage(p, Variant{}, ""); !ok || src != "https://cdn.example.com/product.jpg" {
		t.Fatalf("product image fallback failed: %q ok=%v", src, ok)
	}
	if _, ok := PickImage(Product{}, Variant{}, ""); ok {
		t.Fatalf("expected no image for bare product")
	}
}

func TestClientFetchesProductJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/travel-document-check.js" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("expected Accept: application/json, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 8099666395172,
			"title": "Travel Document Check",
			"handle": "travel-document-check",
			"variants": [{"id": 43165258088484, "title": "Standard", "price": "20.00", "available": true}]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	p, err := c.Product(context.Background(), "products/travel-document-check")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 8099666395172 || len(p.Variants) != 1 {
		t.Fatalf("unexpected product %+v", p)
	}
	if got := p.Variants[0].Price.Amount(); got != 20 {
		t.Fatalf("expected price 20, got %v", got)
	}
}

func TestClientReturnsErrorOnNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Product(context.Background(), "gone-product")
	if err == nil {
		t.Fatalf("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "status 404") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestClientEmptyHandle(t *testing.T) {
	c := NewClient("", nil)
	if _, err := c.Product(context.Background(), "   "); err != ErrEmptyHandle {
		t.Fatalf("expected ErrEmptyHandle, got %v", err)
	}
}

func TestClientFakeCatalog(t *testing.T) {
	c := NewClient("", nil)
	p, err := c.Product(context.Background(), "flight-delay-coverage")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 8099666231332 {
		t.Fatalf("unexpected demo product id %d", p.ID)
	}
	if _, err := c.Product(context.Background(), "no-such-handle"); err == nil {
		t.Fatalf("expected error for unknown demo product")
	}
}
