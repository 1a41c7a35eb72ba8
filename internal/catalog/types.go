package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Product mirrors the storefront's product JSON representation.
type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Handle      string    `json:"handle"`
	Description string    `json:"description"`
	BodyHTML    string    `json:"body_html"`
	Image       *Image    `json:"image"`
	Images      []Image   `json:"images"`
	Variants    []Variant `json:"variants"`
}

// Variant is one purchasable configuration of a product.
type Variant struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Price         Price  `json:"price"`
	Available     bool   `json:"available"`
	ImageID       int64  `json:"image_id"`
	FeaturedImage *Image `json:"featured_image"`
}

// Image is a product image reference. The endpoint serves images either as
// bare URL strings or as {id, src} objects, so decoding accepts both.
type Image struct {
	ID  int64  `json:"id"`
	Src string `json:"src"`
}

func (i *Image) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var src string
		if err := json.Unmarshal(data, &src); err != nil {
			return err
		}
		*i = Image{Src: src}
		return nil
	}
	type plain Image
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*i = Image(p)
	return nil
}

// URL returns the image source, empty when unset.
func (i *Image) URL() string {
	if i == nil {
		return ""
	}
	return strings.TrimSpace(i.Src)
}

// Price decodes the endpoint's two price encodings: a decimal string
// ("50.00") or a bare number. Numeric values above 1000 are taken to be
// minor units (cents).
type Price struct {
	value    float64
	isString bool
	set      bool
}

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil // unparsable price string behaves as unset
		}
		*p = Price{value: v, isString: true, set: true}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Price{value: v, set: true}
	return nil
}

// Set reports whether the variant carried a usable price.
func (p Price) Set() bool { return p.set }

// Amount returns the price in decimal currency units, applying the cents
// heuristic to numeric encodings.
func (p Price) Amount() float64 {
	if p.isString {
		return p.value
	}
	if p.value > 1000 {
		return p.value / 100
	}
	return p.value
}

// Handle extracts the product handle from a configured reference: only the
// final path segment is used, so both "travel-document-check" and
// "products/travel-document-check" resolve the same way.
func Handle(ref string) string {
	ref = strings.TrimSpace(ref)
	ref = strings.Trim(ref, "/")
	if i := strings.LastIndexByte(ref, '/'); i != -1 {
		ref = ref[i+1:]
	}
	return ref
}
