package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	s, err := Load("", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.WidgetID != "product-recommender-main" {
		t.Fatalf("unexpected widget id %q", s.WidgetID)
	}
	if s.CTAType != CTAAddToCart {
		t.Fatalf("expected add-to-cart CTA, got %q", s.CTAType)
	}
	if len(s.Mappings()) != 0 || len(s.Benefits()) != 0 {
		t.Fatalf("defaults should carry no configured blocks")
	}
}

func TestLoadFullSettings(t *testing.T) {
	path := writeSettings(t, `
widget_id: product-recommender-sidebar
cta_type: navigate
routes:
  catalog_base_url: https://shop.example.com
  cart_add_url: https://shop.example.com/cart/add.js
  product_base_url: https://shop.example.com
mappings_json: '[{"settings":{"coverage_level":"standard","product":"travel-document-check"}}]'
benefits_json: '[{"settings":{"benefit_text":"24/7 Travel Assistance"}}]'
`)
	s, err := Load(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.CTAType != CTANavigate {
		t.Fatalf("expected navigate CTA, got %q", s.CTAType)
	}
	if got := s.SectionID(); got != "sidebar" {
		t.Fatalf("expected section id sidebar, got %q", got)
	}
	if len(s.Mappings()) != 1 {
		t.Fatalf("expected one mapping, got %d", len(s.Mappings()))
	}
	if len(s.Benefits()) != 1 {
		t.Fatalf("expected one benefit, got %d", len(s.Benefits()))
	}
	if got := s.ProductURL("travel-document-check"); got != "https://shop.example.com/products/travel-document-check" {
		t.Fatalf("unexpected product url %q", got)
	}
}

func TestLoadMalformedEmbeddedJSONDegradesToEmpty(t *testing.T) {
	path := writeSettings(t, `
widget_id: product-recommender-main
mappings_json: '[{"settings": broken'
benefits_json: 'also broken'
`)
	s, err := Load(path, nil)
	if err != nil {
		t.Fatalf("malformed embedded JSON should not fail the load: %v", err)
	}
	if len(s.Mappings()) != 0 || len(s.Benefits()) != 0 {
		t.Fatalf("malformed blocks should degrade to empty lists")
	}
}

func TestLoadUnknownCTATypeNormalized(t *testing.T) {
	path := writeSettings(t, "cta_type: teleport\n")
	s, err := Load(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.CTAType != CTAAddToCart {
		t.Fatalf("unknown CTA type should normalize to add-to-cart, got %q", s.CTAType)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil); err == nil {
		t.Fatalf("expected error for missing settings file")
	}
}
