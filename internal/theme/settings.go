// Package theme loads the widget's configuration: the serialized mapping
// and benefit lists, storefront routes, and the widget identity used to
// derive the section-rendering id for cart requests.
package theme

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"voyagecover.io/recommender-web/internal/recommend"
)

const widgetIDPrefix = "product-recommender-"

// CTA types for the result card action.
const (
	CTAAddToCart = "add_to_cart"
	CTANavigate  = "navigate"
)

// Routes points the widget at the storefront's external endpoints. Empty
// values select the built-in demo backends.
type Routes struct {
	// CatalogBaseURL is the storefront root; products are read from
	// {CatalogBaseURL}/products/{handle}.js.
	CatalogBaseURL string `yaml:"catalog_base_url"`
	// CartAddURL is the form-POST cart mutation endpoint.
	CartAddURL string `yaml:"cart_add_url"`
	// ProductBaseURL prefixes product page paths for the navigate CTA.
	ProductBaseURL string `yaml:"product_base_url"`
}

// Settings is the widget configuration consumed at attach time.
type Settings struct {
	// WidgetID is the widget's own element identifier; the section id sent
	// with cart requests is derived from it.
	WidgetID string `yaml:"widget_id"`
	CTAType  string `yaml:"cta_type"`
	Routes   Routes `yaml:"routes"`
	// MappingsJSON and BenefitsJSON hold the serialized block lists the
	// theme editor emits.
	MappingsJSON string `yaml:"mappings_json"`
	BenefitsJSON string `yaml:"benefits_json"`

	mappings []recommend.Mapping
	benefits []recommend.Benefit
}

// Default returns demo settings: built-in backends, add-to-cart CTA.
func Default() Settings {
	s := Settings{
		WidgetID: widgetIDPrefix + "main",
		CTAType:  CTAAddToCart,
	}
	return s
}

// Load reads the settings file and decodes the embedded mapping and benefit
// JSON. A malformed embedded list degrades to an empty list with a warning;
// a malformed or unreadable file is an error.
func Load(path string, log *zap.Logger) (Settings, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("theme: read settings: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("theme: parse settings: %w", err)
	}
	if s.WidgetID == "" {
		s.WidgetID = widgetIDPrefix + "main"
	}
	if s.CTAType != CTANavigate {
		s.CTAType = CTAAddToCart
	}
	s.decodeBlocks(log)
	return s, nil
}

func (s *Settings) decodeBlocks(log *zap.Logger) {
	var err error
	s.mappings, err = recommend.ParseMappings(s.MappingsJSON)
	if err != nil {
		log.Warn("theme: malformed mappings config, ignoring", zap.Error(err))
		s.mappings = nil
	}
	s.benefits, err = recommend.ParseBenefits(s.BenefitsJSON)
	if err != nil {
		log.Warn("theme: malformed benefits config, ignoring", zap.Error(err))
		s.benefits = nil
	}
}

// Mappings returns the configured rule list (possibly empty).
func (s Settings) Mappings() []recommend.Mapping { return s.mappings }

// Benefits returns the configured benefit blocks (possibly empty).
func (s Settings) Benefits() []recommend.Benefit { return s.benefits }

// SectionID derives the section-rendering identifier from the widget id.
func (s Settings) SectionID() string {
	return strings.TrimPrefix(s.WidgetID, widgetIDPrefix)
}

// ProductURL builds the product page path for the navigate CTA.
func (s Settings) ProductURL(handle string) string {
	base := strings.TrimRight(strings.TrimSpace(s.Routes.ProductBaseURL), "/")
	return base + "/products/" + handle
}
