package recommend

import (
	"encoding/json"
	"strings"
)

// Mapping is a configured recommendation rule. The settings bag mirrors the
// theme editor block schema: the three selection predicates are optional,
// the product reference is required for the rule to produce a result.
type Mapping struct {
	Settings MappingSettings `json:"settings"`
}

// MappingSettings carries the rule predicates and the target bundle.
type MappingSettings struct {
	TripType      string `json:"trip_type,omitempty"`
	CostRange     string `json:"cost_range,omitempty"`
	CoverageLevel string `json:"coverage_level,omitempty"`
	Product       string `json:"product,omitempty"`
	ProductID     string `json:"product_id,omitempty"`
	VariantID     string `json:"variant_id,omitempty"`
	VariantName   string `json:"variant_name,omitempty"`
	ImageID       string `json:"image_id,omitempty"`
	OverrideTitle string `json:"override_title,omitempty"`
	OverrideCopy  string `json:"override_copy,omitempty"`
	OverridePrice string `json:"override_price,omitempty"`
}

// Usable reports whether the mapping can be rendered at all. A mapping
// without a product reference is never a valid match outcome.
func (m Mapping) Usable() bool {
	return strings.TrimSpace(m.Settings.Product) != ""
}

// Benefit is a configured benefit block. Only the text is consumed by
// rendering; icon fields are carried for theme parity.
type Benefit struct {
	Settings BenefitSettings `json:"settings"`
}

// BenefitSettings is the theme editor bag for one benefit line.
type BenefitSettings struct {
	BenefitText  string `json:"benefit_text,omitempty"`
	IconType     string `json:"icon_type,omitempty"`
	IconName     string `json:"icon_name,omitempty"`
	BenefitImage string `json:"benefit_image,omitempty"`
}

// ParseMappings decodes a serialized mapping list.
func ParseMappings(raw string) ([]Mapping, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var out []Mapping
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseBenefits decodes a serialized benefit list.
func ParseBenefits(raw string) ([]Benefit, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var out []Benefit
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BenefitTexts extracts the non-empty texts from configured benefits,
// preserving order.
func BenefitTexts(benefits []Benefit) []string {
	out := make([]string, 0, len(benefits))
	for _, b := range benefits {
		if t := strings.TrimSpace(b.Settings.BenefitText); t != "" {
			out = append(out, t)
		}
	}
	return out
}
