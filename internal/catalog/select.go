package catalog

import (
	"strconv"
	"strings"
)

// PickVariant chooses the variant to display. Precedence: exact numeric id
// match, case-insensitive exact or substring title match on the configured
// name, first available variant, first variant. The second return is false
// only when the product has no variants at all.
func PickVariant(p Product, variantID, variantName string) (Variant, bool) {
	if id, err := strconv.ParseInt(strings.TrimSpace(variantID), 10, 64); err == nil {
		for _, v := range p.Variants {
			if v.ID == id {
				return v, true
			}
		}
	}
	if name := strings.ToLower(strings.TrimSpace(variantName)); name != "" {
		for _, v := range p.Variants {
			title := strings.ToLower(v.Title)
			if title == name || strings.Contains(title, name) {
				return v, true
			}
		}
	}
	for _, v := range p.Variants {
		if v.Available {
			return v, true
		}
	}
	if len(p.Variants) > 0 {
		return p.Variants[0], true
	}
	return Variant{}, false
}

// PickImage resolves the display image URL by priority: the product image
// matching the mapping's configured image id, the image matching the
// variant's image reference, the variant's featured image, the product's
// featured image, then the product's first listed image.
func PickImage(p Product, v Variant, imageID string) (string, bool) {
	if id, err := strconv.ParseInt(strings.TrimSpace(imageID), 10, 64); err == nil {
		if src := imageByID(p.Images, id); src != "" {
			return src, true
		}
	}
	if v.ImageID != 0 {
		if src := imageByID(p.Images, v.ImageID); src != "" {
			return src, true
		}
	}
	if src := v.FeaturedImage.URL(); src != "" {
		return src, true
	}
	if src := p.Image.URL(); src != "" {
		return src, true
	}
	if len(p.Images) > 0 {
		if src := p.Images[0].URL(); src != "" {
			return src, true
		}
	}
	return "", false
}

func imageByID(images []Image, id int64) string {
	for i := range images {
		if images[i].ID == id {
			return images[i].URL()
		}
	}
	return ""
}
