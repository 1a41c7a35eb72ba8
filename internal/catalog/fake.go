package catalog

import (
	"fmt"
)

// Demo catalog served when no storefront base URL is configured. The ids
// line up with the built-in recommendation table so the widget works end to
// end without a live store.
var fakeProducts = map[string]Product{
	"travel-document-check": {
		ID:          8099666395172,
		Title:       "Travel Document Check",
		Handle:      "travel-document-check",
		BodyHTML:    "<p>Verification and protection for your travel documents, with replacement support while abroad.</p>",
		Description: "Verification and protection for your travel documents.",
		Image:       &Image{ID: 37221019910180, Src: "https://cdn.example.com/products/travel-document-check-standard.jpg"},
		Images: []Image{
			{ID: 37221019910180, Src: "https://cdn.example.com/products/travel-document-check-standard.jpg"},
			{ID: 37221020631076, Src: "https://cdn.example.com/products/travel-document-check-premium.jpg"},
		},
		Variants: []Variant{
			{ID: 43165258088484, Title: "Standard", Price: Price{value: 20, isString: true, set: true}, Available: true, ImageID: 37221019910180},
			{ID: 43165258121252, Title: "Premium", Price: Price{value: 40, isString: true, set: true}, Available: true, ImageID: 37221020631076},
		},
	},
	"flight-delay-coverage": {
		ID:          8099666231332,
		Title:       "Flight Delay Coverage",
		Handle:      "flight-delay-coverage",
		BodyHTML:    "<p>Compensation when your flight runs late, plus missed connection support.</p>",
		Description: "Compensation when your flight runs late.",
		Image:       &Image{ID: 37220987273252, Src: "https://cdn.example.com/products/flight-delay-standard.jpg"},
		Images: []Image{
			{ID: 37220987273252, Src: "https://cdn.example.com/products/flight-delay-standard.jpg"},
			{ID: 37220987797540, Src: "https://cdn.example.com/products/flight-delay-premium.jpg"},
		},
		Variants: []Variant{
			{ID: 43165258481700, Title: "Standard", Price: Price{value: 50, isString: true, set: true}, Available: true, ImageID: 37220987273252},
			{ID: 43165258514468, Title: "Premium", Price: Price{value: 80, isString: true, set: true}, Available: true, ImageID: 37220987797540},
		},
	},
	"trip-cancellation-insurance": {
		ID:          8099664429092,
		Title:       "Trip Cancellation Insurance",
		Handle:      "trip-cancellation-insurance",
		BodyHTML:    "<p>Reimbursement for prepaid, non-refundable trip costs when plans fall through.</p>",
		Description: "Reimbursement for prepaid trip costs.",
		Image:       &Image{ID: 37220980031524, Src: "https://cdn.example.com/products/trip-cancellation-standard.jpg"},
		Images: []Image{
			{ID: 37220980031524, Src: "https://cdn.example.com/products/trip-cancellation-standard.jpg"},
			{ID: 37220981768228, Src: "https://cdn.example.com/products/trip-cancellation-premium.jpg"},
		},
		Variants: []Variant{
			{ID: 43165258874916, Title: "Standard", Price: Price{value: 50, isString: true, set: true}, Available: true, ImageID: 37220980031524},
			{ID: 43165258907684, Title: "Premium", Price: Price{value: 70, isString: true, set: true}, Available: true, ImageID: 37220981768228},
		},
	},
}

func fakeProduct(handle string) (Product, error) {
	if p, ok := fakeProducts[handle]; ok {
		return p, nil
	}
	return Product{}, fmt.Errorf("catalog: product %s status %d: not found", handle, 404)
}
