package recommend

import (
	"voyagecover.io/recommender-web/internal/wizard"
)

// Catalog identifiers for the built-in recommendation bundles.
const (
	handleDocumentCheck    = "travel-document-check"
	handleFlightDelay      = "flight-delay-coverage"
	handleTripCancellation = "trip-cancellation-insurance"
)

type comboKey struct {
	trip  string
	cost  string
	cover string
}

type variantRef struct {
	variantID   string
	variantName string
	imageID     string
	price       string
}

// Per-product variant references. Max coverage reuses the premium variant
// but keeps its own override copy.
var (
	documentCheckStandard = variantRef{"43165258088484", "Standard", "37221019910180", "$20.00"}
	documentCheckPremium  = variantRef{"43165258121252", "Premium", "37221020631076", "$40.00"}

	flightDelayStandard = variantRef{"43165258481700", "Standard", "37220987273252", "$50.00"}
	flightDelayPremium  = variantRef{"43165258514468", "Premium", "37220987797540", "$80.00"}

	tripCancellationStandard = variantRef{"43165258874916", "Standard", "37220980031524", "$50.00"}
	tripCancellationPremium  = variantRef{"43165258907684", "Premium", "37220981768228", "$70.00"}
)

var defaultProductIDs = map[string]string{
	handleDocumentCheck:    "8099666395172",
	handleFlightDelay:      "8099666231332",
	handleTripCancellation: "8099664429092",
}

func defaultEntry(key comboKey, product string, ref variantRef, title, copy string) (comboKey, Mapping) {
	return key, Mapping{Settings: MappingSettings{
		TripType:      key.trip,
		CostRange:     key.cost,
		CoverageLevel: key.cover,
		Product:       product,
		ProductID:     defaultProductIDs[product],
		VariantID:     ref.variantID,
		VariantName:   ref.variantName,
		ImageID:       ref.imageID,
		OverrideTitle: title,
		OverrideCopy:  copy,
		OverridePrice: ref.price,
	}}
}

// defaultTable maps every {trip}x{cost}x{cover} combination to a literal
// recommendation bundle.
var defaultTable = buildDefaultTable()

func buildDefaultTable() map[comboKey]Mapping {
	t := map[comboKey]Mapping{}
	add := func(key comboKey, product string, ref variantRef, title, copy string) {
		k, m := defaultEntry(key, product, ref, title, copy)
		t[k] = m
	}

	// Single trip.
	add(comboKey{"single", "under_500", "standard"}, handleDocumentCheck, documentCheckStandard,
		"Basic Travel Protection",
		"Perfect for short trips under €500. Essential coverage for peace of mind.")
	add(comboKey{"single", "under_500", "premium"}, handleDocumentCheck, documentCheckPremium,
		"Premium Travel Protection",
		"Enhanced coverage for your budget-friendly trip. Includes medical and trip cancellation.")
	add(comboKey{"single", "under_500", "max"}, handleDocumentCheck, documentCheckPremium,
		"Maximum Travel Protection",
		"Comprehensive coverage for your trip. Full protection including medical, cancellation, and baggage.")
	add(comboKey{"single", "500_1500", "standard"}, handleFlightDelay, flightDelayStandard,
		"Standard Travel Insurance",
		"Reliable coverage for mid-range trips. Essential protection for your journey.")
	add(comboKey{"single", "500_1500", "premium"}, handleFlightDelay, flightDelayPremium,
		"Premium Travel Insurance",
		"Enhanced protection for your mid-range trip. Comprehensive medical and cancellation coverage.")
	add(comboKey{"single", "500_1500", "max"}, handleFlightDelay, flightDelayPremium,
		"Maximum Travel Insurance",
		"Complete protection for your trip. All-inclusive coverage for peace of mind.")
	add(comboKey{"single", "over_1500", "standard"}, handleTripCancellation, tripCancellationStandard,
		"Standard Premium Coverage",
		"Essential protection for high-value trips. Reliable coverage for your investment.")
	add(comboKey{"single", "over_1500", "premium"}, handleTripCancellation, tripCancellationPremium,
		"Premium High-Value Coverage",
		"Enhanced protection for premium trips. Comprehensive medical, cancellation, and baggage coverage.")
	add(comboKey{"single", "over_1500", "max"}, handleTripCancellation, tripCancellationPremium,
		"Maximum Premium Coverage",
		"Ultimate protection for your premium trip. Full coverage including medical emergencies, trip cancellation, and premium benefits.")

	// Multi trip.
	add(comboKey{"multi", "under_500", "standard"}, handleDocumentCheck, documentCheckStandard,
		"Multi-Trip Basic Protection",
		"Coverage for multiple budget trips throughout the year. Essential protection for frequent travelers.")
	add(comboKey{"multi", "under_500", "premium"}, handleDocumentCheck, documentCheckPremium,
		"Multi-Trip Premium Protection",
		"Enhanced multi-trip coverage for budget travelers. Comprehensive protection for all your trips.")
	add(comboKey{"multi", "under_500", "max"}, handleDocumentCheck, documentCheckPremium,
		"Multi-Trip Maximum Protection",
		"Complete multi-trip coverage. Full protection for all your budget trips throughout the year.")
	add(comboKey{"multi", "500_1500", "standard"}, handleFlightDelay, flightDelayStandard,
		"Multi-Trip Standard Coverage",
		"Reliable multi-trip protection for mid-range travelers. Essential coverage for frequent trips.")
	add(comboKey{"multi", "500_1500", "premium"}, handleFlightDelay, flightDelayPremium,
		"Multi-Trip Premium Coverage",
		"Enhanced multi-trip protection. Comprehensive coverage for all your mid-range journeys.")
	add(comboKey{"multi", "500_1500", "max"}, handleFlightDelay, flightDelayPremium,
		"Multi-Trip Maximum Coverage",
		"Complete multi-trip protection. All-inclusive coverage for frequent mid-range travelers.")
	add(comboKey{"multi", "over_1500", "standard"}, handleTripCancellation, tripCancellationStandard,
		"Multi-Trip Premium Standard",
		"Essential multi-trip protection for high-value travelers. Reliable coverage for premium trips.")
	add(comboKey{"multi", "over_1500", "premium"}, handleTripCancellation, tripCancellationPremium,
		"Multi-Trip Premium Plus",
		"Enhanced multi-trip protection for premium travelers. Comprehensive coverage for all your high-value trips.")
	add(comboKey{"multi", "over_1500", "max"}, handleTripCancellation, tripCancellationPremium,
		"Multi-Trip Ultimate Coverage",
		"Ultimate multi-trip protection. Complete coverage for frequent premium travelers with maximum benefits.")

	return t
}

// DefaultFor returns the built-in recommendation bundle for the given
// selections. Unknown combinations (partial selections included) fall back
// to a generic mid-range bundle.
func DefaultFor(sel wizard.Selections) Mapping {
	key := comboKey{string(sel.Trip), string(sel.Cost), string(sel.Cover)}
	if m, ok := defaultTable[key]; ok {
		return m
	}
	return genericFallback(sel)
}

func genericFallback(sel wizard.Selections) Mapping {
	trip := string(sel.Trip)
	if trip == "" {
		trip = "single"
	}
	cost := string(sel.Cost)
	if cost == "" {
		cost = "500_1500"
	}
	cover := string(sel.Cover)
	if cover == "" {
		cover = "standard"
	}
	return Mapping{Settings: MappingSettings{
		TripType:      trip,
		CostRange:     cost,
		CoverageLevel: cover,
		Product:       handleFlightDelay,
		ProductID:     defaultProductIDs[handleFlightDelay],
		VariantID:     flightDelayStandard.variantID,
		VariantName:   flightDelayStandard.variantName,
		ImageID:       flightDelayStandard.imageID,
		OverrideTitle: "Travel Protection Plan",
		OverrideCopy:  "Comprehensive travel protection tailored to your needs. Get peace of mind for your journey.",
		OverridePrice: "$50.00",
	}}
}
