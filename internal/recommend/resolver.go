package recommend

import (
	"voyagecover.io/recommender-web/internal/wizard"
)

// Match scans the configured mapping list for the completed selections.
// First rule with a result wins:
//
//  1. exact match on trip type, cost range and coverage level
//  2. coverage level and trip type both match (cost range ignored)
//  3. coverage level alone matches
//  4. the first mapping in the list, if any
func Match(mappings []Mapping, sel wizard.Selections) (Mapping, bool) {
	for _, m := range mappings {
		s := m.Settings
		if s.TripType == string(sel.Trip) && s.CostRange == string(sel.Cost) && s.CoverageLevel == string(sel.Cover) {
			return m, true
		}
	}
	for _, m := range mappings {
		s := m.Settings
		if s.CoverageLevel == string(sel.Cover) && s.TripType == string(sel.Trip) {
			return m, true
		}
	}
	for _, m := range mappings {
		if m.Settings.CoverageLevel == string(sel.Cover) {
			return m, true
		}
	}
	if len(mappings) > 0 {
		return mappings[0], true
	}
	return Mapping{}, false
}

// Resolve picks the single mapping to recommend for completed selections.
// A configured match without a product reference is not usable, so it falls
// through to the built-in default table.
func Resolve(mappings []Mapping, sel wizard.Selections) (Mapping, bool) {
	if m, ok := Match(mappings, sel); ok && m.Usable() {
		return m, true
	}
	d := DefaultFor(sel)
	if !d.Usable() {
		return Mapping{}, false
	}
	return d, true
}
