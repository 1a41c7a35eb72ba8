package recommend

// Built-in benefit lists keyed by coverage level, used when no benefit
// blocks are configured.
var defaultBenefits = map[string][]string{
	"standard": {
		"24/7 Travel Assistance",
		"Trip Cancellation Coverage",
		"Medical Emergency Protection",
	},
	"premium": {
		"24/7 Travel Assistance",
		"Trip Cancellation & Interruption",
		"Medical Emergency & Evacuation",
		"Baggage Loss & Delay Coverage",
		"Flight Delay Compensation",
	},
	"max": {
		"24/7 Premium Travel Assistance",
		"Full Trip Cancellation & Interruption",
		"Comprehensive Medical & Evacuation",
		"Baggage Loss, Delay & Theft Coverage",
		"Flight Delay & Missed Connection",
		"Travel Document Replacement",
		"Emergency Cash Transfer",
	},
}

// DefaultBenefits returns the built-in benefit texts for a coverage level.
// Unknown or empty levels get the standard list.
func DefaultBenefits(coverageLevel string) []string {
	if list, ok := defaultBenefits[coverageLevel]; ok {
		return list
	}
	return defaultBenefits["standard"]
}
