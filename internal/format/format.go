package format

import (
	"fmt"
	"math"
	"strings"
)

// USD formats a decimal dollar amount as "$" plus two decimals.
// Example: USD(50) => "$50.00"
func USD(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	cents := int64(math.Round(amount * 100))
	major := cents / 100
	minor := cents % 100
	out := "$" + thousandSep(major) + fmt.Sprintf(".%02d", minor)
	if neg {
		return "-" + out
	}
	return out
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	return out
}

// Percent converts a 0..1 fraction to a whole percentage, clamped.
func Percent(fraction float64) int {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return int(math.Round(fraction * 100))
}

// CollapseSpace squeezes runs of whitespace into single spaces and trims.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
