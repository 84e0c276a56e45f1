package shipping

import "strings"

// Delivery fee tiers in BDT.
const (
	FeeUndetermined = 0
	FeeInsideDhaka  = 70
	FeeSpecialArea  = 90
	FeeOutside      = 130
)

// Fee classifies a committed district/city pair into a delivery fee tier.
// The special-area rule is checked before the district rule, so a special
// city inside Dhaka district never falls through to the Dhaka rate.
func Fee(district, city string) float64 {
	if district == "" && city == "" {
		return FeeUndetermined
	}
	if isSpecialArea(district, city) {
		return FeeSpecialArea
	}
	if district == "Dhaka" {
		return FeeInsideDhaka
	}
	return FeeOutside
}

func isSpecialArea(district, city string) bool {
	return city == "Demra" ||
		strings.Contains(city, "Savar") ||
		district == "Gazipur" ||
		strings.Contains(city, "Keraniganj")
}
