package usecase

import "math"

// Discount tiers applied to the list price for display and for the unit price
// captured on add-to-cart.
const (
	bulkDiscountThreshold = 50 // strictly above this price: 20% off
	midDiscountThreshold  = 30 // from this price up: 10% off
)

// DiscountPrice computes the displayed discount price for a list price,
// rounded to two decimals. A price of exactly 50 falls in the 10% tier
// because the upper test is strict.
func DiscountPrice(price float64) float64 {
	switch {
	case price > bulkDiscountThreshold:
		return roundCents(price * 0.80)
	case price >= midDiscountThreshold:
		return roundCents(price * 0.90)
	default:
		return roundCents(price)
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
