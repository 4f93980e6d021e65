package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDiscountPrice(t *testing.T) {
	cases := []struct {
		name  string
		price float64
		want  float64
	}{
		{"below mid tier unchanged", 20, 20.00},
		{"mid tier lower bound inclusive", 30, 27.00},
		{"inside mid tier", 40, 36.00},
		{"upper bound 50 stays in mid tier", 50, 45.00},
		{"just above 50 gets bulk tier", 51, 40.80},
		{"bulk tier", 100, 80.00},
		{"just below mid tier unchanged", 29.99, 29.99},
		{"rounding in bulk tier", 50.01, 40.01},
		{"zero", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, DiscountPrice(tc.price), 1e-9)
		})
	}
}

func TestDiscountPriceNeverExceedsListPrice(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cents := rapid.Int64Range(0, 100000).Draw(t, "cents")
		price := float64(cents) / 100

		got := DiscountPrice(price)
		if got > price {
			t.Fatalf("DiscountPrice(%v) = %v, exceeds list price", price, got)
		}
	})
}

func TestDiscountPriceMonotoneWithinTier(t *testing.T) {
	tiers := []struct {
		name     string
		min, max int64 // cents
	}{
		{"no-discount tier", 0, 2999},
		{"ten-percent tier", 3000, 5000},
		{"twenty-percent tier", 5001, 100000},
	}

	for _, tier := range tiers {
		t.Run(tier.name, func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				a := rapid.Int64Range(tier.min, tier.max).Draw(t, "a")
				b := rapid.Int64Range(tier.min, tier.max).Draw(t, "b")
				if a > b {
					a, b = b, a
				}

				lo := DiscountPrice(float64(a) / 100)
				hi := DiscountPrice(float64(b) / 100)
				if lo > hi {
					t.Fatalf("discount not monotone: f(%d cents)=%v > f(%d cents)=%v", a, lo, b, hi)
				}
			})
		})
	}
}
