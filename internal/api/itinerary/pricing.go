package itinerary

import (
	"math"

	"github.com/FACorreiaa/go-itinerary-gen/internal/types"
)

// CalculatePricing derives the price breakdown from party composition and
// the deposit rule. Pure function; the currency symbol plays no part in the
// arithmetic.
//
// Percent deposits round half away from zero (math.Round). A fixed deposit
// is used as-is and not clamped to the total, so balance can go negative.
func CalculatePricing(req types.TripRequest) types.Pricing {
	total := float64(req.Adults)*req.AdultPrice + float64(req.Children)*req.ChildPrice

	var deposit float64
	if req.DepositType == types.DepositPercent {
		deposit = math.Round(total * req.DepositValue / 100)
	} else {
		deposit = req.DepositValue
	}

	return types.Pricing{
		Total:   total,
		Deposit: deposit,
		Balance: total - deposit,
	}
}
