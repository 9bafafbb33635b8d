package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-itinerary-gen/internal/types"
)

func TestCalculatePricing(t *testing.T) {
	tests := []struct {
		name     string
		req      types.TripRequest
		expected types.Pricing
	}{
		{
			name: "percent deposit",
			req: types.TripRequest{
				Adults: 5, AdultPrice: 4500,
				DepositType: types.DepositPercent, DepositValue: 30,
			},
			expected: types.Pricing{Total: 22500, Deposit: 6750, Balance: 15750},
		},
		{
			name: "percent deposit rounds half away from zero",
			req: types.TripRequest{
				Adults: 1, AdultPrice: 980,
				DepositType: types.DepositPercent, DepositValue: 2.5,
			},
			// 980 * 0.025 = 24.5 -> 25
			expected: types.Pricing{Total: 980, Deposit: 25, Balance: 955},
		},
		{
			name: "mixed party with fixed deposit",
			req: types.TripRequest{
				Adults: 2, AdultPrice: 1000,
				Children: 1, ChildPrice: 500,
				DepositType: types.DepositFixed, DepositValue: 2000,
			},
			expected: types.Pricing{Total: 2500, Deposit: 2000, Balance: 500},
		},
		{
			name: "fixed deposit above total is not clamped",
			req: types.TripRequest{
				Adults: 1, AdultPrice: 800,
				DepositType: types.DepositFixed, DepositValue: 1000,
			},
			expected: types.Pricing{Total: 800, Deposit: 1000, Balance: -200},
		},
		{
			name: "zero party",
			req: types.TripRequest{
				DepositType: types.DepositPercent, DepositValue: 30,
			},
			expected: types.Pricing{Total: 0, Deposit: 0, Balance: 0},
		},
		{
			name: "children only",
			req: types.TripRequest{
				Children: 3, ChildPrice: 350,
				DepositType: types.DepositPercent, DepositValue: 50,
			},
			expected: types.Pricing{Total: 1050, Deposit: 525, Balance: 525},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculatePricing(tt.req))
		})
	}
}
