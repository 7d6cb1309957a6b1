package booking

import (
	"math"

	"lumea/models"
)

// Platform fee: 5% of the cart subtotal with a £2 floor, distributed
// across items in proportion to their subtotal. Deposits are 20% of the
// item total.
const (
	serviceChargeRate = 0.05
	minServiceCharge  = 2.00
	depositRate       = 0.20
)

// BuildPaymentBreakdowns computes the per-item charge for a validated
// cart. Pure function, invoked once per checkout attempt.
func BuildPaymentBreakdowns(items []models.CartItem) []models.PaymentBreakdown {
	var cartSubtotal float64
	for _, item := range items {
		cartSubtotal += itemSubtotal(item)
	}

	totalCharge := 0.0
	if cartSubtotal > 0 {
		totalCharge = math.Max(cartSubtotal*serviceChargeRate, minServiceCharge)
	}

	breakdowns := make([]models.PaymentBreakdown, len(items))
	for i, item := range items {
		sub := itemSubtotal(item)
		var charge float64
		if cartSubtotal > 0 {
			charge = round2(totalCharge * (sub / cartSubtotal))
		}
		total := round2(sub + charge)

		b := models.PaymentBreakdown{
			ItemSubtotal:  sub,
			ServiceCharge: charge,
			Total:         total,
			PaymentType:   item.PaymentType,
		}
		if item.PaymentType == models.PaymentDeposit {
			b.DepositAmount = round2(total * depositRate)
			b.AmountPaid = b.DepositAmount
			b.RemainingBalance = round2(total - b.DepositAmount)
		} else {
			b.PaymentType = models.PaymentFull
			b.AmountPaid = total
		}
		breakdowns[i] = b
	}
	return breakdowns
}

func itemSubtotal(item models.CartItem) float64 {
	sub := item.BasePrice
	for _, p := range item.AddOnPrices {
		sub += p
	}
	return sub
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
