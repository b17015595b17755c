package utils

import "github.com/shopspring/decimal"

// LeadCost retorna amount / leads arredondado em duas casas, ou nil quando não há leads
func LeadCost(amount, leads int64) *float64 {
	if leads == 0 {
		return nil
	}

	cost, _ := decimal.NewFromInt(amount).
		DivRound(decimal.NewFromInt(leads), 2).
		Float64()

	return &cost
}
