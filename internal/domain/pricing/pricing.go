// Package pricing derives the monetary totals of estimates and services.
// All functions are pure; the caller re-runs them whenever line items change.
package pricing

import "obrafacil/internal/domain/entities"

// Subtotal sums quantity times unit value over every item.
func Subtotal(items []entities.Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Quantity * it.Value
	}
	return sum
}

// FeeTotal sums every extra fee.
func FeeTotal(fees []entities.ExtraFee) float64 {
	var sum float64
	for _, f := range fees {
		sum += f.Value
	}
	return sum
}

// Total computes the grand total. When the client supplies materials the
// items subtotal is excluded. The result is not clamped at zero; a discount
// larger than subtotal+fees yields a negative total, which validation
// rejects before anything is persisted.
func Total(items []entities.Item, fees []entities.ExtraFee, discount float64, clientMaterial bool) float64 {
	subtotal := Subtotal(items)
	if clientMaterial {
		subtotal = 0
	}
	return subtotal + FeeTotal(fees) - discount
}
