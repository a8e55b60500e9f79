package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"obrafacil/internal/domain/entities"
	"obrafacil/internal/domain/pricing"
)

func TestTotal(t *testing.T) {
	items := []entities.Item{{Description: "Cimento", Quantity: 2, Value: 50}}
	fees := []entities.ExtraFee{{Description: "Frete", Value: 10}}

	tests := []struct {
		name           string
		items          []entities.Item
		fees           []entities.ExtraFee
		discount       float64
		clientMaterial bool
		want           float64
	}{
		{name: "items plus fees minus discount", items: items, fees: fees, discount: 5, want: 105},
		{name: "client material excludes item costs", items: items, fees: fees, discount: 5, clientMaterial: true, want: 5},
		{name: "no fees no discount", items: items, want: 100},
		{name: "empty everything", want: 0},
		{name: "discount above subtotal goes negative", items: items, discount: 150, want: -50},
		{name: "fractional quantity", items: []entities.Item{{Quantity: 2.5, Value: 10}}, want: 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.Total(tc.items, tc.fees, tc.discount, tc.clientMaterial)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSubtotalAndFeeTotal(t *testing.T) {
	items := []entities.Item{
		{Quantity: 2, Value: 50},
		{Quantity: 1, Value: 30.5},
	}
	assert.Equal(t, 130.5, pricing.Subtotal(items))
	assert.Equal(t, 0.0, pricing.Subtotal(nil))

	fees := []entities.ExtraFee{{Value: 10}, {Value: 2.5}}
	assert.Equal(t, 12.5, pricing.FeeTotal(fees))
	assert.Equal(t, 0.0, pricing.FeeTotal(nil))
}
