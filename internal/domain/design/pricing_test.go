//go:build unit

package design_test

import (
	"testing"

	"charmforge/internal/domain/design"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPriceDesign(t *testing.T) {
	charmID := uuid.New()

	// 3000 base, one charm type at 500 cents
	priceDesign := func(quantity int32) design.Quote {
		return design.PriceDesign(
			3000,
			[]design.PricedPlacement{{CharmID: charmID, Quantity: quantity}},
			map[uuid.UUID]int64{charmID: 500},
		)
	}

	t.Run("discount tiers", func(t *testing.T) {
		cases := []struct {
			name         string
			quantity     int32
			wantSubtotal int64
			wantDiscount int64
			wantTotal    int64
		}{
			{name: "below small tier", quantity: 4, wantSubtotal: 5000, wantDiscount: 0, wantTotal: 5000},
			{name: "small tier boundary", quantity: 5, wantSubtotal: 5500, wantDiscount: 275, wantTotal: 5225},
			{name: "just below large tier", quantity: 9, wantSubtotal: 7500, wantDiscount: 375, wantTotal: 7125},
			{name: "large tier boundary", quantity: 10, wantSubtotal: 8000, wantDiscount: 800, wantTotal: 7200},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				quote := priceDesign(c.quantity)
				assert.Equal(t, c.wantSubtotal, quote.SubtotalCents)
				assert.Equal(t, c.wantDiscount, quote.DiscountCents)
				assert.Equal(t, c.wantTotal, quote.TotalCents)
				assert.Equal(t, c.quantity, quote.CharmCount)
			})
		}
	})

	t.Run("discount is floored", func(t *testing.T) {
		// 5 charms at 101 over a 3 base: subtotal 508, 5% = 25.4 → 25
		quote := design.PriceDesign(
			3,
			[]design.PricedPlacement{{CharmID: charmID, Quantity: 5}},
			map[uuid.UUID]int64{charmID: 101},
		)
		assert.Equal(t, int64(508), quote.SubtotalCents)
		assert.Equal(t, int64(25), quote.DiscountCents)
		assert.Equal(t, int64(483), quote.TotalCents)
	})

	t.Run("quantities sum across placements of the same charm", func(t *testing.T) {
		quote := design.PriceDesign(
			3000,
			[]design.PricedPlacement{
				{CharmID: charmID, Quantity: 3},
				{CharmID: charmID, Quantity: 2},
			},
			map[uuid.UUID]int64{charmID: 500},
		)
		assert.Equal(t, int32(5), quote.CharmCount)
		assert.Equal(t, int64(5500), quote.SubtotalCents)
		assert.Equal(t, int64(275), quote.DiscountCents)
	})

	t.Run("unpriced charm counts toward tier but costs nothing", func(t *testing.T) {
		unknown := uuid.New()
		quote := design.PriceDesign(
			3000,
			[]design.PricedPlacement{
				{CharmID: charmID, Quantity: 4},
				{CharmID: unknown, Quantity: 1},
			},
			map[uuid.UUID]int64{charmID: 500},
		)
		// 5 charms reach the tier even though only 4 are priced
		assert.Equal(t, int32(5), quote.CharmCount)
		assert.Equal(t, int64(5000), quote.SubtotalCents)
		assert.Equal(t, int64(250), quote.DiscountCents)
		assert.Equal(t, int64(4750), quote.TotalCents)
	})

	t.Run("no placements", func(t *testing.T) {
		quote := design.PriceDesign(3000, nil, nil)
		assert.Equal(t, int64(3000), quote.SubtotalCents)
		assert.Equal(t, int64(0), quote.DiscountCents)
		assert.Equal(t, int64(3000), quote.TotalCents)
		assert.Equal(t, int32(0), quote.CharmCount)
	})
}

func TestCalculateShipping(t *testing.T) {
	cases := []struct {
		name  string
		total int64
		want  int64
	}{
		{name: "below threshold", total: 7499, want: 495},
		{name: "at threshold", total: 7500, want: 0},
		{name: "above threshold", total: 12000, want: 0},
		{name: "zero total", total: 0, want: 495},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, design.CalculateShipping(c.total))
		})
	}
}

func TestFormatPrice(t *testing.T) {
	t.Run("contains currency symbol", func(t *testing.T) {
		formatted := design.FormatPrice(5225, "EUR", "nl-NL")
		assert.Contains(t, formatted, "€")
		assert.Contains(t, formatted, "52")
	})

	t.Run("unknown currency falls back to EUR", func(t *testing.T) {
		formatted := design.FormatPrice(100, "???", "nl-NL")
		assert.Contains(t, formatted, "€")
	})
}
