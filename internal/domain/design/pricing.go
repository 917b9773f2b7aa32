package design

import (
	"github.com/google/uuid"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Discount tiers are keyed on the total requested charm count and applied to
// the whole subtotal (base price + charm cost), not to charm cost alone.
const (
	tierSmallCount = 5
	tierLargeCount = 10

	tierSmallRatePct = 5
	tierLargeRatePct = 10

	FreeShippingThresholdCents = 7500
	FlatShippingCents          = 495
)

// PricedPlacement is the pricing view of a placement: which charm, how many.
type PricedPlacement struct {
	CharmID  uuid.UUID
	Quantity int32
}

// Quote holds the computed totals in integer cents.
type Quote struct {
	SubtotalCents int64
	DiscountCents int64
	TotalCents    int64
	CharmCount    int32
}

// PriceDesign computes subtotal, tiered discount and total for a bracelet
// plus a placement set. Placements whose charm id is absent from the price
// map contribute zero cost but their quantity still counts toward the
// discount tier; resolving ids is the validator's job, not pricing's.
// Pure and deterministic, all arithmetic in integer cents.
func PriceDesign(basePriceCents int64, placements []PricedPlacement, priceByCharm map[uuid.UUID]int64) Quote {
	var charmsSum int64
	var count int32

	for _, p := range placements {
		count += p.Quantity
		if price, ok := priceByCharm[p.CharmID]; ok {
			charmsSum += price * int64(p.Quantity)
		}
	}

	subtotal := basePriceCents + charmsSum

	var ratePct int64
	switch {
	case count >= tierLargeCount:
		ratePct = tierLargeRatePct
	case count >= tierSmallCount:
		ratePct = tierSmallRatePct
	}

	// Integer division truncates toward zero, which rounds the discount down
	// and never underprices the seller.
	discount := subtotal * ratePct / 100

	return Quote{
		SubtotalCents: subtotal,
		DiscountCents: discount,
		TotalCents:    subtotal - discount,
		CharmCount:    count,
	}
}

// CalculateShipping is a flat rate with a free-shipping threshold.
func CalculateShipping(totalCents int64) int64 {
	if totalCents >= FreeShippingThresholdCents {
		return 0
	}
	return FlatShippingCents
}

// FormatPrice renders cents for display in the given locale. Display only,
// never used in price computation.
func FormatPrice(cents int64, currencyCode, locale string) string {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		unit = currency.EUR
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	amount := unit.Amount(float64(cents) / 100.0)
	return message.NewPrinter(tag).Sprint(currency.Symbol(amount))
}
