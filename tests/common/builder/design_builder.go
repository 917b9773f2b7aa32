//go:build unit || e2e

package builder

import (
	"time"

	domdesign "charmforge/internal/domain/design"
	reqdto "charmforge/internal/handler/dto/request"
	"charmforge/internal/usecase/commands"
	"charmforge/internal/usecase/queries"

	"github.com/google/uuid"
)

type DesignBuilder struct {
	BraceletSlug string
	Currency     string
	UserID       *uuid.UUID
	Placements   []reqdto.PlacementRequest
}

func NewDesignBuilder() *DesignBuilder {
	return &DesignBuilder{
		BraceletSlug: "classic-chain",
		Currency:     "EUR",
		Placements: []reqdto.PlacementRequest{
			{CharmID: uuid.New(), T: 0.25, Quantity: 1},
		},
	}
}

func (d *DesignBuilder) With(mutate func(*DesignBuilder)) *DesignBuilder {
	mutate(d)
	return d
}

// Build methods
func (d *DesignBuilder) BuildDTO() reqdto.CreateDesignRequest {
	return reqdto.CreateDesignRequest{
		BraceletSlug: d.BraceletSlug,
		Currency:     d.Currency,
		Placements:   d.Placements,
	}
}

func (d *DesignBuilder) BuildDomain(braceletID uuid.UUID, quote domdesign.Quote) (*domdesign.Design, error) {
	placements := make([]domdesign.Placement, 0, len(d.Placements))
	for _, p := range d.Placements {
		built, violations := domdesign.NewPlacement(p.CharmID, p.T, p.OffsetMm, p.RotationDeg, p.ZIndex, p.Quantity)
		if len(violations) > 0 {
			return nil, violations[0]
		}
		placements = append(placements, built)
	}
	return domdesign.NewDesign(braceletID, d.UserID, placements, quote, d.Currency, time.Now())
}

func (d *DesignBuilder) BuildReadModel() *queries.DesignView {
	now := time.Now()
	placements := make([]queries.PlacementView, 0, len(d.Placements))
	for _, p := range d.Placements {
		placements = append(placements, queries.PlacementView{
			CharmID:     p.CharmID,
			CharmSku:    "CHM-STAR",
			CharmName:   "Star",
			T:           p.T,
			OffsetMm:    p.OffsetMm,
			RotationDeg: p.RotationDeg,
			ZIndex:      p.ZIndex,
			Quantity:    p.Quantity,
		})
	}
	return &queries.DesignView{
		ID:               uuid.New(),
		BraceletID:       uuid.New(),
		BraceletSlug:     d.BraceletSlug,
		BraceletName:     "Classic Chain",
		BraceletPathD:    "M 0 0 L 180 0",
		BraceletLengthMm: 180,
		UserID:           d.UserID,
		Placements:       placements,
		SubtotalCents:    3500,
		DiscountCents:    0,
		TotalCents:       3500,
		Currency:         d.Currency,
		Status:           domdesign.StatusDraft.String(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Fluent builder methods
func (d *DesignBuilder) WithBraceletSlug(slug string) *DesignBuilder {
	d.BraceletSlug = slug
	return d
}

func (d *DesignBuilder) WithCurrency(currency string) *DesignBuilder {
	d.Currency = currency
	return d
}

func (d *DesignBuilder) WithUserID(userID *uuid.UUID) *DesignBuilder {
	d.UserID = userID
	return d
}

func (d *DesignBuilder) WithPlacements(placements ...reqdto.PlacementRequest) *DesignBuilder {
	d.Placements = placements
	return d
}

func (d *DesignBuilder) AddPlacement(charmID uuid.UUID, t float64, quantity int32) *DesignBuilder {
	d.Placements = append(d.Placements, reqdto.PlacementRequest{CharmID: charmID, T: t, Quantity: quantity})
	return d
}

type OrderBuilder struct {
	DesignID         uuid.UUID
	UserID           *uuid.UUID
	AmountCents      int64
	Currency         string
	PaymentReference string
	PaymentSessionID string
	PaymentURL       string
	Status           string
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		DesignID:         uuid.New(),
		AmountCents:      3995,
		Currency:         "EUR",
		PaymentReference: uuid.NewString(),
		PaymentSessionID: "cs_test_123",
		PaymentURL:       "https://checkout.example/cs_test_123",
		Status:           commands.OrderStatusPending,
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) BuildRecord() *commands.OrderRecord {
	now := time.Now()
	return &commands.OrderRecord{
		ID:               uuid.New(),
		DesignID:         o.DesignID,
		UserID:           o.UserID,
		AmountCents:      o.AmountCents,
		Currency:         o.Currency,
		PaymentReference: o.PaymentReference,
		PaymentSessionID: o.PaymentSessionID,
		PaymentURL:       o.PaymentURL,
		Status:           o.Status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (o *OrderBuilder) WithStatus(status string) *OrderBuilder {
	o.Status = status
	return o
}

func (o *OrderBuilder) WithDesignID(designID uuid.UUID) *OrderBuilder {
	o.DesignID = designID
	return o
}

func (o *OrderBuilder) WithPaymentReference(reference string) *OrderBuilder {
	o.PaymentReference = reference
	return o
}
