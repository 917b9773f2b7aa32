//go:build unit || e2e

package builder

import (
	"time"

	"charmforge/internal/domain/bracelet"
	"charmforge/internal/domain/charm"
	"charmforge/internal/usecase/commands"

	"github.com/google/uuid"
)

type BraceletBuilder struct {
	ID             uuid.UUID
	Slug           string
	Name           string
	PathD          string
	LengthMm       int32
	BasePriceCents int64
	IsActive       bool
}

func NewBraceletBuilder() *BraceletBuilder {
	return &BraceletBuilder{
		ID:             uuid.New(),
		Slug:           "classic-chain",
		Name:           "Classic Chain",
		PathD:          "M 0 0 L 180 0",
		LengthMm:       180,
		BasePriceCents: 3000,
		IsActive:       true,
	}
}

func (b *BraceletBuilder) With(mutate func(*BraceletBuilder)) *BraceletBuilder {
	mutate(b)
	return b
}

func (b *BraceletBuilder) BuildDomain() (*bracelet.Bracelet, error) {
	return bracelet.NewBracelet(b.ID, b.Slug, b.Name, b.PathD, b.LengthMm, b.BasePriceCents, b.IsActive, time.Now())
}

func (b *BraceletBuilder) BuildSnapshot() *commands.BraceletSnapshot {
	return &commands.BraceletSnapshot{
		ID:             b.ID,
		Slug:           b.Slug,
		Name:           b.Name,
		PathD:          b.PathD,
		LengthMm:       b.LengthMm,
		BasePriceCents: b.BasePriceCents,
		IsActive:       b.IsActive,
	}
}

func (b *BraceletBuilder) WithSlug(slug string) *BraceletBuilder {
	b.Slug = slug
	return b
}

func (b *BraceletBuilder) WithBasePriceCents(cents int64) *BraceletBuilder {
	b.BasePriceCents = cents
	return b
}

func (b *BraceletBuilder) AsInactive() *BraceletBuilder {
	b.IsActive = false
	return b
}

type CharmBuilder struct {
	ID             uuid.UUID
	Sku            string
	Name           string
	PriceCents     int64
	WidthMm        float64
	HeightMm       float64
	MaxPerBracelet int32
	Stock          int32
	IsActive       bool
}

func NewCharmBuilder() *CharmBuilder {
	return &CharmBuilder{
		ID:             uuid.New(),
		Sku:            "CHM-STAR",
		Name:           "Star",
		PriceCents:     500,
		WidthMm:        8,
		HeightMm:       6,
		MaxPerBracelet: 10,
		Stock:          25,
		IsActive:       true,
	}
}

func (c *CharmBuilder) With(mutate func(*CharmBuilder)) *CharmBuilder {
	mutate(c)
	return c
}

func (c *CharmBuilder) BuildDomain() (*charm.Charm, error) {
	return charm.NewCharm(c.ID, c.Sku, c.Name, c.PriceCents, c.WidthMm, c.HeightMm, c.MaxPerBracelet, c.Stock, c.IsActive, time.Now())
}

func (c *CharmBuilder) BuildSnapshot() *commands.CharmSnapshot {
	return &commands.CharmSnapshot{
		ID:             c.ID,
		Sku:            c.Sku,
		Name:           c.Name,
		PriceCents:     c.PriceCents,
		WidthMm:        c.WidthMm,
		HeightMm:       c.HeightMm,
		MaxPerBracelet: c.MaxPerBracelet,
		Stock:          c.Stock,
		IsActive:       c.IsActive,
	}
}

func (c *CharmBuilder) WithID(id uuid.UUID) *CharmBuilder {
	c.ID = id
	return c
}

func (c *CharmBuilder) WithSku(sku string) *CharmBuilder {
	c.Sku = sku
	return c
}

func (c *CharmBuilder) WithPriceCents(cents int64) *CharmBuilder {
	c.PriceCents = cents
	return c
}

func (c *CharmBuilder) WithStock(stock int32) *CharmBuilder {
	c.Stock = stock
	return c
}

func (c *CharmBuilder) WithMaxPerBracelet(max int32) *CharmBuilder {
	c.MaxPerBracelet = max
	return c
}

func (c *CharmBuilder) AsInactive() *CharmBuilder {
	c.IsActive = false
	return c
}
