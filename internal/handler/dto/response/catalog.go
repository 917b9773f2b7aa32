package response

import (
	"time"

	"charmforge/internal/usecase/queries"

	"github.com/google/uuid"
)

type BraceletResponse struct {
	ID             uuid.UUID `json:"id"`
	Slug           string    `json:"slug"`
	Name           string    `json:"name"`
	PathD          string    `json:"pathD"`
	LengthMm       int32     `json:"lengthMm"`
	BasePriceCents int64     `json:"basePriceCents"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CharmResponse struct {
	ID             uuid.UUID `json:"id"`
	Sku            string    `json:"sku"`
	Name           string    `json:"name"`
	PriceCents     int64     `json:"priceCents"`
	WidthMm        float64   `json:"widthMm"`
	HeightMm       float64   `json:"heightMm"`
	MaxPerBracelet int32     `json:"maxPerBracelet"`
	Stock          int32     `json:"stock"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromBraceletView(view *queries.BraceletView) *BraceletResponse {
	return &BraceletResponse{
		ID:             view.ID,
		Slug:           view.Slug,
		Name:           view.Name,
		PathD:          view.PathD,
		LengthMm:       view.LengthMm,
		BasePriceCents: view.BasePriceCents,
		IsActive:       view.IsActive,
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	}
}

func FromCharmView(view *queries.CharmView) *CharmResponse {
	return &CharmResponse{
		ID:             view.ID,
		Sku:            view.Sku,
		Name:           view.Name,
		PriceCents:     view.PriceCents,
		WidthMm:        view.WidthMm,
		HeightMm:       view.HeightMm,
		MaxPerBracelet: view.MaxPerBracelet,
		Stock:          view.Stock,
		IsActive:       view.IsActive,
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	}
}
