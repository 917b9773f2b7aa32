package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type PlacementView struct {
	CharmID     uuid.UUID `json:"charm_id"`
	CharmSku    string    `json:"charm_sku"`
	CharmName   string    `json:"charm_name"`
	T           float64   `json:"t"`
	OffsetMm    float64   `json:"offset_mm"`
	RotationDeg float64   `json:"rotation_deg"`
	ZIndex      int32     `json:"z_index"`
	Quantity    int32     `json:"quantity"`
}

type DesignView struct {
	ID               uuid.UUID       `json:"id"`
	BraceletID       uuid.UUID       `json:"bracelet_id"`
	BraceletSlug     string          `json:"bracelet_slug"`
	BraceletName     string          `json:"bracelet_name"`
	BraceletPathD    string          `json:"bracelet_path_d"`
	BraceletLengthMm int32           `json:"bracelet_length_mm"`
	UserID           *uuid.UUID      `json:"user_id,omitempty"`
	Placements       []PlacementView `json:"placements"`
	SubtotalCents    int64           `json:"subtotal_cents"`
	DiscountCents    int64           `json:"discount_cents"`
	TotalCents       int64           `json:"total_cents"`
	Currency         string          `json:"currency"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type BraceletView struct {
	ID             uuid.UUID `json:"id"`
	Slug           string    `json:"slug"`
	Name           string    `json:"name"`
	PathD          string    `json:"path_d"`
	LengthMm       int32     `json:"length_mm"`
	BasePriceCents int64     `json:"base_price_cents"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CharmView struct {
	ID             uuid.UUID `json:"id"`
	Sku            string    `json:"sku"`
	Name           string    `json:"name"`
	PriceCents     int64     `json:"price_cents"`
	WidthMm        float64   `json:"width_mm"`
	HeightMm       float64   `json:"height_mm"`
	MaxPerBracelet int32     `json:"max_per_bracelet"`
	Stock          int32     `json:"stock"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// PlacementPreview is a placement resolved to path-unit coordinates through
// the geometry engine.
type PlacementPreview struct {
	CharmID  uuid.UUID `json:"charm_id"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	AngleDeg float64   `json:"angle_deg"`
	ZIndex   int32     `json:"z_index"`
	Quantity int32     `json:"quantity"`
}

type DesignPreview struct {
	DesignID   uuid.UUID          `json:"design_id"`
	ViewBoxPx  float64            `json:"view_box_px"`
	PxPerMm    float64            `json:"px_per_mm"`
	Placements []PlacementPreview `json:"placements"`
}
