package request

import (
	"github.com/google/uuid"
)

// PlacementRequest carries raw placement fields. Bounds are enforced by the
// domain so every violation can be reported at once; binding tags only guard
// structural requirements.
type PlacementRequest struct {
	CharmID     uuid.UUID `json:"charm_id" binding:"required"`
	T           float64   `json:"t"`
	OffsetMm    float64   `json:"offset_mm"`
	RotationDeg float64   `json:"rotation_deg"`
	ZIndex      int32     `json:"z_index"`
	Quantity    int32     `json:"quantity" binding:"required"`
}

type CreateDesignRequest struct {
	BraceletSlug string             `json:"bracelet_slug" binding:"required"`
	Currency     string             `json:"currency,omitempty"`
	Placements   []PlacementRequest `json:"placements" binding:"required"`
}

type PreviewDesignRequest struct {
	BraceletSlug string             `json:"bracelet_slug" binding:"required"`
	Placements   []PlacementRequest `json:"placements" binding:"required"`
}

type CheckoutRequest struct {
	DesignID uuid.UUID `json:"design_id" binding:"required"`
}

type FinalizeOrderRequest struct {
	PaymentReference string `json:"payment_reference" binding:"required"`
}
