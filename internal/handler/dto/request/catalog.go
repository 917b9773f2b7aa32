package request

type CreateBraceletRequest struct {
	Slug           string `json:"slug" binding:"required"`
	Name           string `json:"name" binding:"required"`
	PathD          string `json:"path_d" binding:"required"`
	LengthMm       int32  `json:"length_mm" binding:"required,gt=0"`
	BasePriceCents int64  `json:"base_price_cents" binding:"min=0"`
	IsActive       bool   `json:"is_active"`
}

// Update requests use pointers so absent fields keep their stored values.
type UpdateBraceletRequest struct {
	Slug           *string `json:"slug,omitempty"`
	Name           *string `json:"name,omitempty"`
	PathD          *string `json:"path_d,omitempty"`
	LengthMm       *int32  `json:"length_mm,omitempty"`
	BasePriceCents *int64  `json:"base_price_cents,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

type CreateCharmRequest struct {
	Sku            string  `json:"sku" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	PriceCents     int64   `json:"price_cents" binding:"min=0"`
	WidthMm        float64 `json:"width_mm" binding:"required,gt=0"`
	HeightMm       float64 `json:"height_mm" binding:"required,gt=0"`
	MaxPerBracelet int32   `json:"max_per_bracelet" binding:"required,gte=1"`
	Stock          int32   `json:"stock" binding:"min=0"`
	IsActive       bool    `json:"is_active"`
}

type UpdateCharmRequest struct {
	Sku            *string  `json:"sku,omitempty"`
	Name           *string  `json:"name,omitempty"`
	PriceCents     *int64   `json:"price_cents,omitempty"`
	WidthMm        *float64 `json:"width_mm,omitempty"`
	HeightMm       *float64 `json:"height_mm,omitempty"`
	MaxPerBracelet *int32   `json:"max_per_bracelet,omitempty"`
	Stock          *int32   `json:"stock,omitempty"`
	IsActive       *bool    `json:"is_active,omitempty"`
}
