package response

import (
	"time"

	"charmforge/internal/domain/design"
	"charmforge/internal/usecase/commands"
	"charmforge/internal/usecase/queries"

	"github.com/google/uuid"
)

type PlacementResponse struct {
	CharmID     uuid.UUID `json:"charmId"`
	CharmSku    string    `json:"charmSku"`
	CharmName   string    `json:"charmName"`
	T           float64   `json:"t"`
	OffsetMm    float64   `json:"offsetMm"`
	RotationDeg float64   `json:"rotationDeg"`
	ZIndex      int32     `json:"zIndex"`
	Quantity    int32     `json:"quantity"`
}

type DesignResponse struct {
	ID               uuid.UUID           `json:"id"`
	BraceletID       uuid.UUID           `json:"braceletId"`
	BraceletSlug     string              `json:"braceletSlug"`
	BraceletName     string              `json:"braceletName"`
	Placements       []PlacementResponse `json:"placements"`
	SubtotalCents    int64               `json:"subtotalCents"`
	DiscountCents    int64               `json:"discountCents"`
	TotalCents       int64               `json:"totalCents"`
	TotalFormatted   string              `json:"totalFormatted"`
	Currency         string              `json:"currency"`
	Status           string              `json:"status"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

type PlacementPreviewResponse struct {
	CharmID  uuid.UUID `json:"charmId"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	AngleDeg float64   `json:"angleDeg"`
	ZIndex   int32     `json:"zIndex"`
	Quantity int32     `json:"quantity"`
}

type DesignPreviewResponse struct {
	DesignID   uuid.UUID                  `json:"designId"`
	ViewBoxPx  float64                    `json:"viewBoxPx"`
	PxPerMm    float64                    `json:"pxPerMm"`
	Placements []PlacementPreviewResponse `json:"placements"`
}

type CheckoutResponse struct {
	OrderID          uuid.UUID `json:"orderId"`
	PaymentReference string    `json:"paymentReference"`
	PaymentURL       string    `json:"paymentUrl,omitempty"`
	AmountCents      int64     `json:"amountCents"`
	ShippingCents    int64     `json:"shippingCents"`
	Currency         string    `json:"currency"`
}

type OrderResponse struct {
	OrderID     uuid.UUID `json:"orderId"`
	DesignID    uuid.UUID `json:"designId"`
	Status      string    `json:"status"`
	AmountCents int64     `json:"amountCents"`
	Currency    string    `json:"currency"`
}

type ViolationResponse struct {
	Placement int    `json:"placement"`
	Field     string `json:"field"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
}

func FromDesignView(view *queries.DesignView, locale string) *DesignResponse {
	placements := make([]PlacementResponse, len(view.Placements))
	for i, p := range view.Placements {
		placements[i] = PlacementResponse{
			CharmID:     p.CharmID,
			CharmSku:    p.CharmSku,
			CharmName:   p.CharmName,
			T:           p.T,
			OffsetMm:    p.OffsetMm,
			RotationDeg: p.RotationDeg,
			ZIndex:      p.ZIndex,
			Quantity:    p.Quantity,
		}
	}

	return &DesignResponse{
		ID:             view.ID,
		BraceletID:     view.BraceletID,
		BraceletSlug:   view.BraceletSlug,
		BraceletName:   view.BraceletName,
		Placements:     placements,
		SubtotalCents:  view.SubtotalCents,
		DiscountCents:  view.DiscountCents,
		TotalCents:     view.TotalCents,
		TotalFormatted: design.FormatPrice(view.TotalCents, view.Currency, locale),
		Currency:       view.Currency,
		Status:         view.Status,
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	}
}

func FromDesignPreview(preview *queries.DesignPreview) *DesignPreviewResponse {
	placements := make([]PlacementPreviewResponse, len(preview.Placements))
	for i, p := range preview.Placements {
		placements[i] = PlacementPreviewResponse{
			CharmID:  p.CharmID,
			X:        p.X,
			Y:        p.Y,
			AngleDeg: p.AngleDeg,
			ZIndex:   p.ZIndex,
			Quantity: p.Quantity,
		}
	}
	return &DesignPreviewResponse{
		DesignID:   preview.DesignID,
		ViewBoxPx:  preview.ViewBoxPx,
		PxPerMm:    preview.PxPerMm,
		Placements: placements,
	}
}

func FromCheckoutResult(res *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		OrderID:          res.OrderID,
		PaymentReference: res.PaymentReference,
		PaymentURL:       res.PaymentURL,
		AmountCents:      res.AmountCents,
		ShippingCents:    res.ShippingCents,
		Currency:         res.Currency,
	}
}

func FromFinalizeResult(res *commands.FinalizeResult) *OrderResponse {
	return &OrderResponse{
		OrderID:     res.OrderID,
		DesignID:    res.DesignID,
		Status:      res.Status,
		AmountCents: res.AmountCents,
		Currency:    res.Currency,
	}
}

// FromValidationErrors renders the aggregated violation list carried as the
// error response detail.
func FromValidationErrors(verrs commands.ValidationErrors) []ViolationResponse {
	violations := make([]ViolationResponse, len(verrs))
	for i, v := range verrs {
		violations[i] = ViolationResponse{
			Placement: v.Placement,
			Field:     v.Field,
			Kind:      string(v.Kind),
			Message:   v.Message,
		}
	}
	return violations
}
