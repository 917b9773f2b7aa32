package design

import (
	"charmforge/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxOffsetMm    = 50.0
	MaxRotationDeg = 180.0
	MinQuantity    = 1
	MaxQuantity    = 10
	MaxPlacements  = 50
)

// One sentinel per field bound so callers can report each violation distinctly.
var (
	ErrTOutOfRange        = errs.New("t must be within [0, 1]")
	ErrOffsetOutOfRange   = errs.New("offsetMm must be within [-50, 50]")
	ErrRotationOutOfRange = errs.New("rotationDeg must be within [-180, 180]")
	ErrNegativeZIndex     = errs.New("zIndex must be a non-negative integer")
	ErrQuantityOutOfRange = errs.New("quantity must be within [1, 10]")
	ErrMissingCharmID     = errs.New("placement must reference a charm")
	ErrTooManyPlacements  = errs.New("a design holds at most 50 placements")
)

// Placement positions quantity instances of one charm on a bracelet path.
// Coordinates are logical (t along the path, offset in mm perpendicular to
// it) so a design renders at any zoom level and survives path edits.
type Placement struct {
	charmID     uuid.UUID
	t           float64
	offsetMm    float64
	rotationDeg float64
	zIndex      int32
	quantity    int32
}

// NewPlacement builds a placement, returning every violated field bound
// rather than stopping at the first.
func NewPlacement(charmID uuid.UUID, t, offsetMm, rotationDeg float64, zIndex, quantity int32) (Placement, []error) {
	var violations []error
	if charmID == uuid.Nil {
		violations = append(violations, ErrMissingCharmID)
	}
	if t < 0 || t > 1 {
		violations = append(violations, ErrTOutOfRange)
	}
	if offsetMm < -MaxOffsetMm || offsetMm > MaxOffsetMm {
		violations = append(violations, ErrOffsetOutOfRange)
	}
	if rotationDeg < -MaxRotationDeg || rotationDeg > MaxRotationDeg {
		violations = append(violations, ErrRotationOutOfRange)
	}
	if zIndex < 0 {
		violations = append(violations, ErrNegativeZIndex)
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		violations = append(violations, ErrQuantityOutOfRange)
	}
	if len(violations) > 0 {
		return Placement{}, violations
	}

	return Placement{
		charmID:     charmID,
		t:           t,
		offsetMm:    offsetMm,
		rotationDeg: rotationDeg,
		zIndex:      zIndex,
		quantity:    quantity,
	}, nil
}

// ReconstructPlacement restores a persisted placement without re-validating.
func ReconstructPlacement(charmID uuid.UUID, t, offsetMm, rotationDeg float64, zIndex, quantity int32) Placement {
	return Placement{
		charmID:     charmID,
		t:           t,
		offsetMm:    offsetMm,
		rotationDeg: rotationDeg,
		zIndex:      zIndex,
		quantity:    quantity,
	}
}

func (p Placement) CharmID() uuid.UUID   { return p.charmID }
func (p Placement) T() float64           { return p.t }
func (p Placement) OffsetMm() float64    { return p.offsetMm }
func (p Placement) RotationDeg() float64 { return p.rotationDeg }
func (p Placement) ZIndex() int32        { return p.zIndex }
func (p Placement) Quantity() int32      { return p.quantity }
