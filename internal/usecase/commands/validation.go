package commands

import (
	"errors"
	"fmt"
	"strings"

	"charmforge/internal/domain/design"
)

type ViolationKind string

const (
	KindBounds       ViolationKind = "bounds"
	KindUnknownCharm ViolationKind = "unknown_charm"
	KindStock        ViolationKind = "insufficient_stock"
	KindLimit        ViolationKind = "placement_limit"
)

// FieldViolation reports one rejected field. Placement is the index into the
// submitted placement list, or -1 for design-level violations.
type FieldViolation struct {
	Placement int           `json:"placement"`
	Field     string        `json:"field"`
	Kind      ViolationKind `json:"kind"`
	Message   string        `json:"message"`
}

// ValidationErrors aggregates every discoverable violation so clients can
// fix a whole submission in one round trip.
type ValidationErrors []FieldViolation

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fv := range v {
		if fv.Placement >= 0 {
			msgs[i] = fmt.Sprintf("placement %d: %s", fv.Placement, fv.Message)
		} else {
			msgs[i] = fv.Message
		}
	}
	return "design validation failed: " + strings.Join(msgs, "; ")
}

func (v ValidationErrors) HasKind(kind ViolationKind) bool {
	for _, fv := range v {
		if fv.Kind == kind {
			return true
		}
	}
	return false
}

// boundViolation maps a placement field-bound error onto its request field.
func boundViolation(index int, err error) FieldViolation {
	field := "placement"
	switch {
	case errors.Is(err, design.ErrTOutOfRange):
		field = "t"
	case errors.Is(err, design.ErrOffsetOutOfRange):
		field = "offset_mm"
	case errors.Is(err, design.ErrRotationOutOfRange):
		field = "rotation_deg"
	case errors.Is(err, design.ErrNegativeZIndex):
		field = "z_index"
	case errors.Is(err, design.ErrQuantityOutOfRange):
		field = "quantity"
	case errors.Is(err, design.ErrMissingCharmID):
		field = "charm_id"
	}
	return FieldViolation{
		Placement: index,
		Field:     field,
		Kind:      KindBounds,
		Message:   err.Error(),
	}
}

// businessViolation maps a catalog-check error from the batch validator.
func businessViolation(err error) FieldViolation {
	fv := FieldViolation{Placement: -1, Message: err.Error()}
	switch {
	case errors.Is(err, design.ErrUnknownCharm):
		fv.Field = "charm_id"
		fv.Kind = KindUnknownCharm
	case errors.Is(err, design.ErrInsufficientStock):
		fv.Field = "quantity"
		fv.Kind = KindStock
	case errors.Is(err, design.ErrPlacementLimitExceeded):
		fv.Field = "quantity"
		fv.Kind = KindLimit
	default:
		fv.Field = "placements"
		fv.Kind = KindBounds
	}
	return fv
}
