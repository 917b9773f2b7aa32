package design

import (
	"charmforge/internal/pkg/errs"

	"github.com/google/uuid"
)

// CharmLimits is the read-only catalog view the validator compares against.
type CharmLimits struct {
	Name           string
	Stock          int32
	MaxPerBracelet int32
	Active         bool
}

// ValidateCharmQuantities checks every placement against catalog stock and
// per-bracelet ceilings and returns the complete list of violations, so a
// client can fix everything in one round trip. Quantities of the same charm
// are summed per design before comparing. A nil result means valid.
func ValidateCharmQuantities(placements []PricedPlacement, limits map[uuid.UUID]CharmLimits) []error {
	var violations []error

	totals := make(map[uuid.UUID]int32, len(placements))
	order := make([]uuid.UUID, 0, len(placements))
	for _, p := range placements {
		if _, seen := totals[p.CharmID]; !seen {
			order = append(order, p.CharmID)
		}
		totals[p.CharmID] += p.Quantity
	}

	for _, charmID := range order {
		quantity := totals[charmID]

		limit, ok := limits[charmID]
		if !ok || !limit.Active {
			violations = append(violations, errs.Mark(
				errs.Newf("charm %s does not exist or is inactive", charmID),
				ErrUnknownCharm,
			))
			continue
		}

		if quantity > limit.Stock {
			violations = append(violations, errs.Mark(
				errs.Newf("charm %q: requested %d, only %d in stock", limit.Name, quantity, limit.Stock),
				ErrInsufficientStock,
			))
		}

		if quantity > limit.MaxPerBracelet {
			violations = append(violations, errs.Mark(
				errs.Newf("charm %q: at most %d per bracelet", limit.Name, limit.MaxPerBracelet),
				ErrPlacementLimitExceeded,
			))
		}
	}

	return violations
}
