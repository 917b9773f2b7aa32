package design

import (
	"time"

	"charmforge/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnknownCharm           = errs.New("unknown charm")
	ErrInsufficientStock      = errs.New("insufficient stock")
	ErrPlacementLimitExceeded = errs.New("placement limit exceeded")
	ErrNoPlacements           = errs.New("a design needs at least one placement")
	ErrAlreadyOrdered         = errs.New("design is already ordered")
	ErrInvalidStatus          = errs.New("invalid design status")
	ErrUnsupportedCurrency    = errs.New("unsupported currency code")
)

const DefaultCurrency = "EUR"

// Design is the priced, persisted result of a placement session. Totals are
// computed once at creation; readers must never recompute them.
type Design struct {
	id         uuid.UUID
	braceletID uuid.UUID
	userID     *uuid.UUID
	placements []Placement
	quote      Quote
	currency   string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewDesign(braceletID uuid.UUID, userID *uuid.UUID, placements []Placement, quote Quote, currency string, now time.Time) (*Design, error) {
	if len(placements) == 0 {
		return nil, ErrNoPlacements
	}
	if len(placements) > MaxPlacements {
		return nil, ErrTooManyPlacements
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	if len(currency) != 3 {
		return nil, ErrUnsupportedCurrency
	}

	return &Design{
		id:         uuid.New(),
		braceletID: braceletID,
		userID:     userID,
		placements: placements,
		quote:      quote,
		currency:   currency,
		status:     StatusDraft,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func Reconstruct(id, braceletID uuid.UUID, userID *uuid.UUID, placements []Placement, quote Quote, currency string, status Status, createdAt, updatedAt time.Time) (*Design, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Design{
		id:         id,
		braceletID: braceletID,
		userID:     userID,
		placements: placements,
		quote:      quote,
		currency:   currency,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// MarkOrdered transitions draft→ordered. The transition is monotonic; a
// design that has been ordered can never go back or be ordered again.
func (d *Design) MarkOrdered(now time.Time) error {
	if d.status == StatusOrdered {
		return ErrAlreadyOrdered
	}
	d.status = StatusOrdered
	d.updatedAt = now
	return nil
}

func (d *Design) IsOrdered() bool {
	return d.status == StatusOrdered
}

// PricedPlacements projects the placements into the pricing engine's view.
func (d *Design) PricedPlacements() []PricedPlacement {
	out := make([]PricedPlacement, len(d.placements))
	for i, p := range d.placements {
		out[i] = PricedPlacement{CharmID: p.CharmID(), Quantity: p.Quantity()}
	}
	return out
}

func (d *Design) ID() uuid.UUID           { return d.id }
func (d *Design) BraceletID() uuid.UUID   { return d.braceletID }
func (d *Design) UserID() *uuid.UUID      { return d.userID }
func (d *Design) Placements() []Placement { return d.placements }
func (d *Design) Quote() Quote            { return d.quote }
func (d *Design) Currency() string        { return d.currency }
func (d *Design) Status() Status          { return d.status }
func (d *Design) CreatedAt() time.Time    { return d.createdAt }
func (d *Design) UpdatedAt() time.Time    { return d.updatedAt }
