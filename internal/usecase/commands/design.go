package commands

import (
	"context"

	"charmforge/internal/domain/design"
	reqdto "charmforge/internal/handler/dto/request"
	"charmforge/internal/infra"
	"charmforge/internal/infra/db"
	"charmforge/internal/pkg/clock"
	"charmforge/internal/pkg/errs"
	"charmforge/internal/usecase/queries"
	"charmforge/internal/usecase/shared"

	"github.com/google/uuid"
)

type DesignCommands interface {
	// CreateDesign validates, prices and persists a new draft design. On
	// validation failure it returns a ValidationErrors value with the
	// complete list of violations and persists nothing.
	CreateDesign(ctx context.Context, req reqdto.CreateDesignRequest, userID *uuid.UUID) (*queries.DesignView, error)
}

type designUseCaseImpl struct {
	braceletRepo  BraceletRepository
	charmRepo     CharmRepository
	designRepo    DesignRepository
	designQueries queries.DesignQueries
	txm           shared.TxManager
	clock         clock.Clock
}

func NewDesignCommands(
	braceletRepo BraceletRepository,
	charmRepo CharmRepository,
	designRepo DesignRepository,
	designQueries queries.DesignQueries,
	txm shared.TxManager,
	clock clock.Clock,
) DesignCommands {
	return &designUseCaseImpl{
		braceletRepo:  braceletRepo,
		charmRepo:     charmRepo,
		designRepo:    designRepo,
		designQueries: designQueries,
		txm:           txm,
		clock:         clock,
	}
}

func (u *designUseCaseImpl) CreateDesign(
	ctx context.Context,
	req reqdto.CreateDesignRequest,
	userID *uuid.UUID,
) (*queries.DesignView, error) {
	braceletSnap, err := u.resolveBracelet(ctx, req.BraceletSlug)
	if err != nil {
		return nil, err
	}

	placements, violations := u.bindPlacements(req.Placements)

	priced := make([]design.PricedPlacement, len(placements))
	for i, p := range placements {
		priced[i] = design.PricedPlacement{CharmID: p.CharmID(), Quantity: p.Quantity()}
	}

	charmSnaps, err := u.lookupCharms(ctx, priced)
	if err != nil {
		return nil, err
	}

	limits := make(map[uuid.UUID]design.CharmLimits, len(charmSnaps))
	prices := make(map[uuid.UUID]int64, len(charmSnaps))
	for _, c := range charmSnaps {
		limits[c.ID] = design.CharmLimits{
			Name:           c.Name,
			Stock:          c.Stock,
			MaxPerBracelet: c.MaxPerBracelet,
			Active:         c.IsActive,
		}
		prices[c.ID] = c.PriceCents
	}

	for _, verr := range design.ValidateCharmQuantities(priced, limits) {
		violations = append(violations, businessViolation(verr))
	}

	// The whole operation is atomic: any violation means nothing is persisted.
	if len(violations) > 0 {
		return nil, violations
	}

	quote := design.PriceDesign(braceletSnap.BasePriceCents, priced, prices)

	designEntity, err := design.NewDesign(braceletSnap.ID, userID, placements, quote, req.Currency, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var designID uuid.UUID
	err = u.txm.RunInTx(ctx, func(tx db.DBTX) error {
		id, createErr := u.designRepo.Create(ctx, tx, designEntity)
		if createErr != nil {
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		designID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the same view GetDesign serves, so creation
	// and later fetches can never disagree on totals.
	view, err := u.designQueries.GetByID(ctx, designID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (u *designUseCaseImpl) resolveBracelet(ctx context.Context, slug string) (*BraceletSnapshot, error) {
	snap, err := u.braceletRepo.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBraceletNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !snap.IsActive {
		return nil, errs.ErrBraceletInactive
	}
	return snap, nil
}

// bindPlacements converts request placements to domain values, collecting
// every field-bound violation instead of stopping at the first.
func (u *designUseCaseImpl) bindPlacements(reqs []reqdto.PlacementRequest) ([]design.Placement, ValidationErrors) {
	var violations ValidationErrors

	if len(reqs) == 0 {
		violations = append(violations, FieldViolation{
			Placement: -1,
			Field:     "placements",
			Kind:      KindBounds,
			Message:   design.ErrNoPlacements.Error(),
		})
		return nil, violations
	}
	if len(reqs) > design.MaxPlacements {
		violations = append(violations, FieldViolation{
			Placement: -1,
			Field:     "placements",
			Kind:      KindBounds,
			Message:   design.ErrTooManyPlacements.Error(),
		})
		return nil, violations
	}

	placements := make([]design.Placement, 0, len(reqs))
	for i, pr := range reqs {
		p, errsList := design.NewPlacement(pr.CharmID, pr.T, pr.OffsetMm, pr.RotationDeg, pr.ZIndex, pr.Quantity)
		if len(errsList) > 0 {
			for _, e := range errsList {
				violations = append(violations, boundViolation(i, e))
			}
			continue
		}
		placements = append(placements, p)
	}

	return placements, violations
}

// lookupCharms batch-resolves the distinct charm ids referenced by the
// submission. Absent ids are simply missing from the result; the batch
// validator turns them into UnknownCharm violations.
func (u *designUseCaseImpl) lookupCharms(ctx context.Context, priced []design.PricedPlacement) ([]*CharmSnapshot, error) {
	seen := make(map[uuid.UUID]struct{}, len(priced))
	ids := make([]uuid.UUID, 0, len(priced))
	for _, p := range priced {
		if _, ok := seen[p.CharmID]; ok {
			continue
		}
		seen[p.CharmID] = struct{}{}
		ids = append(ids, p.CharmID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	snaps, err := u.charmRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snaps, nil
}
