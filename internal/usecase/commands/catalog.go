package commands

import (
	"context"

	"charmforge/internal/domain/bracelet"
	"charmforge/internal/domain/charm"
	reqdto "charmforge/internal/handler/dto/request"
	"charmforge/internal/infra"
	"charmforge/internal/infra/db"
	"charmforge/internal/pkg/clock"
	"charmforge/internal/pkg/errs"
	"charmforge/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBraceletSlugTaken = errs.New("bracelet slug already taken")
	ErrCharmSkuTaken     = errs.New("charm sku already taken")
)

// CatalogCommands is the admin write surface for bracelets and charms.
type CatalogCommands interface {
	CreateBracelet(ctx context.Context, req reqdto.CreateBraceletRequest) (uuid.UUID, error)
	UpdateBracelet(ctx context.Context, id uuid.UUID, req reqdto.UpdateBraceletRequest) error
	CreateCharm(ctx context.Context, req reqdto.CreateCharmRequest) (uuid.UUID, error)
	UpdateCharm(ctx context.Context, id uuid.UUID, req reqdto.UpdateCharmRequest) error
}

type catalogUseCaseImpl struct {
	braceletRepo BraceletRepository
	charmRepo    CharmRepository
	txm          shared.TxManager
	clock        clock.Clock
}

func NewCatalogCommands(
	braceletRepo BraceletRepository,
	charmRepo CharmRepository,
	txm shared.TxManager,
	clock clock.Clock,
) CatalogCommands {
	return &catalogUseCaseImpl{
		braceletRepo: braceletRepo,
		charmRepo:    charmRepo,
		txm:          txm,
		clock:        clock,
	}
}

func (u *catalogUseCaseImpl) CreateBracelet(ctx context.Context, req reqdto.CreateBraceletRequest) (uuid.UUID, error) {
	b, err := bracelet.NewBracelet(
		uuid.Nil,
		req.Slug,
		req.Name,
		req.PathD,
		req.LengthMm,
		req.BasePriceCents,
		req.IsActive,
		u.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = u.txm.RunInTx(ctx, func(tx db.DBTX) error {
		created, createErr := u.braceletRepo.Create(ctx, tx, b)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return errs.Mark(createErr, ErrBraceletSlugTaken)
			}
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (u *catalogUseCaseImpl) UpdateBracelet(ctx context.Context, id uuid.UUID, req reqdto.UpdateBraceletRequest) error {
	snap, err := u.braceletRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrBraceletNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	next := applyBraceletPatch(snap, req)
	b, err := bracelet.NewBracelet(
		snap.ID,
		next.Slug,
		next.Name,
		next.PathD,
		next.LengthMm,
		next.BasePriceCents,
		next.IsActive,
		u.clock.Now(),
	)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return u.txm.RunInTx(ctx, func(tx db.DBTX) error {
		if updErr := u.braceletRepo.Update(ctx, tx, b); updErr != nil {
			if infra.IsKind(updErr, infra.KindDuplicateKey) {
				return errs.Mark(updErr, ErrBraceletSlugTaken)
			}
			return errs.Mark(updErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *catalogUseCaseImpl) CreateCharm(ctx context.Context, req reqdto.CreateCharmRequest) (uuid.UUID, error) {
	c, err := charm.NewCharm(
		uuid.Nil,
		req.Sku,
		req.Name,
		req.PriceCents,
		req.WidthMm,
		req.HeightMm,
		req.MaxPerBracelet,
		req.Stock,
		req.IsActive,
		u.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = u.txm.RunInTx(ctx, func(tx db.DBTX) error {
		created, createErr := u.charmRepo.Create(ctx, tx, c)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return errs.Mark(createErr, ErrCharmSkuTaken)
			}
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (u *catalogUseCaseImpl) UpdateCharm(ctx context.Context, id uuid.UUID, req reqdto.UpdateCharmRequest) error {
	snap, err := u.charmRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrCharmNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	next := applyCharmPatch(snap, req)
	c, err := charm.NewCharm(
		snap.ID,
		next.Sku,
		next.Name,
		next.PriceCents,
		next.WidthMm,
		next.HeightMm,
		next.MaxPerBracelet,
		next.Stock,
		next.IsActive,
		u.clock.Now(),
	)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return u.txm.RunInTx(ctx, func(tx db.DBTX) error {
		if updErr := u.charmRepo.Update(ctx, tx, c); updErr != nil {
			if infra.IsKind(updErr, infra.KindDuplicateKey) {
				return errs.Mark(updErr, ErrCharmSkuTaken)
			}
			return errs.Mark(updErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// Patch semantics: nil pointer fields keep the stored value.
func applyBraceletPatch(snap *BraceletSnapshot, req reqdto.UpdateBraceletRequest) BraceletSnapshot {
	next := *snap
	if req.Slug != nil {
		next.Slug = *req.Slug
	}
	if req.Name != nil {
		next.Name = *req.Name
	}
	if req.PathD != nil {
		next.PathD = *req.PathD
	}
	if req.LengthMm != nil {
		next.LengthMm = *req.LengthMm
	}
	if req.BasePriceCents != nil {
		next.BasePriceCents = *req.BasePriceCents
	}
	if req.IsActive != nil {
		next.IsActive = *req.IsActive
	}
	return next
}

func applyCharmPatch(snap *CharmSnapshot, req reqdto.UpdateCharmRequest) CharmSnapshot {
	next := *snap
	if req.Sku != nil {
		next.Sku = *req.Sku
	}
	if req.Name != nil {
		next.Name = *req.Name
	}
	if req.PriceCents != nil {
		next.PriceCents = *req.PriceCents
	}
	if req.WidthMm != nil {
		next.WidthMm = *req.WidthMm
	}
	if req.HeightMm != nil {
		next.HeightMm = *req.HeightMm
	}
	if req.MaxPerBracelet != nil {
		next.MaxPerBracelet = *req.MaxPerBracelet
	}
	if req.Stock != nil {
		next.Stock = *req.Stock
	}
	if req.IsActive != nil {
		next.IsActive = *req.IsActive
	}
	return next
}
