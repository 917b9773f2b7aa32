package repo_impl

import (
	"context"

	"charmforge/internal/domain/design"
	"charmforge/internal/infra"
	"charmforge/internal/infra/db"
	"charmforge/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DesignRepository struct {
	db db.DBTX
}

func NewDesignRepository(pool db.DBTX) *DesignRepository {
	return &DesignRepository{db: pool}
}

func (r *DesignRepository) Create(ctx context.Context, tx db.DBTX, d *design.Design) (uuid.UUID, error) {
	quote := d.Quote()
	_, err := tx.Exec(ctx,
		`INSERT INTO designs (id, bracelet_id, user_id, subtotal_cents, discount_cents, total_cents, charm_count, currency, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		d.ID(), d.BraceletID(), pgconv.UUIDPtrToPgtype(d.UserID()),
		quote.SubtotalCents, quote.DiscountCents, quote.TotalCents, quote.CharmCount,
		d.Currency(), d.Status().String(),
		pgconv.TimeToPgtype(d.CreatedAt()), pgconv.TimeToPgtype(d.UpdatedAt()))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create design", err)
	}

	// Position preserves submission order so tie-broken stacking is stable.
	for i, p := range d.Placements() {
		_, err = tx.Exec(ctx,
			`INSERT INTO design_placements (design_id, position, charm_id, t, offset_mm, rotation_deg, z_index, quantity)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			d.ID(), i, p.CharmID(), p.T(), p.OffsetMm(), p.RotationDeg(), p.ZIndex(), p.Quantity())
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create design placement", err)
		}
	}

	return d.ID(), nil
}

func (r *DesignRepository) FindByID(ctx context.Context, id uuid.UUID) (*design.Design, error) {
	var (
		braceletID    uuid.UUID
		userID        pgtype.UUID
		subtotalCents int64
		discountCents int64
		totalCents    int64
		charmCount    int32
		currency      string
		status        string
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx,
		`SELECT bracelet_id, user_id, subtotal_cents, discount_cents, total_cents, charm_count, currency, status, created_at, updated_at
		 FROM designs WHERE id = $1`, id).
		Scan(&braceletID, &userID, &subtotalCents, &discountCents, &totalCents, &charmCount, &currency, &status, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("design not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find design by id", err)
	}

	placements, err := r.loadPlacements(ctx, id)
	if err != nil {
		return nil, err
	}

	d, err := design.Reconstruct(
		id,
		braceletID,
		pgconv.UUIDPtrFromPgtype(userID),
		placements,
		design.Quote{
			SubtotalCents: subtotalCents,
			DiscountCents: discountCents,
			TotalCents:    totalCents,
			CharmCount:    charmCount,
		},
		currency,
		design.Status(status),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct design", err)
	}
	return d, nil
}

func (r *DesignRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status design.Status) error {
	tag, err := tx.Exec(ctx,
		`UPDATE designs SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update design status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("design not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DesignRepository) loadPlacements(ctx context.Context, designID uuid.UUID) ([]design.Placement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT charm_id, t, offset_mm, rotation_deg, z_index, quantity
		 FROM design_placements WHERE design_id = $1 ORDER BY position`, designID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load design placements", err)
	}
	defer rows.Close()

	var placements []design.Placement
	for rows.Next() {
		var (
			charmID     uuid.UUID
			t           float64
			offsetMm    float64
			rotationDeg float64
			zIndex      int32
			quantity    int32
		)
		if err := rows.Scan(&charmID, &t, &offsetMm, &rotationDeg, &zIndex, &quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan placement row", err)
		}
		placements = append(placements, design.ReconstructPlacement(charmID, t, offsetMm, rotationDeg, zIndex, quantity))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate placement rows", err)
	}
	return placements, nil
}
