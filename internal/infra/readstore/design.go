package readstore

import (
	"context"

	"charmforge/internal/infra"
	"charmforge/internal/infra/db"
	"charmforge/internal/pkg/pgconv"
	"charmforge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DesignReadStore struct {
	db db.DBTX
}

func NewDesignReadStore(pool db.DBTX) *DesignReadStore {
	return &DesignReadStore{db: pool}
}

func (r *DesignReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DesignView, error) {
	var (
		view      queries.DesignView
		userID    pgtype.UUID
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx,
		`SELECT d.id, d.bracelet_id, b.slug, b.name, b.path_d, b.length_mm,
		        d.user_id, d.subtotal_cents, d.discount_cents, d.total_cents,
		        d.currency, d.status, d.created_at, d.updated_at
		 FROM designs d
		 JOIN bracelets b ON b.id = d.bracelet_id
		 WHERE d.id = $1`, id).
		Scan(
			&view.ID, &view.BraceletID, &view.BraceletSlug, &view.BraceletName,
			&view.BraceletPathD, &view.BraceletLengthMm,
			&userID, &view.SubtotalCents, &view.DiscountCents, &view.TotalCents,
			&view.Currency, &view.Status, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("design not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find design by id", err)
	}

	view.UserID = pgconv.UUIDPtrFromPgtype(userID)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	placements, err := r.loadPlacementViews(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Placements = placements

	return &view, nil
}

func (r *DesignReadStore) loadPlacementViews(ctx context.Context, designID uuid.UUID) ([]queries.PlacementView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.charm_id, c.sku, c.name, p.t, p.offset_mm, p.rotation_deg, p.z_index, p.quantity
		 FROM design_placements p
		 JOIN charms c ON c.id = p.charm_id
		 WHERE p.design_id = $1
		 ORDER BY p.position`, designID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load placement views", err)
	}
	defer rows.Close()

	var views []queries.PlacementView
	for rows.Next() {
		var v queries.PlacementView
		err := rows.Scan(&v.CharmID, &v.CharmSku, &v.CharmName, &v.T, &v.OffsetMm, &v.RotationDeg, &v.ZIndex, &v.Quantity)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan placement view row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate placement view rows", err)
	}
	return views, nil
}
