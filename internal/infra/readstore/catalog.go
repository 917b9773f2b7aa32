package readstore

import (
	"context"

	"charmforge/internal/infra"
	"charmforge/internal/infra/db"
	"charmforge/internal/pkg/pgconv"
	"charmforge/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(pool db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: pool}
}

func (r *CatalogReadStore) ListBracelets(ctx context.Context, activeOnly bool) ([]*queries.BraceletView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, slug, name, path_d, length_mm, base_price_cents, is_active, created_at, updated_at
		 FROM bracelets
		 WHERE (NOT $1) OR is_active
		 ORDER BY name`, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bracelets", err)
	}
	defer rows.Close()

	var views []*queries.BraceletView
	for rows.Next() {
		view, scanErr := scanBraceletView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan bracelet row", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bracelet rows", err)
	}
	return views, nil
}

func (r *CatalogReadStore) FindBraceletBySlug(ctx context.Context, slug string) (*queries.BraceletView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, slug, name, path_d, length_mm, base_price_cents, is_active, created_at, updated_at
		 FROM bracelets WHERE slug = $1`, slug)

	view, err := scanBraceletView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bracelet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find bracelet by slug", err)
	}
	return view, nil
}

func (r *CatalogReadStore) ListCharms(ctx context.Context, activeOnly bool) ([]*queries.CharmView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, sku, name, price_cents, width_mm, height_mm, max_per_bracelet, stock, is_active, created_at, updated_at
		 FROM charms
		 WHERE (NOT $1) OR is_active
		 ORDER BY name`, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list charms", err)
	}
	defer rows.Close()

	var views []*queries.CharmView
	for rows.Next() {
		var (
			view      queries.CharmView
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		err := rows.Scan(
			&view.ID, &view.Sku, &view.Name, &view.PriceCents,
			&view.WidthMm, &view.HeightMm, &view.MaxPerBracelet, &view.Stock, &view.IsActive,
			&createdAt, &updatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan charm row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate charm rows", err)
	}
	return views, nil
}

func scanBraceletView(row interface{ Scan(dest ...any) error }) (*queries.BraceletView, error) {
	var (
		view      queries.BraceletView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.Slug, &view.Name, &view.PathD, &view.LengthMm,
		&view.BasePriceCents, &view.IsActive, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
