package repo_impl

import (
	"context"

	"charmforge/internal/domain/charm"
	"charmforge/internal/infra"
	"charmforge/internal/infra/db"
	"charmforge/internal/pkg/pgconv"
	"charmforge/internal/usecase/commands"

	"github.com/google/uuid"
)

type CharmRepository struct {
	db db.DBTX
}

func NewCharmRepository(pool db.DBTX) *CharmRepository {
	return &CharmRepository{db: pool}
}

const charmColumns = `id, sku, name, price_cents, width_mm, height_mm, max_per_bracelet, stock, is_active`

func (r *CharmRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*commands.CharmSnapshot, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+charmColumns+` FROM charms WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find charms by ids", err)
	}
	defer rows.Close()

	var snaps []*commands.CharmSnapshot
	for rows.Next() {
		snap, scanErr := scanCharmSnapshot(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan charm row", scanErr)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate charm rows", err)
	}
	return snaps, nil
}

func (r *CharmRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.CharmSnapshot, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+charmColumns+` FROM charms WHERE id = $1`, id)

	snap, err := scanCharmSnapshot(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("charm not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find charm by id", err)
	}
	return snap, nil
}

func (r *CharmRepository) Create(ctx context.Context, tx db.DBTX, c *charm.Charm) (uuid.UUID, error) {
	_, err := tx.Exec(ctx,
		`INSERT INTO charms (id, sku, name, price_cents, width_mm, height_mm, max_per_bracelet, stock, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID(), c.Sku(), c.Name(), c.PriceCents(), c.WidthMm(), c.HeightMm(), c.MaxPerBracelet(), c.Stock(), c.IsActive(),
		pgconv.TimeToPgtype(c.CreatedAt()), pgconv.TimeToPgtype(c.UpdatedAt()))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create charm", err)
	}
	return c.ID(), nil
}

func (r *CharmRepository) Update(ctx context.Context, tx db.DBTX, c *charm.Charm) error {
	tag, err := tx.Exec(ctx,
		`UPDATE charms
		 SET sku = $2, name = $3, price_cents = $4, width_mm = $5, height_mm = $6, max_per_bracelet = $7, stock = $8, is_active = $9, updated_at = $10
		 WHERE id = $1`,
		c.ID(), c.Sku(), c.Name(), c.PriceCents(), c.WidthMm(), c.HeightMm(), c.MaxPerBracelet(), c.Stock(), c.IsActive(),
		pgconv.TimeToPgtype(c.UpdatedAt()))
	if err != nil {
		return infra.WrapRepoErr("failed to update charm", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("charm not found", nil, infra.KindNotFound)
	}
	return nil
}

// DecrementStock is the conditional write checkout relies on: the stock guard
// sits in the WHERE clause so concurrent orders can never oversell.
func (r *CharmRepository) DecrementStock(ctx context.Context, tx db.DBTX, charmID uuid.UUID, quantity int32) (bool, error) {
	tag, err := tx.Exec(ctx,
		`UPDATE charms SET stock = stock - $2, updated_at = now()
		 WHERE id = $1 AND stock >= $2`,
		charmID, quantity)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement charm stock", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanCharmSnapshot(row interface{ Scan(dest ...any) error }) (*commands.CharmSnapshot, error) {
	var snap commands.CharmSnapshot
	err := row.Scan(
		&snap.ID,
		&snap.Sku,
		&snap.Name,
		&snap.PriceCents,
		&snap.WidthMm,
		&snap.HeightMm,
		&snap.MaxPerBracelet,
		&snap.Stock,
		&snap.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
