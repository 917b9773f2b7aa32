package repo_impl

import (
	"context"

	"charmforge/internal/domain/bracelet"
	"charmforge/internal/infra"
	"charmforge/internal/infra/db"
	"charmforge/internal/pkg/pgconv"
	"charmforge/internal/usecase/commands"

	"github.com/google/uuid"
)

type BraceletRepository struct {
	db db.DBTX
}

func NewBraceletRepository(pool db.DBTX) *BraceletRepository {
	return &BraceletRepository{db: pool}
}

const braceletColumns = `id, slug, name, path_d, length_mm, base_price_cents, is_active`

func (r *BraceletRepository) FindBySlug(ctx context.Context, slug string) (*commands.BraceletSnapshot, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+braceletColumns+` FROM bracelets WHERE slug = $1`, slug)

	snap, err := scanBraceletSnapshot(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bracelet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find bracelet by slug", err)
	}
	return snap, nil
}

func (r *BraceletRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.BraceletSnapshot, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+braceletColumns+` FROM bracelets WHERE id = $1`, id)

	snap, err := scanBraceletSnapshot(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bracelet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find bracelet by id", err)
	}
	return snap, nil
}

func (r *BraceletRepository) Create(ctx context.Context, tx db.DBTX, b *bracelet.Bracelet) (uuid.UUID, error) {
	_, err := tx.Exec(ctx,
		`INSERT INTO bracelets (id, slug, name, path_d, length_mm, base_price_cents, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID(), b.Slug(), b.Name(), b.PathD(), b.LengthMm(), b.BasePriceCents(), b.IsActive(),
		pgconv.TimeToPgtype(b.CreatedAt()), pgconv.TimeToPgtype(b.UpdatedAt()))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create bracelet", err)
	}
	return b.ID(), nil
}

func (r *BraceletRepository) Update(ctx context.Context, tx db.DBTX, b *bracelet.Bracelet) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bracelets
		 SET slug = $2, name = $3, path_d = $4, length_mm = $5, base_price_cents = $6, is_active = $7, updated_at = $8
		 WHERE id = $1`,
		b.ID(), b.Slug(), b.Name(), b.PathD(), b.LengthMm(), b.BasePriceCents(), b.IsActive(),
		pgconv.TimeToPgtype(b.UpdatedAt()))
	if err != nil {
		return infra.WrapRepoErr("failed to update bracelet", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("bracelet not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanBraceletSnapshot(row interface{ Scan(dest ...any) error }) (*commands.BraceletSnapshot, error) {
	var snap commands.BraceletSnapshot
	err := row.Scan(
		&snap.ID,
		&snap.Slug,
		&snap.Name,
		&snap.PathD,
		&snap.LengthMm,
		&snap.BasePriceCents,
		&snap.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
