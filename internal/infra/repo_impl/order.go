package repo_impl

import (
	"context"

	"charmforge/internal/infra"
	"charmforge/internal/infra/db"
	"charmforge/internal/pkg/pgconv"
	"charmforge/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(pool db.DBTX) *OrderRepository {
	return &OrderRepository{db: pool}
}

const orderColumns = `id, design_id, user_id, amount_cents, currency, payment_reference, payment_session_id, payment_url, status, created_at, updated_at`

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, rec *commands.OrderRecord) (uuid.UUID, error) {
	// payment_reference is unique, and a partial unique index allows only one
	// pending order per design; either duplicate surfaces as KindDuplicateKey
	// so the usecase can fall back to the already-open order.
	_, err := tx.Exec(ctx,
		`INSERT INTO orders (`+orderColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		rec.ID, rec.DesignID, pgconv.UUIDPtrToPgtype(rec.UserID),
		rec.AmountCents, rec.Currency, rec.PaymentReference, rec.PaymentSessionID, rec.PaymentURL, rec.Status,
		pgconv.TimeToPgtype(rec.CreatedAt), pgconv.TimeToPgtype(rec.UpdatedAt))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}
	return rec.ID, nil
}

func (r *OrderRepository) FindByPaymentReference(ctx context.Context, reference string) (*commands.OrderRecord, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE payment_reference = $1`, reference)

	rec, err := scanOrderRecord(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by payment reference", err)
	}
	return rec, nil
}

func (r *OrderRepository) FindPendingByDesignID(ctx context.Context, designID uuid.UUID) (*commands.OrderRecord, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE design_id = $1 AND status = $2
		 ORDER BY created_at DESC LIMIT 1`,
		designID, commands.OrderStatusPending)

	rec, err := scanOrderRecord(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pending order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pending order by design id", err)
	}
	return rec, nil
}

func (r *OrderRepository) MarkPaid(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1 AND status = $3`,
		id, commands.OrderStatusPaid, commands.OrderStatusPending)
	if err != nil {
		return infra.WrapRepoErr("failed to mark order paid", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not pending", nil, infra.KindConflict)
	}
	return nil
}

func scanOrderRecord(row interface{ Scan(dest ...any) error }) (*commands.OrderRecord, error) {
	var (
		rec       commands.OrderRecord
		userID    pgtype.UUID
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&rec.ID,
		&rec.DesignID,
		&userID,
		&rec.AmountCents,
		&rec.Currency,
		&rec.PaymentReference,
		&rec.PaymentSessionID,
		&rec.PaymentURL,
		&rec.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.UserID = pgconv.UUIDPtrFromPgtype(userID)
	rec.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rec.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &rec, nil
}
