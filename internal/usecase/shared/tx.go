package shared

import (
	"context"

	"charmforge/internal/infra/db"
)

// TxManager runs a function inside one database transaction. Commands depend
// on this interface so unit tests can substitute a pass-through.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(tx db.DBTX) error) error
}
