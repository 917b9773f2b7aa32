package commands

import (
	"context"
	"time"

	"charmforge/internal/domain/bracelet"
	"charmforge/internal/domain/charm"
	"charmforge/internal/domain/design"
	"charmforge/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type BraceletSnapshot struct {
	ID             uuid.UUID
	Slug           string
	Name           string
	PathD          string
	LengthMm       int32
	BasePriceCents int64
	IsActive       bool
}

type CharmSnapshot struct {
	ID             uuid.UUID
	Sku            string
	Name           string
	PriceCents     int64
	WidthMm        float64
	HeightMm       float64
	MaxPerBracelet int32
	Stock          int32
	IsActive       bool
}

type OrderRecord struct {
	ID               uuid.UUID
	DesignID         uuid.UUID
	UserID           *uuid.UUID
	AmountCents      int64
	Currency         string
	PaymentReference string
	PaymentSessionID string
	PaymentURL       string
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

const (
	OrderStatusPending  = "pending"
	OrderStatusPaid     = "paid"
	OrderStatusCanceled = "canceled"
)

type BraceletRepository interface {
	FindBySlug(ctx context.Context, slug string) (*BraceletSnapshot, error)
	Create(ctx context.Context, tx db.DBTX, b *bracelet.Bracelet) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, b *bracelet.Bracelet) error
	FindByID(ctx context.Context, id uuid.UUID) (*BraceletSnapshot, error)
}

type CharmRepository interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*CharmSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CharmSnapshot, error)
	Create(ctx context.Context, tx db.DBTX, c *charm.Charm) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, c *charm.Charm) error
	// DecrementStock subtracts quantity only when enough stock remains and
	// reports whether a row was updated. This is the atomic checkout gate.
	DecrementStock(ctx context.Context, tx db.DBTX, charmID uuid.UUID, quantity int32) (bool, error)
}

type DesignRepository interface {
	Create(ctx context.Context, tx db.DBTX, d *design.Design) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*design.Design, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status design.Status) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, rec *OrderRecord) (uuid.UUID, error)
	FindByPaymentReference(ctx context.Context, reference string) (*OrderRecord, error)
	FindPendingByDesignID(ctx context.Context, designID uuid.UUID) (*OrderRecord, error)
	MarkPaid(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type PaymentSessionRequest struct {
	AmountCents int64
	Currency    string
	Reference   string
	Description string
}

type PaymentSession struct {
	SessionID string
	URL       string
}

// PaymentGateway is the payment collaborator. The core never retries it;
// reference-based deduplication is the only double-charge protection.
type PaymentGateway interface {
	CreateSession(ctx context.Context, req PaymentSessionRequest) (*PaymentSession, error)
	VerifyCompleted(ctx context.Context, sessionID string) (bool, error)
}
