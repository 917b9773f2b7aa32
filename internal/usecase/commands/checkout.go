package commands

import (
	"context"
	"fmt"

	"charmforge/internal/domain/design"
	"charmforge/internal/infra"
	"charmforge/internal/infra/db"
	"charmforge/internal/pkg/clock"
	"charmforge/internal/pkg/errs"
	"charmforge/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutResult struct {
	OrderID          uuid.UUID
	PaymentReference string
	PaymentURL       string
	AmountCents      int64
	ShippingCents    int64
	Currency         string
}

type FinalizeResult struct {
	OrderID     uuid.UUID
	DesignID    uuid.UUID
	Status      string
	AmountCents int64
	Currency    string
}

type CheckoutCommands interface {
	// PrepareCheckout re-checks stock against the current catalog, adds
	// shipping and opens a payment session for the design total.
	PrepareCheckout(ctx context.Context, designID uuid.UUID) (*CheckoutResult, error)
	// FinalizeOrder completes the order for a payment reference. Calling it
	// again for an already-paid reference returns the existing order
	// unchanged; it never decrements stock twice.
	FinalizeOrder(ctx context.Context, paymentReference string) (*FinalizeResult, error)
}

type checkoutUseCaseImpl struct {
	designRepo DesignRepository
	charmRepo  CharmRepository
	orderRepo  OrderRepository
	gateway    PaymentGateway
	txm        shared.TxManager
	clock      clock.Clock
}

func NewCheckoutCommands(
	designRepo DesignRepository,
	charmRepo CharmRepository,
	orderRepo OrderRepository,
	gateway PaymentGateway,
	txm shared.TxManager,
	clock clock.Clock,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		designRepo: designRepo,
		charmRepo:  charmRepo,
		orderRepo:  orderRepo,
		gateway:    gateway,
		txm:        txm,
		clock:      clock,
	}
}

func (u *checkoutUseCaseImpl) PrepareCheckout(ctx context.Context, designID uuid.UUID) (*CheckoutResult, error) {
	d, err := u.designRepo.FindByID(ctx, designID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDesignNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if d.IsOrdered() {
		return nil, errs.ErrAlreadyOrdered
	}

	// Stock is re-checked on every checkout attempt, including retries that
	// end up reusing an open session: the catalog may have sold down since
	// the session was opened.
	if err := u.recheckStock(ctx, d); err != nil {
		return nil, err
	}

	shipping := design.CalculateShipping(d.Quote().TotalCents)

	// A pending order for this design means a session is already open;
	// reuse its reference instead of opening a second one.
	if pending, err := u.orderRepo.FindPendingByDesignID(ctx, designID); err == nil && pending != nil {
		return reusedCheckout(pending, shipping), nil
	} else if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	amount := d.Quote().TotalCents + shipping
	reference := uuid.NewString()

	session, err := u.gateway.CreateSession(ctx, PaymentSessionRequest{
		AmountCents: amount,
		Currency:    d.Currency(),
		Reference:   reference,
		Description: fmt.Sprintf("charm bracelet design %s", d.ID()),
	})
	if err != nil {
		return nil, errs.Wrap(err, "create payment session")
	}

	now := u.clock.Now()
	rec := &OrderRecord{
		ID:               uuid.New(),
		DesignID:         d.ID(),
		UserID:           d.UserID(),
		AmountCents:      amount,
		Currency:         d.Currency(),
		PaymentReference: reference,
		PaymentSessionID: session.SessionID,
		PaymentURL:       session.URL,
		Status:           OrderStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = u.txm.RunInTx(ctx, func(tx db.DBTX) error {
		_, createErr := u.orderRepo.Create(ctx, tx, rec)
		return createErr
	})
	if err != nil {
		// The partial unique index on pending orders admits one open order
		// per design. Losing the insert race means a concurrent checkout got
		// there first; hand the customer the winner's session. Our orphaned
		// session simply expires on the provider side.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			if pending, findErr := u.orderRepo.FindPendingByDesignID(ctx, designID); findErr == nil && pending != nil {
				return reusedCheckout(pending, shipping), nil
			}
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CheckoutResult{
		OrderID:          rec.ID,
		PaymentReference: reference,
		PaymentURL:       session.URL,
		AmountCents:      amount,
		ShippingCents:    shipping,
		Currency:         d.Currency(),
	}, nil
}

func (u *checkoutUseCaseImpl) FinalizeOrder(ctx context.Context, paymentReference string) (*FinalizeResult, error) {
	order, err := u.orderRepo.FindByPaymentReference(ctx, paymentReference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Idempotency gate: a paid order is returned as-is whatever the caller
	// does with the reference afterwards.
	if order.Status == OrderStatusPaid {
		return finalizeResultFrom(order), nil
	}

	completed, err := u.gateway.VerifyCompleted(ctx, order.PaymentSessionID)
	if err != nil {
		return nil, errs.Wrap(err, "verify payment session")
	}
	if !completed {
		return nil, errs.ErrPaymentNotCompleted
	}

	d, err := u.designRepo.FindByID(ctx, order.DesignID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	now := u.clock.Now()
	if err := d.MarkOrdered(now); err != nil {
		// Another finalize won the race between our status read and theirs.
		if errs.Is(err, design.ErrAlreadyOrdered) {
			return finalizeResultFrom(order), nil
		}
		return nil, err
	}

	err = u.txm.RunInTx(ctx, func(tx db.DBTX) error {
		for _, p := range d.PricedPlacements() {
			ok, decErr := u.charmRepo.DecrementStock(ctx, tx, p.CharmID, p.Quantity)
			if decErr != nil {
				return decErr
			}
			if !ok {
				return errs.Mark(
					errs.Newf("charm %s stock dropped below %d", p.CharmID, p.Quantity),
					errs.ErrInsufficientStock,
				)
			}
		}
		if updErr := u.designRepo.UpdateStatus(ctx, tx, d.ID(), design.StatusOrdered); updErr != nil {
			return updErr
		}
		return u.orderRepo.MarkPaid(ctx, tx, order.ID)
	})
	if err != nil {
		if errs.Is(err, errs.ErrInsufficientStock) {
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	order.Status = OrderStatusPaid
	return finalizeResultFrom(order), nil
}

// recheckStock revalidates aggregate quantities against live stock. The draft
// may have been priced against a catalog that has since sold down.
func (u *checkoutUseCaseImpl) recheckStock(ctx context.Context, d *design.Design) error {
	priced := d.PricedPlacements()

	seen := make(map[uuid.UUID]struct{}, len(priced))
	ids := make([]uuid.UUID, 0, len(priced))
	for _, p := range priced {
		if _, ok := seen[p.CharmID]; ok {
			continue
		}
		seen[p.CharmID] = struct{}{}
		ids = append(ids, p.CharmID)
	}

	snaps, err := u.charmRepo.FindByIDs(ctx, ids)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	limits := make(map[uuid.UUID]design.CharmLimits, len(snaps))
	for _, c := range snaps {
		limits[c.ID] = design.CharmLimits{
			Name:           c.Name,
			Stock:          c.Stock,
			MaxPerBracelet: c.MaxPerBracelet,
			Active:         c.IsActive,
		}
	}

	var violations ValidationErrors
	for _, verr := range design.ValidateCharmQuantities(priced, limits) {
		violations = append(violations, businessViolation(verr))
	}
	if len(violations) > 0 {
		return violations
	}
	return nil
}

func reusedCheckout(pending *OrderRecord, shippingCents int64) *CheckoutResult {
	return &CheckoutResult{
		OrderID:          pending.ID,
		PaymentReference: pending.PaymentReference,
		PaymentURL:       pending.PaymentURL,
		AmountCents:      pending.AmountCents,
		ShippingCents:    shippingCents,
		Currency:         pending.Currency,
	}
}

func finalizeResultFrom(order *OrderRecord) *FinalizeResult {
	return &FinalizeResult{
		OrderID:     order.ID,
		DesignID:    order.DesignID,
		Status:      order.Status,
		AmountCents: order.AmountCents,
		Currency:    order.Currency,
	}
}
